package protocol

import "testing"

func TestFileTypeForName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     FileType
	}{
		{name: "text", fileName: "notes.txt", want: FileTypeText},
		{name: "subghz", fileName: "gate.sub", want: FileTypeSubGHz},
		{name: "rfid", fileName: "badge.rfid", want: FileTypeRFID},
		{name: "infrared", fileName: "tv.ir", want: FileTypeInfrared},
		{name: "nfc", fileName: "card.nfc", want: FileTypeNFC},
		{name: "script", fileName: "blink.js", want: FileTypeScript},
		{name: "application", fileName: "snake.fap", want: FileTypeApplication},
		{name: "ibutton", fileName: "key.ibtn", want: FileTypeIButton},
		{name: "uppercase extension", fileName: "GATE.SUB", want: FileTypeSubGHz},
		{name: "unknown extension", fileName: "dump.bin", want: FileTypeUnknown},
		{name: "no extension", fileName: "README", want: FileTypeUnknown},
		{name: "trailing dot", fileName: "weird.", want: FileTypeUnknown},
		{name: "only last extension counts", fileName: "archive.txt.bak", want: FileTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileTypeForName(tt.fileName); got != tt.want {
				t.Errorf("FileTypeForName(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}
