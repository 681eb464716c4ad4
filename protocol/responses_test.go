package protocol

import (
	"reflect"
	"testing"
)

func TestParseListing(t *testing.T) {
	tests := []struct {
		name     string
		parent   string
		response string
		want     []FileInfo
	}{
		{
			name:   "files and directories",
			parent: "/ext",
			response: "[D] subghz\r\n" +
				"[D] nfc\r\n" +
				"[F] readme.txt 128\r\n" +
				"[F] gate.sub 4096\r\n",
			want: []FileInfo{
				{Name: "subghz", Path: "/ext/subghz", IsDir: true, Type: FileTypeDirectory},
				{Name: "nfc", Path: "/ext/nfc", IsDir: true, Type: FileTypeDirectory},
				{Name: "readme.txt", Path: "/ext/readme.txt", Size: 128, Type: FileTypeText},
				{Name: "gate.sub", Path: "/ext/gate.sub", Size: 4096, Type: FileTypeSubGHz},
			},
		},
		{
			name:   "garbage lines are dropped",
			parent: "/ext",
			response: "Storage is busy\r\n" +
				"[F] key.rfid 64\r\n" +
				">\r\n" +
				"random noise without marker\r\n",
			want: []FileInfo{
				{Name: "key.rfid", Path: "/ext/key.rfid", Size: 64, Type: FileTypeRFID},
			},
		},
		{
			name:   "directory entry carrying a size token",
			parent: "/ext",
			response: "[D] sub 0\r\n" +
				"[F] note.txt 42\r\n" +
				"garbage",
			want: []FileInfo{
				{Name: "sub", Path: "/ext/sub", IsDir: true, Type: FileTypeDirectory},
				{Name: "note.txt", Path: "/ext/note.txt", Size: 42, Type: FileTypeText},
			},
		},
		{
			name:   "marker line without name is dropped",
			parent: "/ext",
			response: "[F]\r\n" +
				"[D]\r\n" +
				"[F] remote.ir 256\r\n",
			want: []FileInfo{
				{Name: "remote.ir", Path: "/ext/remote.ir", Size: 256, Type: FileTypeInfrared},
			},
		},
		{
			name:     "file without size token defaults to zero",
			parent:   "/ext",
			response: "[F] app.fap\r\n",
			want: []FileInfo{
				{Name: "app.fap", Path: "/ext/app.fap", Type: FileTypeApplication},
			},
		},
		{
			name:     "malformed size defaults to zero",
			parent:   "/ext",
			response: "[F] card.nfc big\r\n",
			want: []FileInfo{
				{Name: "card.nfc", Path: "/ext/card.nfc", Type: FileTypeNFC},
			},
		},
		{
			name:     "parent with trailing slash is normalized",
			parent:   "/ext/",
			response: "[F] run.js 32\r\n",
			want: []FileInfo{
				{Name: "run.js", Path: "/ext/run.js", Size: 32, Type: FileTypeScript},
			},
		},
		{
			name:     "empty response",
			parent:   "/ext",
			response: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListing(tt.parent, tt.response)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("entries = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLoaderList(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "application names one per line",
			response: "Sub-GHz\r\n125 kHz RFID\r\nInfrared\r\nBad USB\r\n",
			want:     []string{"Sub-GHz", "125 kHz RFID", "Infrared", "Bad USB"},
		},
		{
			name:     "blank lines and prompt fragments are dropped",
			response: "\r\nClock\r\n>\r\n>:\r\n\r\n",
			want:     []string{"Clock"},
		},
		{
			name:     "empty response",
			response: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLoaderList(tt.response)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("apps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsLoaderFailure(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{name: "lowercase error", response: "loader error: app not found", want: true},
		{name: "capitalized error", response: "Error: another app is running", want: true},
		{name: "mixed case", response: "ERROR", want: true},
		{name: "clean response", response: "Loader is free", want: false},
		{name: "empty response", response: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLoaderFailure(tt.response); got != tt.want {
				t.Errorf("IsLoaderFailure(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestIsStorageFailure(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{name: "storage error", response: "Error: file/dir not exist", want: true},
		{name: "missing path", response: "Storage error: file not found", want: true},
		{name: "stat output", response: "File, size: 128b", want: false},
		{name: "lowercase error is not matched", response: "error", want: false},
		{name: "empty response", response: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStorageFailure(tt.response); got != tt.want {
				t.Errorf("IsStorageFailure(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}
