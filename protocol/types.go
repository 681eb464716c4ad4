package protocol

import (
	"path"
	"strings"
)

// FileType is the content-type label derived from a file's extension.
type FileType string

// Content-type labels produced by directory listings.
const (
	// FileTypeText is a plain text file (.txt)
	FileTypeText FileType = "text"

	// FileTypeSubGHz is a Sub-GHz capture file (.sub)
	FileTypeSubGHz FileType = "subghz"

	// FileTypeRFID is a 125 kHz RFID key file (.rfid)
	FileTypeRFID FileType = "rfid"

	// FileTypeInfrared is an infrared remote file (.ir)
	FileTypeInfrared FileType = "infrared"

	// FileTypeNFC is an NFC card file (.nfc)
	FileTypeNFC FileType = "nfc"

	// FileTypeScript is a JavaScript file (.js)
	FileTypeScript FileType = "script"

	// FileTypeApplication is an external application package (.fap)
	FileTypeApplication FileType = "application"

	// FileTypeIButton is an iButton key file (.ibtn)
	FileTypeIButton FileType = "ibutton"

	// FileTypeDirectory labels directory entries
	FileTypeDirectory FileType = "directory"

	// FileTypeUnknown labels files with an unrecognized extension
	FileTypeUnknown FileType = "unknown"
)

// fileTypesByExtension maps lowercased extensions (without the dot) to labels.
var fileTypesByExtension = map[string]FileType{
	"txt":  FileTypeText,
	"sub":  FileTypeSubGHz,
	"rfid": FileTypeRFID,
	"ir":   FileTypeInfrared,
	"nfc":  FileTypeNFC,
	"js":   FileTypeScript,
	"fap":  FileTypeApplication,
	"ibtn": FileTypeIButton,
}

// FileTypeForName returns the content-type label for a file name based on its
// extension. Names without a recognized extension map to FileTypeUnknown.
func FileTypeForName(name string) FileType {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if t, ok := fileTypesByExtension[strings.ToLower(ext)]; ok {
		return t
	}
	return FileTypeUnknown
}

// FileInfo is one entry of a parsed directory listing.
type FileInfo struct {
	// Name is the entry's base name
	Name string

	// Path is the parent path joined with Name, with repeated separators
	// collapsed
	Path string

	// IsDir reports whether the entry is a directory
	IsDir bool

	// Size is the file size in bytes; always 0 for directories
	Size int64

	// Type is the content-type label (FileTypeDirectory for directories)
	Type FileType
}
