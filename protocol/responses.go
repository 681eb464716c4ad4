package protocol

import (
	"path"
	"strconv"
	"strings"
)

// ParseListing parses the response of a storage list command into directory
// entries. parent is the listed path and is joined with each entry name to
// form FileInfo.Path.
//
// Lines carrying the DirMarker or FileMarker prefix become entries; every
// other line (banners, echoes, prompt fragments) is dropped. Marker lines
// with no name token are dropped as well. File sizes come from the second
// token and default to 0 when absent or malformed.
func ParseListing(parent, response string) []FileInfo {
	var entries []FileInfo
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < MarkerWidth {
			continue
		}

		marker := line[:MarkerWidth]
		if marker != DirMarker && marker != FileMarker {
			continue
		}

		fields := strings.Fields(line[MarkerWidth:])
		if len(fields) == 0 {
			continue
		}

		info := FileInfo{
			Name: fields[0],
			Path: path.Join(parent, fields[0]),
		}
		if marker == DirMarker {
			info.IsDir = true
			info.Type = FileTypeDirectory
		} else {
			info.Type = FileTypeForName(fields[0])
			if len(fields) > 1 {
				if size, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
					info.Size = size
				}
			}
		}
		entries = append(entries, info)
	}
	return entries
}

// ParseLoaderList parses the response of a loader list command into
// application names, one per non-empty line. Prompt fragments are dropped.
func ParseLoaderList(response string) []string {
	var apps []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == Prompt || line == PostCapturePrompt {
			continue
		}
		apps = append(apps, line)
	}
	return apps
}

// IsLoaderFailure reports whether a loader command response indicates
// failure. The loader prints free-form diagnostics, so detection is a
// case-insensitive substring match on "error".
func IsLoaderFailure(response string) bool {
	return strings.Contains(strings.ToLower(response), "error")
}

// IsStorageFailure reports whether a storage command response indicates a
// missing or inaccessible path.
func IsStorageFailure(response string) bool {
	return strings.Contains(response, StorageErrorKeyword) ||
		strings.Contains(response, StorageMissingKeyword)
}
