package types

import (
	"path/filepath"
	"strings"
)

// Format identifies which container scanner handles a file.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatMP3 represents MP3 files carrying an ID3v2 tag.
	FormatMP3
	// FormatMP4 represents the ISO Base Media family (M4A, AAC in MP4, M4B).
	FormatMP4
)

func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatMP4:
		return "MP4"
	default:
		return "Unknown"
	}
}

// Extensions returns the lowercase file extensions routed to this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatMP3:
		return []string{".mp3"}
	case FormatMP4:
		return []string{".m4a", ".aac", ".m4b", ".mp4"}
	default:
		return nil
	}
}

// FormatFromPath picks the format from the file extension, case-insensitively.
// Only the name is inspected; the file is not touched.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []Format{FormatMP3, FormatMP4} {
		for _, e := range f.Extensions() {
			if ext == e {
				return f
			}
		}
	}
	return FormatUnknown
}
