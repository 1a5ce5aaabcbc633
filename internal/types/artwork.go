package types

import "fmt"

// Kind tags the image encoding of an extracted payload.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
)

// String returns the short name of the image kind.
func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "JPEG"
	case KindPNG:
		return "PNG"
	default:
		return "Unknown"
	}
}

// MIMEType returns the MIME type for the kind, or application/octet-stream.
func (k Kind) MIMEType() string {
	switch k {
	case KindJPEG:
		return "image/jpeg"
	case KindPNG:
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the conventional file extension for the kind.
func (k Kind) Extension() string {
	switch k {
	case KindJPEG:
		return ".jpg"
	case KindPNG:
		return ".png"
	default:
		return ".bin"
	}
}

// Artwork is a cover image extracted from an audio container.
//
// Data is a fresh buffer owned by the caller; it holds no reference to the
// source file.
type Artwork struct {
	// Image binary data
	Data []byte

	// Encoding detected from the leading signature
	Kind Kind

	// MIME type declared by the container (APIC) or derived from Kind
	MIMEType string

	// Dimensions sniffed from the image header (0 if unknown)
	Width  int // Pixels
	Height int // Pixels

	// Recovered is set when the bytes did not start with an image signature
	// and had to be located by marker scan, or when a JPEG end marker was
	// appended.
	Recovered bool
}

// String returns a human-readable description of the artwork.
//
// Example output: "JPEG 1200x1200, 245KB"
func (a Artwork) String() string {
	dims := ""
	if a.Width > 0 && a.Height > 0 {
		dims = fmt.Sprintf(" %dx%d", a.Width, a.Height)
	}
	return fmt.Sprintf("%s%s, %s", a.Kind, dims, FormatSize(len(a.Data)))
}

// FormatSize formats byte size in human-readable form.
func FormatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}
