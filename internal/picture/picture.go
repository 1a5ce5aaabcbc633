// Package picture validates candidate cover-image bytes and recovers an image
// from buffers that carry leading garbage or a truncated tail.
package picture

import (
	"bytes"

	"github.com/simonhull/coverart/internal/types"
)

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngMagic      = []byte{0x89, 0x50, 0x4E, 0x47}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	jpegSOI = []byte{0xFF, 0xD8}
	jpegEOI = []byte{0xFF, 0xD9}
)

// Sniff reports the image kind from the signature at offset 0.
func Sniff(data []byte) types.Kind {
	switch {
	case bytes.HasPrefix(data, jpegSignature):
		return types.KindJPEG
	case bytes.HasPrefix(data, pngMagic):
		return types.KindPNG
	default:
		return types.KindUnknown
	}
}

// Validate returns data unchanged when it starts with a PNG signature, or with
// a JPEG signature and carries an end-of-image marker. A JPEG without one gets
// FF D9 appended. Anything else falls back to Recover. ok is false when no
// image was found.
func Validate(data []byte) (img []byte, kind types.Kind, ok bool) {
	switch Sniff(data) {
	case types.KindPNG:
		return data, types.KindPNG, true
	case types.KindJPEG:
		if bytes.Contains(data[len(jpegSOI):], jpegEOI) {
			return data, types.KindJPEG, true
		}
		return terminateJPEG(data), types.KindJPEG, true
	}
	return Recover(data)
}

// terminateJPEG returns a copy of data with an end-of-image marker appended.
func terminateJPEG(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(jpegEOI))
	out = append(out, data...)
	return append(out, jpegEOI...)
}

// Recover locates an image inside data by marker scan.
//
// A JPEG start-of-image marker wins: the span runs to the first end-of-image
// marker after it, or to the end of data with FF D9 appended when none exists.
// Without a JPEG marker, the span starts at the 8-byte PNG signature and runs
// to the end of data. The result never aliases data.
func Recover(data []byte) (img []byte, kind types.Kind, ok bool) {
	if start := bytes.Index(data, jpegSOI); start >= 0 {
		body := data[start:]
		if end := bytes.Index(body[len(jpegSOI):], jpegEOI); end >= 0 {
			n := len(jpegSOI) + end + len(jpegEOI)
			return bytes.Clone(body[:n]), types.KindJPEG, true
		}

		return terminateJPEG(body), types.KindJPEG, true
	}

	if start := bytes.Index(data, pngSignature); start >= 0 {
		return bytes.Clone(data[start:]), types.KindPNG, true
	}

	return nil, types.KindUnknown, false
}
