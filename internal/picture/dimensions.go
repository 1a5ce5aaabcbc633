package picture

import (
	"encoding/binary"

	"github.com/simonhull/coverart/internal/types"
)

// Dimensions extracts width and height from JPEG or PNG data.
// Returns 0, 0 if unable to detect.
func Dimensions(data []byte, kind types.Kind) (int, int) {
	switch kind {
	case types.KindJPEG:
		return jpegDimensions(data)
	case types.KindPNG:
		return pngDimensions(data)
	default:
		return 0, 0
	}
}

// jpegDimensions walks JPEG marker segments up to the first SOF.
func jpegDimensions(data []byte) (int, int) {
	pos := 2 // past SOI
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return 0, 0
		}
		marker := data[pos+1]

		// Fill bytes and standalone markers carry no length.
		if marker == 0xFF {
			pos++
			continue
		}
		if marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			pos += 2
			continue
		}

		segLen := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		if segLen < 2 {
			return 0, 0
		}

		// SOF0..SOF15 except DHT (C4), JPG (C8) and DAC (CC)
		if marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC {
			// FF Cn [2 length] [1 precision] [2 height] [2 width]
			if pos+9 > len(data) {
				return 0, 0
			}
			height := int(binary.BigEndian.Uint16(data[pos+5 : pos+7]))
			width := int(binary.BigEndian.Uint16(data[pos+7 : pos+9]))
			return width, height
		}

		// Start of scan: entropy-coded data follows, no SOF seen.
		if marker == 0xDA {
			return 0, 0
		}

		pos += 2 + segLen
	}
	return 0, 0
}

// pngDimensions reads the IHDR chunk that must follow the signature.
func pngDimensions(data []byte) (int, int) {
	// [8 signature] [4 len] [4 "IHDR"] [4 width] [4 height]
	if len(data) < 24 || string(data[12:16]) != "IHDR" {
		return 0, 0
	}
	width := int(binary.BigEndian.Uint32(data[16:20]))
	height := int(binary.BigEndian.Uint32(data[20:24]))
	return width, height
}
