package mp3

import (
	"encoding/binary"
	"fmt"

	binutil "github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

const (
	tagHeaderSize   = 10
	frameHeaderSize = 10

	flagExtendedHeader = 0x40
)

// ID3v2Header represents an ID3v2 tag header
type ID3v2Header struct {
	Version  byte   // Major version (3 or 4)
	Revision byte   // Minor version
	Flags    byte   // Header flags
	Size     uint32 // Tag size (excluding header), synchsafe
}

// FrameHeader is the 10-byte header in front of every ID3v2.3/2.4 frame.
type FrameHeader struct {
	ID        string // 4-character frame ID (e.g., "APIC")
	Size      uint32 // Frame size (excluding header)
	PlainSize uint32 // Size field read as plain big-endian
	Flags     uint16 // Frame flags (unused)
}

// readTagHeader reads and validates the tag header at offset 0 and leaves the
// cursor on the first frame, past any extended header.
func readTagHeader(c *binutil.Cursor) (ID3v2Header, error) {
	c.Seek(0)
	buf, err := c.ReadN(tagHeaderSize, "ID3v2 header")
	if err != nil {
		return ID3v2Header{}, err
	}

	if string(buf[0:3]) != "ID3" {
		return ID3v2Header{}, &types.CorruptedFileError{
			Path:   c.Path(),
			Reason: "missing ID3 tag header",
		}
	}

	header := ID3v2Header{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     decodeSynchsafe(buf[6:10]),
	}

	// ID3v2.2 uses 6-byte frame headers, which this scanner does not read.
	if header.Version != 3 && header.Version != 4 {
		return ID3v2Header{}, &types.CorruptedFileError{
			Path:   c.Path(),
			Offset: 3,
			Reason: fmt.Sprintf("unsupported ID3v2 version: 2.%d", header.Version),
		}
	}

	if header.Flags&flagExtendedHeader != 0 {
		ext, err := c.ReadN(4, "extended header size")
		if err != nil {
			return ID3v2Header{}, err
		}
		if header.Version == 4 {
			// ID3v2.4: synchsafe size including the size field itself
			c.Seek(tagHeaderSize + int64(decodeSynchsafe(ext)))
		} else {
			// ID3v2.3: regular size excluding the size field
			c.Skip(int64(binary.BigEndian.Uint32(ext)))
		}
	}

	return header, nil
}

// readFrameHeader reads the frame header under the cursor.
func readFrameHeader(c *binutil.Cursor, version byte) (FrameHeader, error) {
	buf, err := c.ReadN(frameHeaderSize, "frame header")
	if err != nil {
		return FrameHeader{}, err
	}

	return FrameHeader{
		ID:        string(buf[0:4]),
		Size:      decodeFrameSize(version, buf[4:8]),
		PlainSize: binary.BigEndian.Uint32(buf[4:8]),
		Flags:     binary.BigEndian.Uint16(buf[8:10]),
	}, nil
}

// resolveFrameSize picks between the synchsafe and plain readings of an
// ID3v2.4 frame size, with the cursor on the frame body. Some writers store
// plain sizes in 2.4 tags. The plain reading wins when the field is not a
// valid synchsafe integer, or when only the plain reading lands on the next
// frame, padding or the tag end.
func resolveFrameSize(c *binutil.Cursor, frame FrameHeader, tagEnd int64) uint32 {
	if frame.Size == frame.PlainSize {
		return frame.Size
	}
	if frame.PlainSize&0x80808080 != 0 {
		return frame.PlainSize
	}

	body := c.Offset()
	if !frameBoundary(c, body+int64(frame.Size), tagEnd) &&
		frameBoundary(c, body+int64(frame.PlainSize), tagEnd) {
		return frame.PlainSize
	}
	return frame.Size
}

// frameBoundary reports whether pos is the tag end, the start of padding, or
// the start of a frame with a well-formed ID.
func frameBoundary(c *binutil.Cursor, pos, tagEnd int64) bool {
	if pos == tagEnd {
		return true
	}
	if pos > tagEnd {
		return false
	}

	id := make([]byte, min(4, tagEnd-pos))
	if err := c.ReadAt(id, pos, "frame ID"); err != nil {
		return false
	}
	if id[0] == 0 {
		return true
	}
	return len(id) == 4 && validFrameID(id)
}

// validFrameID reports whether id is four characters of A-Z or 0-9, starting
// with a letter.
func validFrameID(id []byte) bool {
	if id[0] < 'A' || id[0] > 'Z' {
		return false
	}
	for _, b := range id[1:] {
		if (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return false
		}
	}
	return true
}

// decodeFrameSize decodes a frame size field: synchsafe in ID3v2.4, plain
// big-endian in ID3v2.3.
func decodeFrameSize(version byte, b []byte) uint32 {
	if version == 4 {
		return decodeSynchsafe(b)
	}
	return binary.BigEndian.Uint32(b)
}

// decodeSynchsafe decodes a synchsafe integer (7 bits per byte)
// ID3v2 uses 7-bit encoding where bit 7 is always 0
func decodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// terminatorSize returns the size of the null terminator for the encoding
func terminatorSize(encoding byte) int {
	switch encoding {
	case 1, 2: // UTF-16
		return 2
	default: // ISO-8859-1, UTF-8
		return 1
	}
}
