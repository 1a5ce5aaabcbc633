// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/simonhull/coverart/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
//
// Reads that would cross the declared size fail with *types.OutOfBoundsError
// before touching the underlying reader. Failures of the reader itself are
// reported as *types.ReadError.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the total number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if len(b) == 0 {
		return nil
	}

	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return &types.ReadError{Path: sr.path, Op: "read " + what, Err: err}
	}

	// The file shrank underneath us; treat it like any other overrun.
	if n < len(b) {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off + int64(n),
			Length: len(b) - n,
			Size:   off + int64(n),
		}
	}

	return nil
}

// Read reads a big-endian value of type T from the given offset.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(binary.BigEndian.Uint16(buf))
	case uint32:
		val = T(binary.BigEndian.Uint32(buf))
	case uint64:
		val = T(binary.BigEndian.Uint64(buf))
	}

	return val, nil
}

func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	default:
		return 1
	}
}

// Cursor is a positioned view over a SafeReader: absolute seek, exact-length
// reads, position and length queries. One extraction owns one Cursor.
type Cursor struct {
	*SafeReader
	offset int64
}

// NewCursor creates a new Cursor starting at the given offset.
func NewCursor(sr *SafeReader, offset int64) *Cursor {
	return &Cursor{
		SafeReader: sr,
		offset:     offset,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](c *Cursor, what string) (T, error) {
	val, err := Read[T](c.SafeReader, c.offset, what)
	if err != nil {
		var zero T
		return zero, err
	}
	c.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadN reads exactly n bytes into a new buffer and advances the offset.
func (c *Cursor) ReadN(n int64, what string) ([]byte, error) {
	if n < 0 || n > c.Remaining() {
		return nil, &types.OutOfBoundsError{
			Path:   c.path,
			What:   what,
			Offset: c.offset,
			Length: int(max(n, 0)),
			Size:   c.size,
		}
	}

	buf := make([]byte, n)
	if err := c.SafeReader.ReadAt(buf, c.offset, what); err != nil {
		return nil, err
	}

	c.offset += n
	return buf, nil
}

// ReadTerminated reads up to a NUL terminator of the given width (1, or 2 for
// UTF-16 text) without crossing limit. The terminator is consumed but not
// returned. Each byte is examined once.
func (c *Cursor) ReadTerminated(width int, limit int64, what string) ([]byte, error) {
	limit = min(limit, c.size)

	var out []byte
	chunk := make([]byte, 64)
	pos := c.offset
	from := 0
	for pos < limit {
		n := min(int64(len(chunk)), limit-pos)
		if err := c.SafeReader.ReadAt(chunk[:n], pos, what); err != nil {
			return nil, err
		}
		out = append(out, chunk[:n]...)
		pos += n

		if i := indexTerminator(out, from, width); i >= 0 {
			c.offset += int64(i + width)
			return out[:i], nil
		}

		// Resume at the first unit not yet examined. A UTF-16 unit may
		// straddle the chunk boundary.
		from = len(out)
		if width == 2 {
			from &^= 1
		}

		if len(chunk) < maxTerminatedChunk {
			chunk = make([]byte, 2*len(chunk))
		}
	}

	return nil, &types.CorruptedFileError{
		Path:   c.path,
		Offset: c.offset,
		Reason: what + " is not NUL-terminated",
	}
}

const maxTerminatedChunk = 32 * 1024

// indexTerminator returns the index of the first terminator in b at or after
// from, or -1. For width 2 only even indexes count, and from must be even.
func indexTerminator(b []byte, from, width int) int {
	if width != 2 {
		if i := bytes.IndexByte(b[from:], 0); i >= 0 {
			return from + i
		}
		return -1
	}
	for i := from; i+1 < len(b); {
		j := bytes.IndexByte(b[i:], 0)
		if j < 0 {
			return -1
		}
		i += j
		if i%2 != 0 {
			i++
			continue
		}
		if i+1 < len(b) && b[i+1] == 0 {
			return i
		}
		i += 2
	}
	return -1
}

// Seek moves to an absolute offset.
func (c *Cursor) Seek(off int64) {
	c.offset = off
}

// Skip advances the offset by n bytes.
func (c *Cursor) Skip(n int64) {
	c.offset += n
}

// Offset returns the current offset.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Remaining returns the number of bytes between the offset and the end.
func (c *Cursor) Remaining() int64 {
	return max(c.size-c.offset, 0)
}
