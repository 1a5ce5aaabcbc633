package types

import (
	"errors"
	"fmt"
)

// ErrNoArtwork is returned when a supported file carries no usable embedded picture.
//
// It covers every structural reason a picture could not be located: no tag,
// no APIC frame, a missing box in the moov chain, declared sizes that run past
// the end of the file, or bytes that fail image validation.
var ErrNoArtwork = errors.New("no embedded artwork")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the file extension is not MP3 or MP4-family.
//
// Callers treat it exactly like ErrNoArtwork, so errors.Is(err, ErrNoArtwork)
// reports true for it.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// Is reports whether target is ErrNoArtwork.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrNoArtwork
}

// CorruptedFileError is returned when file structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// ReadError is returned when the file cannot be opened or a read fails for a
// reason other than running out of declared frame or box bytes.
type ReadError struct {
	Path string
	Op   string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ArtworkTooLargeError is returned when extracted artwork exceeds the
// configured size limit.
type ArtworkTooLargeError struct {
	Path  string
	Size  int
	Limit int
}

func (e *ArtworkTooLargeError) Error() string {
	return fmt.Sprintf("%s: artwork of %s exceeds limit of %s", e.Path, FormatSize(e.Size), FormatSize(e.Limit))
}

// IsStructural reports whether err describes a malformed container rather than
// an I/O failure. Scanners fold structural errors into ErrNoArtwork.
func IsStructural(err error) bool {
	var oob *OutOfBoundsError
	var corrupt *CorruptedFileError
	return errors.As(err, &oob) || errors.As(err, &corrupt)
}
