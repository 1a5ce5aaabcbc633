// Package m4a locates embedded cover art in MP4/M4A/M4B files
package m4a

import (
	"fmt"

	"github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

// Atom represents an MP4/M4A/M4B atom (box)
type Atom struct {
	Size     uint64 // Total size including header
	Type     string // 4-character type code
	Offset   int64  // Position in file
	Extended bool   // Whether this uses 64-bit extended size
}

// headerSize returns 8, or 16 for atoms with a 64-bit size.
func (a *Atom) headerSize() int64 {
	if a.Extended {
		return 16
	}
	return 8
}

// DataSize returns the size of the atom's data (excluding header)
func (a *Atom) DataSize() uint64 {
	hs := uint64(a.headerSize())
	if a.Size < hs {
		return 0
	}
	return a.Size - hs
}

// DataOffset returns the file offset where the atom's data starts
func (a *Atom) DataOffset() int64 {
	return a.Offset + a.headerSize()
}

// End returns the file offset just past the atom.
func (a *Atom) End() int64 {
	return a.Offset + int64(a.Size)
}

// IsContainer returns true if this atom type can contain other atoms
func (a *Atom) IsContainer() bool {
	switch a.Type {
	case "moov", // Movie container
		"udta", // User data
		"meta", // Metadata container
		"ilst", // iTunes metadata list
		"trak", // Track container
		"mdia", // Media container
		"minf", // Media information
		"stbl", // Sample table
		"edts": // Edit list container
		return true
	}
	return false
}

// childOffset returns where the atom's children start. meta is a full box
// with 4 bytes of version and flags ahead of its children.
func (a *Atom) childOffset() int64 {
	if a.Type == "meta" {
		return a.DataOffset() + 4
	}
	return a.DataOffset()
}

// readAtomHeader reads an atom header at the given offset. end bounds the
// enclosing range: the atom must fit inside it, and a size field of 0 means
// the atom runs to end.
func readAtomHeader(sr *binary.SafeReader, offset, end int64) (*Atom, error) {
	size32, err := binary.Read[uint32](sr, offset, "atom size")
	if err != nil {
		return nil, err
	}

	typeBytes := make([]byte, 4)
	if err := sr.ReadAt(typeBytes, offset+4, "atom type"); err != nil {
		return nil, err
	}

	atom := &Atom{
		Type:   string(typeBytes),
		Offset: offset,
	}

	switch size32 {
	case 0:
		atom.Size = uint64(end - offset)
	case 1:
		// Extended size (size == 1 means 64-bit size follows)
		size64, err := binary.Read[uint64](sr, offset+8, "extended atom size")
		if err != nil {
			return nil, err
		}
		atom.Size = size64
		atom.Extended = true
	default:
		atom.Size = uint64(size32)
	}

	if atom.Size < uint64(atom.headerSize()) {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("invalid atom size %d (minimum is %d)", atom.Size, atom.headerSize()),
		}
	}

	if atom.Size > uint64(end-offset) {
		return nil, &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("atom '%s' of size %d runs past its container end %d", atom.Type, atom.Size, end),
		}
	}

	return atom, nil
}

// findAtom searches for an atom of the given type within [start, end).
// Returns the first matching atom, or an error wrapping types.ErrNoArtwork
// when the range holds no such atom.
func findAtom(sr *binary.SafeReader, start, end int64, atomType string) (*Atom, error) {
	end = min(end, sr.Size())
	offset := start

	for offset+8 <= end {
		atom, err := readAtomHeader(sr, offset, end)
		if err != nil {
			return nil, err
		}

		if atom.Type == atomType {
			return atom, nil
		}

		offset = atom.End()
	}

	return nil, fmt.Errorf("atom '%s' not found: %w", atomType, types.ErrNoArtwork)
}

// findPath descends through nested atoms, one type per level, starting from
// the range [start, end). It returns the atom matching the last type.
func findPath(sr *binary.SafeReader, start, end int64, path ...string) (*Atom, error) {
	var atom *Atom
	for _, atomType := range path {
		found, err := findAtom(sr, start, end, atomType)
		if err != nil {
			return nil, err
		}
		atom = found
		start, end = atom.childOffset(), atom.End()
	}
	return atom, nil
}
