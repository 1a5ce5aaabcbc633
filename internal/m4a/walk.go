package m4a

import (
	"fmt"
	"io"

	"github.com/simonhull/coverart/internal/binary"
	"github.com/simonhull/coverart/internal/types"
)

// maxWalkDepth bounds atom nesting. Real files stay well below it.
const maxWalkDepth = 32

// WalkFunc is called for each atom visited by Walk. depth is 0 for
// top-level atoms.
type WalkFunc func(atom *Atom, depth int) error

// Walk visits every atom in the file in file order, descending into
// container atoms and into the items of an ilst list. It stops at the first
// malformed atom header, nesting deeper than maxWalkDepth, or the first error
// returned by fn.
func Walk(r io.ReaderAt, size int64, path string, fn WalkFunc) error {
	sr := binary.NewSafeReader(r, size, path)
	return walkRange(sr, 0, size, 0, false, fn)
}

func walkRange(sr *binary.SafeReader, start, end int64, depth int, inList bool, fn WalkFunc) error {
	if depth >= maxWalkDepth && start+8 <= end {
		return &types.CorruptedFileError{
			Path:   sr.Path(),
			Offset: start,
			Reason: fmt.Sprintf("atoms nested deeper than %d levels", maxWalkDepth),
		}
	}

	offset := start
	for offset+8 <= end {
		atom, err := readAtomHeader(sr, offset, end)
		if err != nil {
			return err
		}

		if err := fn(atom, depth); err != nil {
			return err
		}

		// ilst items (covr, ©nam, ...) hold data atoms
		if atom.IsContainer() || inList {
			if err := walkRange(sr, atom.childOffset(), atom.End(), depth+1, atom.Type == "ilst", fn); err != nil {
				return err
			}
		}

		offset = atom.End()
	}
	return nil
}
