// Package registry maps container formats to their artwork scanners.
package registry

import (
	"io"

	"github.com/simonhull/coverart/internal/types"
)

// ArtworkScanner locates the embedded cover image in one container format.
//
// Implementations return types.ErrNoArtwork when no picture is found or the
// container is malformed, and a *types.ReadError when the reader fails.
type ArtworkScanner interface {
	ExtractArtwork(r io.ReaderAt, size int64, path string) (*types.Artwork, error)
}

// scanners maps formats to their scanners.
var scanners = make(map[types.Format]ArtworkScanner)

// Register registers a scanner for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, scanner ArtworkScanner) {
	scanners[format] = scanner
}

// Get returns the scanner for a given format.
// Returns nil if no scanner is registered for the format.
func Get(format types.Format) ArtworkScanner {
	return scanners[format]
}

// Formats returns the formats that currently have a scanner.
func Formats() []types.Format {
	formats := make([]types.Format, 0, len(scanners))
	for _, f := range []types.Format{types.FormatMP3, types.FormatMP4} {
		if scanners[f] != nil {
			formats = append(formats, f)
		}
	}
	return formats
}
