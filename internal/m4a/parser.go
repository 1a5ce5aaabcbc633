package m4a

import (
	"io"

	"github.com/simonhull/coverart/internal/registry"
	"github.com/simonhull/coverart/internal/types"
)

// scanner implements registry.ArtworkScanner for MP4-family files
type scanner struct{}

// ExtractArtwork extracts the covr image from an M4A/M4B/MP4 file
func (s *scanner) ExtractArtwork(r io.ReaderAt, size int64, path string) (*types.Artwork, error) {
	return extractArtwork(r, size, path)
}

// init registers the MP4 scanner
func init() {
	registry.Register(types.FormatMP4, &scanner{})
}
