package mp3

import (
	"io"

	"github.com/simonhull/coverart/internal/registry"
	"github.com/simonhull/coverart/internal/types"
)

// scanner implements registry.ArtworkScanner for MP3 files
type scanner struct{}

// ExtractArtwork extracts the embedded APIC picture from an MP3 file
func (s *scanner) ExtractArtwork(r io.ReaderAt, size int64, path string) (*types.Artwork, error) {
	return extractArtwork(r, size, path)
}

// init registers the MP3 scanner
func init() {
	registry.Register(types.FormatMP3, &scanner{})
}
