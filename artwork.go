package coverart

import (
	"github.com/simonhull/coverart/internal/types"
)

// Artwork is an alias to types.Artwork.
// Re-exporting from internal/types to maintain public API.
type Artwork = types.Artwork

// Kind is an alias to types.Kind.
// Re-exporting from internal/types to maintain public API.
type Kind = types.Kind

// Re-export all image kind constants
const (
	KindUnknown = types.KindUnknown
	KindJPEG    = types.KindJPEG
	KindPNG     = types.KindPNG
)
