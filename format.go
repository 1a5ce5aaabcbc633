package coverart

import (
	"github.com/simonhull/coverart/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatMP3     = types.FormatMP3
	FormatMP4     = types.FormatMP4
)

// FormatFromPath reports which scanner Extract would use for path.
// Only the extension is inspected.
func FormatFromPath(path string) Format {
	return types.FormatFromPath(path)
}
