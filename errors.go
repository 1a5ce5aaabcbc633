package coverart

import (
	"github.com/simonhull/coverart/internal/album"
	"github.com/simonhull/coverart/internal/types"
)

// ErrNoArtwork is returned when a file carries no usable embedded picture.
// Re-exporting from internal/types to maintain public API.
var ErrNoArtwork = types.ErrNoArtwork

// ErrNoAudioFile is returned by AlbumArt for a directory without audio files.
// It also matches ErrNoArtwork.
var ErrNoAudioFile = album.ErrNoAudioFile

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError

// ReadError is an alias to types.ReadError.
// Re-exporting from internal/types to maintain public API.
type ReadError = types.ReadError

// ArtworkTooLargeError is an alias to types.ArtworkTooLargeError.
// Re-exporting from internal/types to maintain public API.
type ArtworkTooLargeError = types.ArtworkTooLargeError
