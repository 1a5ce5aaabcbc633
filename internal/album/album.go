// Package album picks the track an album folder's cover is read from.
package album

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/simonhull/coverart/internal/types"
)

// ErrNoAudioFile is returned when a directory holds no audio file.
// It wraps types.ErrNoArtwork so callers can treat both alike.
var ErrNoAudioFile = fmt.Errorf("no audio file in directory: %w", types.ErrNoArtwork)

// audioExtensions lists what counts as a track when choosing a folder's
// representative file. It is wider than the set of scannable formats.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".wav":  true,
	".ogg":  true,
	".wma":  true,
	".aac":  true,
	".alac": true,
	".aiff": true,
}

// IsAudioFile reports whether path has an audio extension (case-insensitive).
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// FirstAudioFile returns the path of the first regular audio file in dir,
// by filename order. Subdirectories are not searched.
func FirstAudioFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &types.ReadError{Path: dir, Op: "read directory", Err: err}
	}

	// ReadDir returns entries sorted by filename
	for _, entry := range entries {
		if !IsAudioFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !isRegular(entry, path) {
			continue
		}
		return path, nil
	}

	return "", fmt.Errorf("%s: %w", dir, ErrNoAudioFile)
}

// isRegular follows symlinks, which DirEntry.Type does not.
func isRegular(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
