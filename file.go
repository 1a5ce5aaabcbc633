package coverart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/coverart/internal/album"
	"github.com/simonhull/coverart/internal/registry"
	"github.com/simonhull/coverart/internal/types"

	// Scanners register themselves with the registry in init.
	_ "github.com/simonhull/coverart/internal/m4a"
	_ "github.com/simonhull/coverart/internal/mp3"
)

// Extract returns the cover image embedded in the audio file at path.
//
// The container is picked from the file extension (case-insensitive):
// .mp3 is scanned for an ID3v2 APIC frame, .m4a/.aac/.m4b/.mp4 for the
// moov/udta/meta/ilst/covr atom chain. Other extensions fail with an
// *UnsupportedFormatError without touching the file.
//
// Errors:
//   - ErrNoArtwork when the file carries no usable picture or is malformed
//     (errors.Is(err, ErrNoArtwork) also holds for *UnsupportedFormatError)
//   - *ReadError when the file cannot be opened or read
//
// Example:
//
//	art, err := coverart.Extract("song.mp3")
//	if errors.Is(err, coverart.ErrNoArtwork) {
//		return nil // no cover, show a placeholder
//	}
//	if err != nil {
//		return err
//	}
//	os.WriteFile("cover"+art.Kind.Extension(), art.Data, 0o644)
func Extract(path string, opts ...Option) (*Artwork, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return extract(path, options)
}

func extract(path string, options *extractOptions) (*Artwork, error) {
	log := options.logger.With(slog.String("path", path))

	format := types.FormatFromPath(path)
	scanner := registry.Get(format)
	if scanner == nil {
		log.Debug("unsupported extension", slog.String("ext", filepath.Ext(path)))
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no scanner for extension %q", filepath.Ext(path)),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("open failed", slog.Any("error", err))
		return nil, &ReadError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		log.Warn("stat failed", slog.Any("error", err))
		return nil, &ReadError{Path: path, Op: "stat", Err: err}
	}

	art, err := scanner.ExtractArtwork(f, stat.Size(), path)
	if err != nil {
		if errors.Is(err, ErrNoArtwork) {
			log.Debug("no artwork", slog.String("format", format.String()))
		} else {
			log.Warn("artwork scan failed", slog.String("format", format.String()), slog.Any("error", err))
		}
		return nil, err
	}

	if options.maxArtworkSize > 0 && len(art.Data) > options.maxArtworkSize {
		log.Warn("artwork exceeds size limit",
			slog.Int("bytes", len(art.Data)),
			slog.Int("limit", options.maxArtworkSize))
		return nil, &ArtworkTooLargeError{Path: path, Size: len(art.Data), Limit: options.maxArtworkSize}
	}

	log.Debug("artwork extracted",
		slog.String("format", format.String()),
		slog.String("kind", art.Kind.String()),
		slog.Int("bytes", len(art.Data)),
		slog.Bool("recovered", art.Recovered))

	return art, nil
}

// ExtractContext extracts artwork with context support for cancellation.
//
// This is a thin wrapper around Extract() that checks context before starting.
// Extraction of a single file is short and synchronous, so the context is not
// consulted once scanning has begun.
func ExtractContext(ctx context.Context, path string, opts ...Option) (*Artwork, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Extract(path, opts...)
}

// ExtractMany extracts artwork from multiple files concurrently.
//
// Files are scanned in parallel using up to runtime.NumCPU() goroutines
// (see WithWorkers).
// Results are returned in the same order as the input paths. A file without
// artwork (including an unsupported extension) leaves a nil entry; any other
// error cancels the batch and is returned.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	covers, err := coverart.ExtractMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, art := range covers {
//		if art != nil {
//			fmt.Printf("%s: %s\n", paths[i], art)
//		}
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) ([]*Artwork, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	g, ctx := errgroup.WithContext(ctx)
	workers := options.workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	g.SetLimit(workers) // Limit concurrent operations

	results := make([]*Artwork, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			art, err := extract(path, options)
			if err != nil {
				if errors.Is(err, ErrNoArtwork) {
					return nil
				}
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = art
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// AlbumArt returns the cover embedded in the first audio file of dir, by
// filename order. It returns the chosen file's path alongside the artwork.
//
// A directory without audio files yields an error matching both
// ErrNoAudioFile and ErrNoArtwork.
func AlbumArt(dir string, opts ...Option) (*Artwork, string, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	track, err := album.FirstAudioFile(dir)
	if err != nil {
		if !errors.Is(err, ErrNoAudioFile) {
			options.logger.Warn("album scan failed", slog.String("dir", dir), slog.Any("error", err))
		}
		return nil, "", err
	}

	options.logger.Debug("album track selected", slog.String("dir", dir), slog.String("track", track))

	art, err := extract(track, options)
	if err != nil {
		return nil, track, err
	}
	return art, track, nil
}

// SupportedExtensions returns the file extensions Extract can scan.
func SupportedExtensions() []string {
	var exts []string
	for _, f := range registry.Formats() {
		exts = append(exts, f.Extensions()...)
	}
	return exts
}
