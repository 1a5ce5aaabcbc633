package coverart

import "log/slog"

// Option configures artwork extraction.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	art, err := coverart.Extract("song.m4a",
//	    coverart.WithMaxArtworkSize(10*1024*1024),
//	    coverart.WithLogger(slog.Default()),
//	)
type Option func(*extractOptions)

// extractOptions holds configuration for extraction calls.
type extractOptions struct {
	maxArtworkSize int          // Maximum artwork size in bytes (0 = no limit)
	workers        int          // ExtractMany concurrency (0 = runtime.NumCPU())
	logger         *slog.Logger // Never nil
}

// defaultOptions returns the default configuration.
func defaultOptions() *extractOptions {
	return &extractOptions{
		maxArtworkSize: 0, // No limit
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithMaxArtworkSize sets a maximum size limit for extracted artwork.
//
// If artwork exceeds this size (in bytes), Extract returns an
// *ArtworkTooLargeError instead of the image.
//
// Default is 0 (no limit).
//
// Example:
//
//	// Limit artwork to 10MB
//	art, err := coverart.Extract("song.mp3",
//	    coverart.WithMaxArtworkSize(10*1024*1024),
//	)
func WithMaxArtworkSize(bytes int) Option {
	return func(o *extractOptions) {
		o.maxArtworkSize = bytes
	}
}

// WithLogger routes extraction diagnostics to logger.
//
// Extraction logs at Debug for normal outcomes and at Warn for I/O failures.
// By default nothing is logged. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *extractOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers limits how many files ExtractMany scans at once.
//
// Default is 0, meaning one per CPU (runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(o *extractOptions) {
		o.workers = max(n, 0)
	}
}
