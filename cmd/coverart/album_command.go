package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/covers"
	"github.com/simonhull/coverart/internal/types"
)

type albumResult struct {
	dir   string
	track string
	art   *coverart.Artwork
	err   error
}

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "album <dir>...",
		Short: "Show the cover of each album folder",
		Long: "For each directory, read the cover embedded in its first audio file (by file\n" +
			"name) and summarize the results in a table.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.logger(cfg, cmd.ErrOrStderr())
			opts := extractOptions(cfg, log)

			results := make([]albumResult, len(args))

			g, gctx := errgroup.WithContext(cmd.Context())
			workers := cfg.Extract.Workers
			if workers == 0 {
				workers = runtime.NumCPU()
			}
			g.SetLimit(workers)

			for i, dir := range args {
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						return err
					}
					art, track, err := coverart.AlbumArt(dir, opts...)
					results[i] = albumResult{dir: dir, track: track, art: art, err: err}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var store *covers.Storage
			if save {
				if store, err = covers.NewStorage(cfg.Extract.OutputDir); err != nil {
					return err
				}
			}

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, r := range results {
				row := []string{filepath.Base(filepath.Clean(r.dir)), filepath.Base(r.track), "-", "-"}
				switch {
				case r.err == nil:
					row[2] = albumCover(r.art)
					row[3] = types.FormatSize(len(r.art.Data))
					if store != nil {
						if _, err := store.Save(filepath.Base(filepath.Clean(r.dir)), r.art.Data); err != nil {
							log.Warn("save failed", slog.String("dir", r.dir), slog.Any("error", err))
						}
					}
				case errors.Is(r.err, coverart.ErrNoAudioFile):
					row[1] = "-"
					row[2] = "no audio files"
				case errors.Is(r.err, coverart.ErrNoArtwork):
					row[2] = "none"
				default:
					row[2] = "error"
					failed++
					log.Warn("album failed", slog.String("dir", r.dir), slog.Any("error", r.err))
				}
				rows = append(rows, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Album", "Track", "Cover", "Size"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))

			if failed > 0 {
				return fmt.Errorf("%d of %d album(s) could not be read", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save each cover to the output directory, named after its folder")
	return cmd
}

func albumCover(art *coverart.Artwork) string {
	s := art.Kind.String()
	if art.Width > 0 && art.Height > 0 {
		s += fmt.Sprintf(" %dx%d", art.Width, art.Height)
	}
	if art.Recovered {
		s += " (recovered)"
	}
	return s
}
