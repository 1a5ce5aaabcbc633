package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/covers"
	"github.com/simonhull/coverart/internal/preview"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir string
		maxSize   int
		blurHash  bool
		toStdout  bool
	)

	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Save the embedded cover of audio files",
		Long: "Extract the embedded cover of each file and save it to the output directory as\n" +
			"<file name><.jpg|.png>. Files without a cover are reported and skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("output-dir") {
				cfg.Extract.OutputDir = outputDir
			}
			if flags.Changed("max-size") {
				cfg.Extract.MaxArtworkSize = maxSize
			}
			if flags.Changed("blurhash") {
				cfg.Extract.BlurHash = blurHash
			}

			log := ctx.logger(cfg, cmd.ErrOrStderr())
			opts := extractOptions(cfg, log)

			if toStdout {
				if len(args) != 1 {
					return errors.New("--stdout takes exactly one file")
				}
				art, err := coverart.ExtractContext(cmd.Context(), args[0], opts...)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(art.Data)
				return err
			}

			results, err := coverart.ExtractMany(cmd.Context(), args, opts...)
			if err != nil {
				return err
			}

			store, err := covers.NewStorage(cfg.Extract.OutputDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			saved := 0
			for i, art := range results {
				path := args[i]
				if art == nil {
					fmt.Fprintf(out, "%s: no artwork\n", path)
					continue
				}

				id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				dest, err := store.Save(id, art.Data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				saved++

				fmt.Fprintf(out, "%s -> %s (%s)\n", path, dest, art)
				if cfg.Extract.BlurHash {
					printBlurHash(out, log, path, art.Data)
				}
			}

			if saved == 0 {
				return fmt.Errorf("no artwork extracted from %d file(s): %w", len(args), coverart.ErrNoArtwork)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory covers are written to")
	cmd.Flags().IntVar(&maxSize, "max-size", 0, "Skip covers larger than this many bytes (0 = no limit)")
	cmd.Flags().BoolVar(&blurHash, "blurhash", false, "Print a BlurHash placeholder for each cover")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the cover bytes of a single file to stdout")
	return cmd
}

func printBlurHash(out io.Writer, log *slog.Logger, path string, data []byte) {
	hash, err := preview.BlurHash(data)
	if err != nil {
		log.Warn("blurhash failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	fmt.Fprintf(out, "  blurhash: %s\n", hash)
}
