package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/coverart/internal/m4a"
)

// newBoxesCommand dumps the atom tree of an MP4-family file. Useful to
// confirm what is actually stored along the moov/udta/meta/ilst/covr chain.
func newBoxesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boxes <file>",
		Short: "Print the atom tree of an M4A/M4B/MP4 file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			stat, err := f.Stat()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = m4a.Walk(f, stat.Size(), path, func(a *m4a.Atom, depth int) error {
				ext := ""
				if a.Extended {
					ext = ", 64-bit"
				}
				_, err := fmt.Fprintf(out, "%s%s (size: %d, offset: %d%s)\n",
					strings.Repeat("  ", depth), a.Type, a.Size, a.Offset, ext)
				return err
			})
			if err != nil {
				return fmt.Errorf("walk %s: %w", path, err)
			}
			return nil
		},
	}
}
