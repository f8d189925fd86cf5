package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yangzhi/snag/internal/mdstrip"
	"github.com/yangzhi/snag/internal/output"
)

func newStripCmd() *cobra.Command {
	var lines int
	var ext string

	cmd := &cobra.Command{
		Use:   "strip [DIR]",
		Short: "Remove the leading lines from markdown files in a directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results, err := mdstrip.Strip(args[0], ext, lines)
			if err != nil {
				output.PrintError(fmt.Sprintf("Strip failed: %v", err))
				os.Exit(1)
			}
			var failures int
			for _, res := range results {
				if res.Err != nil {
					failures++
					output.PrintError(fmt.Sprintf("Failed %s: %v", res.Path, res.Err))
				}
			}
			output.PrintSuccess(fmt.Sprintf("Stripped %d of %d files", len(results)-failures, len(results)))
			if failures > 0 {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", mdstrip.DefaultLines, "Number of leading lines to remove")
	cmd.Flags().StringVarP(&ext, "ext", "e", ".md", "File extension to process")
	return cmd
}
