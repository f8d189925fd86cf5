package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yangzhi/snag/internal/output"
	"github.com/yangzhi/snag/internal/rename"
)

func newRenameCmd() *cobra.Command {
	var pattern string
	var remove string
	var with string

	cmd := &cobra.Command{
		Use:   "rename [DIR] --remove STR",
		Short: "Batch-rename files by replacing a substring in their names",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			results, err := rename.Apply(args[0], pattern, remove, with)
			if err != nil {
				output.PrintError(fmt.Sprintf("Rename failed: %v", err))
				os.Exit(1)
			}
			var failures int
			for _, res := range results {
				if res.Err != nil {
					failures++
					output.PrintError(fmt.Sprintf("Failed %s: %v", res.OldName, res.Err))
				} else {
					output.PrintInfo(fmt.Sprintf("%s %s %s", res.OldName, output.StyleSymbols["arrow"], res.NewName))
				}
			}
			output.PrintSuccess(fmt.Sprintf("Renamed %d of %d files", len(results)-failures, len(results)))
			if failures > 0 {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "*", "Glob pattern for files to rename")
	cmd.Flags().StringVar(&remove, "remove", "", "Substring to remove or replace in file names")
	cmd.Flags().StringVar(&with, "with", "", "Replacement for the removed substring")
	cmd.MarkFlagRequired("remove")
	return cmd
}
