package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/yangzhi/snag/internal/output"
)

type BatchFile struct {
	Dir   string   `yaml:"dir,omitempty"`
	Links []string `yaml:"links"`
}

func newBatchCmd() *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Download all URLs listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading YAML file: %v\n", err)
				os.Exit(1)
			}
			var batchFile BatchFile
			if err := yaml.Unmarshal(data, &batchFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing YAML file: %v\n", err)
				os.Exit(1)
			}
			var links []string
			for _, link := range batchFile.Links {
				if link == "" {
					output.PrintWarning("Warning: Empty link in batch file, skipping...")
					continue
				}
				links = append(links, link)
			}
			if len(links) == 0 {
				fmt.Fprintf(os.Stderr, "No valid links found in the batch file\n")
				os.Exit(1)
			}
			if !cmd.Flags().Changed("dir") && batchFile.Dir != "" {
				destDir = batchFile.Dir
			}
			results := runFetch(links, destDir)
			for _, res := range results {
				if !res.OK() {
					output.PrintError("Encountered failed download(s)")
					os.Exit(1)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&destDir, "dir", "d", "downloads", "Destination directory (overrides the file's dir)")
	return cmd
}
