package cmd

import (
	"fmt"
	u "net/url"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/yangzhi/snag/internal/fetch"
	"github.com/yangzhi/snag/internal/output"
	"github.com/yangzhi/snag/internal/utils"
)

func newGetCmd() *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "get [URL]... [--dir DIR]",
		Short: "Download one or more URLs into a directory",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, raw := range args {
				if _, err := u.Parse(raw); err != nil {
					output.PrintError(fmt.Sprintf("Invalid URL: %s", raw))
					os.Exit(1)
				}
			}
			results := runFetch(args, destDir)
			var failures int
			for _, res := range results {
				if !res.OK() {
					failures++
				}
			}
			if failures > 0 {
				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringVarP(&destDir, "dir", "d", "downloads", "Destination directory")
	return cmd
}

// runFetch drives a batch of downloads with live progress output. A single
// URL gets a plain byte progress bar; batches get the multi-job display.
func runFetch(urls []string, destDir string) []fetch.Result {
	fetcher := fetch.NewFetcher(utils.NewClient(clientConfig()))
	dispatcher := fetch.NewDispatcher(fetcher, workers)

	if len(urls) == 1 {
		return []fetch.Result{fetchSingle(fetcher, urls[0], destDir)}
	}

	output.PrintHeader(fmt.Sprintf("Downloading %d files to %s", len(urls), destDir))
	mgr := output.NewManager()
	requests := make([]fetch.Request, 0, len(urls))
	managerIDs := make(map[string]int, len(urls))
	for _, url := range urls {
		req := fetch.NewRequest(url)
		id := mgr.Register(url)
		managerIDs[req.ID] = id
		name := fetch.FilenameFor(url)
		req.Progress = func(downloaded, total int64) {
			mgr.SetProgress(id, downloaded, total, fmt.Sprintf("%s %s", name, utils.FormatBytes(uint64(downloaded))))
		}
		requests = append(requests, req)
	}
	dispatcher.OnResult = func(res fetch.Result) {
		id := managerIDs[res.Request.ID]
		if res.OK() {
			mgr.Complete(id, fmt.Sprintf("Downloaded %s", res.Path))
		} else {
			mgr.Fail(id, res.Err)
		}
	}

	mgr.StartDisplay()
	results := dispatcher.FetchAll(requests, destDir)
	mgr.StopDisplay()
	return results
}

func fetchSingle(fetcher *fetch.Fetcher, url, destDir string) fetch.Result {
	req := fetch.NewRequest(url)
	var bar *progressbar.ProgressBar
	req.Progress = func(downloaded, total int64) {
		if bar == nil {
			bar = progressbar.DefaultBytes(total, fetch.FilenameFor(url))
		}
		bar.Set64(downloaded)
	}
	path, err := fetcher.Fetch(req, destDir)
	if bar != nil {
		bar.Finish()
		fmt.Println()
	}
	if err != nil {
		output.PrintError(fmt.Sprintf("Failed %s: %v", url, err))
	} else {
		output.PrintSuccess(fmt.Sprintf("Downloaded %s", path))
	}
	return fetch.Result{Request: req, Path: path, Err: err}
}
