package fetch

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/yangzhi/snag/internal/utils"
)

// Fetcher downloads single URLs into a destination directory. One attempt per
// request; the batch layer records failures and moves on.
type Fetcher struct {
	client    *utils.Client
	chunkSize int
}

func NewFetcher(client *utils.Client) *Fetcher {
	return &Fetcher{
		client:    client,
		chunkSize: utils.ChunkSize,
	}
}

// Fetch retrieves one URL and streams it to destDir, creating the directory
// tree if needed. It returns the full path of the written file. The file at
// the derived name is overwritten if it already exists.
func (f *Fetcher) Fetch(req Request, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", filesystemError(err)
	}
	destPath := filepath.Join(destDir, FilenameFor(req.URL))

	httpReq, err := http.NewRequest("GET", req.URL, nil)
	if err != nil {
		return "", &Error{Kind: ErrorNetwork, Err: err}
	}
	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", httpStatusError(resp.StatusCode)
	}

	// -1 when the server sent no Content-Length
	totalSize := resp.ContentLength

	outFile, err := os.Create(destPath)
	if err != nil {
		return "", filesystemError(err)
	}
	var written int64
	buffer := make([]byte, f.chunkSize)
	for {
		bytesRead, readErr := resp.Body.Read(buffer)
		if bytesRead > 0 {
			if _, writeErr := outFile.Write(buffer[:bytesRead]); writeErr != nil {
				outFile.Close()
				return "", filesystemError(writeErr)
			}
			written += int64(bytesRead)
			if req.Progress != nil {
				req.Progress(written, totalSize)
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			outFile.Close()
			return "", classifyTransport(readErr)
		}
	}
	if err := outFile.Close(); err != nil {
		return "", filesystemError(err)
	}
	log.Debug().Str("op", "fetch").Str("url", req.URL).Int64("bytes", written).Msgf("Wrote %s", destPath)
	return destPath, nil
}
