package fetch

import "github.com/google/uuid"

// Request is one URL to download. Progress, when set, receives cumulative
// bytes written and the declared total (total <= 0 means unknown size).
type Request struct {
	ID       string
	URL      string
	Progress func(downloaded, total int64)
}

func NewRequest(url string) Request {
	return Request{
		ID:  uuid.New().String(),
		URL: url,
	}
}

// Result is the terminal outcome for one request. Exactly one Result is
// produced per Request; Err is nil on success and Path points at the
// downloaded file.
type Result struct {
	Request Request
	Path    string
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// SuccessPaths extracts the written file paths from a batch, dropping
// failures.
func SuccessPaths(results []Result) []string {
	var paths []string
	for _, res := range results {
		if res.OK() {
			paths = append(paths, res.Path)
		}
	}
	return paths
}
