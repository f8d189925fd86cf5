package fetch

import (
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
)

// MaxWorkers caps the worker pool; downloads are IO-bound so the default runs
// well past the core count, but unbounded fan-out overwhelms remote hosts.
const MaxWorkers = 32

// DefaultWorkers is the pool size when no override is given.
func DefaultWorkers() int {
	return min(runtime.NumCPU()*2, MaxWorkers)
}

// Dispatcher fans requests out over a bounded worker pool and aggregates one
// Result per request. Requests past the pool size queue; a failed request
// never affects its siblings.
type Dispatcher struct {
	fetcher *Fetcher
	workers int

	// OnResult, when set, is called once per completed request, in
	// completion order, from the collecting goroutine.
	OnResult func(Result)
}

func NewDispatcher(fetcher *Fetcher, workers int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Dispatcher{
		fetcher: fetcher,
		workers: workers,
	}
}

func (d *Dispatcher) Workers() int {
	return d.workers
}

// FetchAll downloads every request into destDir and returns the results in
// completion order. len(results) always equals len(requests).
func (d *Dispatcher) FetchAll(requests []Request, destDir string) []Result {
	log.Debug().Str("op", "dispatch").Int("workers", d.workers).Int("requests", len(requests)).Msg("Starting batch")
	reqCh := make(chan Request, len(requests))
	for _, req := range requests {
		reqCh <- req
	}
	close(reqCh)

	resCh := make(chan Result, len(requests))
	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for req := range reqCh {
				path, err := d.fetcher.Fetch(req, destDir)
				resCh <- Result{Request: req, Path: path, Err: err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resCh)
	}()

	results := make([]Result, 0, len(requests))
	for res := range resCh {
		if res.OK() {
			log.Debug().Str("op", "dispatch").Str("url", res.Request.URL).Msgf("Downloaded %s", res.Path)
		} else {
			log.Debug().Str("op", "dispatch").Str("url", res.Request.URL).Err(res.Err).Msg("Download failed")
		}
		if d.OnResult != nil {
			d.OnResult(res)
		}
		results = append(results, res)
	}
	return results
}
