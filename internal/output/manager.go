package output

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

type jobOutput struct {
	index        int
	url          string
	status       string
	message      string
	progressLine string
	complete     bool
	startTime    time.Time
	lastUpdated  time.Time
	err          error
}

type errorReport struct {
	url  string
	err  error
	time time.Time
}

// Manager renders a live view of concurrent downloads on one terminal. All
// methods are safe for concurrent use.
type Manager struct {
	mutex     sync.RWMutex
	outputs   map[int]*jobOutput
	errors    []errorReport
	jobCount  int
	numLines  int
	doneCh    chan struct{}
	displayWg sync.WaitGroup
	tick      time.Duration
}

func NewManager() *Manager {
	return &Manager{
		outputs: make(map[int]*jobOutput),
		doneCh:  make(chan struct{}),
		tick:    300 * time.Millisecond,
	}
}

func (m *Manager) Register(url string) int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.jobCount++
	m.outputs[m.jobCount] = &jobOutput{
		index:       m.jobCount,
		url:         url,
		status:      "pending",
		startTime:   time.Now(),
		lastUpdated: time.Now(),
	}
	return m.jobCount
}

func (m *Manager) SetMessage(id int, message string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if info, exists := m.outputs[id]; exists {
		info.message = message
		info.lastUpdated = time.Now()
	}
}

func (m *Manager) SetStatus(id int, status string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if info, exists := m.outputs[id]; exists {
		info.status = status
		info.lastUpdated = time.Now()
	}
}

// SetProgress updates the rendered progress line for a running download.
func (m *Manager) SetProgress(id int, downloaded, total int64, label string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if info, exists := m.outputs[id]; exists {
		info.status = "running"
		info.progressLine = ProgressBar(downloaded, total, 30, label)
		info.lastUpdated = time.Now()
	}
}

func (m *Manager) Complete(id int, message string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if info, exists := m.outputs[id]; exists {
		info.progressLine = ""
		info.message = message
		info.complete = true
		info.status = "success"
		info.lastUpdated = time.Now()
	}
}

func (m *Manager) Fail(id int, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if info, exists := m.outputs[id]; exists {
		info.progressLine = ""
		info.message = fmt.Sprintf("Failed %s", info.url)
		info.complete = true
		info.status = "error"
		info.err = err
		info.lastUpdated = time.Now()
		m.errors = append(m.errors, errorReport{url: info.url, err: err, time: time.Now()})
	}
}

func (m *Manager) statusIndicator(status string) string {
	switch status {
	case "success":
		return successStyle.Render(StyleSymbols["pass"])
	case "error":
		return errorStyle.Render(StyleSymbols["fail"])
	case "pending":
		return pendingStyle.Render(StyleSymbols["pending"])
	default:
		return infoStyle.Render(StyleSymbols["bullet"])
	}
}

func (m *Manager) sortJobs() (active, completed []*jobOutput) {
	var all []*jobOutput
	for _, info := range m.outputs {
		all = append(all, info)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].index < all[j].index
	})
	for _, j := range all {
		if j.complete {
			completed = append(completed, j)
		} else {
			active = append(active, j)
		}
	}
	return active, completed
}

func (m *Manager) updateDisplay() {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	availableLines := getTerminalHeight() - 3
	if m.numLines > 0 {
		fmt.Printf("\033[%dA\033[J", m.numLines)
	}

	lineCount := 0
	active, completed := m.sortJobs()

	// Trim oldest completed jobs when the terminal is short
	needed := len(completed)
	for _, j := range active {
		needed++
		if j.progressLine != "" {
			needed++
		}
	}
	if needed > availableLines && len(completed) > 0 {
		keep := max(availableLines-(needed-len(completed)), 0)
		completed = completed[len(completed)-min(keep, len(completed)):]
	}

	for _, j := range completed {
		if lineCount >= availableLines {
			break
		}
		elapsed := j.lastUpdated.Sub(j.startTime).Round(time.Second)
		styled := successStyle.Render(j.message)
		if j.status == "error" {
			styled = errorStyle.Render(j.message)
		}
		fmt.Printf("  %s %s %s\n", m.statusIndicator(j.status), debugStyle.Render(elapsed.String()), styled)
		lineCount++
	}
	for _, j := range active {
		if lineCount >= availableLines {
			break
		}
		if j.status == "pending" {
			fmt.Printf("  %s %s\n", m.statusIndicator(j.status), pendingStyle.Render("Waiting..."))
			lineCount++
			continue
		}
		elapsed := time.Since(j.startTime).Round(time.Second)
		message := j.message
		if message == "" {
			message = j.url
		}
		fmt.Printf("  %s %s %s\n", m.statusIndicator(j.status), debugStyle.Render(elapsed.String()), pendingStyle.Render(message))
		lineCount++
		if j.progressLine != "" && lineCount < availableLines {
			fmt.Printf("      %s\n", j.progressLine)
			lineCount++
		}
	}
	m.numLines = lineCount
}

func (m *Manager) StartDisplay() {
	m.displayWg.Add(1)
	go func() {
		defer m.displayWg.Done()
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.updateDisplay()
			case <-m.doneCh:
				m.updateDisplay()
				m.ShowSummary()
				return
			}
		}
	}()
}

func (m *Manager) StopDisplay() {
	close(m.doneCh)
	m.displayWg.Wait()
}

func (m *Manager) displayErrors() {
	if len(m.errors) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("  " + errorStyle.Bold(true).Render("Errors:"))
	for i, report := range m.errors {
		fmt.Printf("    %s %s %s\n",
			errorStyle.Render(fmt.Sprintf("%d.", i+1)),
			debugStyle.Render(fmt.Sprintf("[%s]", report.time.Format("15:04:05"))),
			errorStyle.Render(report.url))
		fmt.Printf("      %s\n", errorStyle.Render(fmt.Sprintf("Error: %v", report.err)))
	}
}

func (m *Manager) ShowSummary() {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	fmt.Println()
	var success, failures int
	for _, info := range m.outputs {
		switch info.status {
		case "success":
			success++
		case "error":
			failures++
		}
	}
	fmt.Println("  " + success2Style.Render(fmt.Sprintf("Completed %d of %d", success, len(m.outputs))))
	if failures > 0 {
		fmt.Println("  " + errorStyle.Render(fmt.Sprintf("Failed %d of %d", failures, len(m.outputs))))
	}
	m.displayErrors()
	fmt.Println()
}
