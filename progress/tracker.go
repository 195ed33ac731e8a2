package progress

import "sync"

// Tracker is an io.Writer that reports bytes written against a known total
// on a progress bar. The bar is rendered only when the whole percentage
// changes. Written bytes are counted and discarded.
//
//	tracker := progress.NewTracker(bar, resp.ContentLength)
//	_, err := io.Copy(dst, io.TeeReader(resp.Body, tracker))
type Tracker struct {
	bar   *ProgressBar
	total int64

	mu      sync.Mutex
	written int64
	last    int
}

// NewTracker creates a tracker for total bytes. A total of zero or less
// never advances the bar until Done.
func NewTracker(bar *ProgressBar, total int64) *Tracker {
	return &Tracker{bar: bar, total: total, last: -1}
}

// Write implements io.Writer.
func (t *Tracker) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.written += int64(len(p))
	t.renderLocked(t.percentLocked())
	return len(p), nil
}

// Written returns the bytes counted so far.
func (t *Tracker) Written() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.written
}

// Done renders the bar at 100%.
func (t *Tracker) Done() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderLocked(100)
}

func (t *Tracker) percentLocked() int {
	if t.total <= 0 {
		return 0
	}
	return int(min(t.written*100/t.total, 100))
}

// renderLocked updates the bar while holding t.mu so renders from concurrent
// writers land in increasing order.
func (t *Tracker) renderLocked(percent int) {
	if percent == t.last {
		return
	}
	t.last = percent
	t.bar.Update(percent)
}
