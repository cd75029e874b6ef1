package services

import (
	"sync"
	"time"
)

const DefaultSearchDebounce = 300 * time.Millisecond

// SearchDebouncer delays propagation of a search term so a burst of
// keystrokes produces at most one downstream emission per quiet period.
// Only one timer is ever live: each Push cancels the pending one, and the
// value live at expiry is what gets emitted.
type SearchDebouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	last  string
	sink  func(string)
}

func NewSearchDebouncer(delay time.Duration, sink func(string)) *SearchDebouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &SearchDebouncer{delay: delay, sink: sink}
}

func (d *SearchDebouncer) Push(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = value
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.emit)
}

func (d *SearchDebouncer) emit() {
	d.mu.Lock()
	value := d.last
	d.timer = nil
	d.mu.Unlock()

	d.sink(value)
}

// Stop cancels any pending emission, for teardown.
func (d *SearchDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
