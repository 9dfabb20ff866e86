package engine

import (
	"sync"
	"time"
)

// driver fires tick on a fixed interval from a single goroutine, so ticks
// never overlap. A tick that overruns the interval delays the next one.
type driver struct {
	interval time.Duration
	tick     func() bool // Returns false to end the loop

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func newDriver(interval time.Duration, tick func() bool) *driver {
	return &driver{interval: interval, tick: tick}
}

// start halts any previous loop, waits for it to exit, then launches a new one.
func (d *driver) start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.haltLocked()
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	go d.run(d.stop, d.done)
}

// halt stops the loop and waits for it to exit. A tick already in flight
// completes first; no tick starts after halt returns.
// It must not be called from inside tick.
func (d *driver) halt() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.haltLocked()
}

func (d *driver) haltLocked() {
	if d.stop == nil {
		return
	}
	close(d.stop)
	<-d.done
	d.stop = nil
	d.done = nil
}

// wait returns a channel closed when the current loop exits, or nil when no
// loop was ever started.
func (d *driver) wait() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *driver) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			// Both cases may be ready at once; stop wins.
			select {
			case <-stop:
				return
			default:
			}
			if !d.tick() {
				return
			}
		}
	}
}
