package engine

import (
	"sync"

	"github.com/vovakirdan/skyraid/internal/core"
)

// InputBuffer collects input from producers running outside the tick loop.
// Held controls are level-triggered and survive a drain; pressed actions are
// queued and consumed by exactly one drain.
type InputBuffer struct {
	mu      sync.Mutex
	held    map[core.Action]bool
	pending []core.Action
}

// NewInputBuffer creates an empty input buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{held: make(map[core.Action]bool)}
}

// Hold marks a control as held until Release.
func (b *InputBuffer) Hold(a core.Action) {
	b.mu.Lock()
	b.held[a] = true
	b.mu.Unlock()
}

// Release clears a held control.
func (b *InputBuffer) Release(a core.Action) {
	b.mu.Lock()
	delete(b.held, a)
	b.mu.Unlock()
}

// Press queues a one-shot action for the next drain.
func (b *InputBuffer) Press(a core.Action) {
	b.mu.Lock()
	b.pending = append(b.pending, a)
	b.mu.Unlock()
}

// Drain returns the input for one tick and empties the action queue.
// The frame is built under a single lock so a tick never sees a partial write.
func (b *InputBuffer) Drain() core.InputFrame {
	b.mu.Lock()
	defer b.mu.Unlock()

	frame := core.NewInputFrame()
	for a := range b.held {
		frame.Hold(a)
	}
	if len(b.pending) > 0 {
		frame.Pressed = b.pending
		b.pending = nil
	}
	return frame
}

// Discard drops queued actions and keeps held controls.
func (b *InputBuffer) Discard() {
	b.mu.Lock()
	b.pending = nil
	b.mu.Unlock()
}

// Reset drops held controls and queued actions.
func (b *InputBuffer) Reset() {
	b.mu.Lock()
	clear(b.held)
	b.pending = nil
	b.mu.Unlock()
}
