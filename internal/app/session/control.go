package session

import (
	"errors"
	"sync"
)

var ErrControlBusy = errors.New("control busy")

// Control is a trigger such as a "Calculate" button. While acquired it
// shows the busy label and refuses a second acquisition.
type Control struct {
	mu    sync.Mutex
	label string
	shown string
	busy  bool
}

func NewControl(label string) *Control {
	return &Control{label: label, shown: label}
}

// Acquire marks the control busy. The returned release restores the
// original label and may be called more than once.
func (c *Control) Acquire(busyLabel string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return nil, ErrControlBusy
	}
	c.busy = true
	c.shown = busyLabel
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.busy = false
			c.shown = c.label
		})
	}, nil
}

func (c *Control) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Control) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shown
}
