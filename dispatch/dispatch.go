// Package dispatch serializes long-running study actions behind a single
// busy indicator so the UI can disable inputs while work is in flight.
package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrBusy is returned when an action is requested while another is
// already running.
var ErrBusy = errors.New("another action is already running")

// Dispatcher runs at most one action at a time. The busy flag is set
// before the action starts and cleared when it returns, whether it
// succeeds, fails or panics.
type Dispatcher struct {
	mu       sync.Mutex
	idle     *sync.Cond
	busy     bool
	onChange func(bool)
}

// New creates an idle dispatcher.
func New() *Dispatcher {
	d := &Dispatcher{}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// OnBusyChange registers a callback invoked whenever the busy flag flips.
// The callback runs outside the dispatcher lock.
func (d *Dispatcher) OnBusyChange(fn func(busy bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onChange = fn
}

// Busy reports whether an action is currently running.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// Perform runs fn if no other action is in flight, otherwise returns
// ErrBusy without running it. The busy flag is guaranteed to clear when
// fn returns, even on panic.
func (d *Dispatcher) Perform(name string, fn func() error) (err error) {
	if !d.tryAcquire() {
		log.Debug("action rejected while busy", "action", name)
		return fmt.Errorf("%s: %w", name, ErrBusy)
	}
	defer d.release()

	defer func() {
		if r := recover(); r != nil {
			log.Error("action panicked", "action", name, "panic", r)
			err = fmt.Errorf("%s: panic: %v", name, r)
		}
	}()

	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Track runs fn under the busy flag, waiting for the flag rather than
// rejecting. It backs playback fetches, which must not fail just because
// another action holds the indicator.
func (d *Dispatcher) Track(fn func() error) error {
	d.mu.Lock()
	for d.busy {
		d.idle.Wait()
	}
	d.busy = true
	onChange := d.onChange
	d.mu.Unlock()

	if onChange != nil {
		onChange(true)
	}
	defer d.release()
	return fn()
}

func (d *Dispatcher) tryAcquire() bool {
	d.mu.Lock()
	if d.busy {
		d.mu.Unlock()
		return false
	}
	d.busy = true
	fn := d.onChange
	d.mu.Unlock()

	if fn != nil {
		fn(true)
	}
	return true
}

func (d *Dispatcher) release() {
	d.mu.Lock()
	d.busy = false
	fn := d.onChange
	d.idle.Signal()
	d.mu.Unlock()

	if fn != nil {
		fn(false)
	}
}
