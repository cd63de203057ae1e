package audio

import (
	"errors"
	"sync"
)

// MockDevice implements Device for testing. Sources never touch real audio
// hardware; tests drive their lifecycle explicitly.
type MockDevice struct {
	mu      sync.Mutex
	closed  bool
	sources []*MockSource

	// Error injection for testing.
	NewSourceError error
}

// NewMockDevice creates a mock audio device.
func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

// NewSource prepares a mock source and records it.
func (d *MockDevice) NewSource(buf *Buffer) (Source, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.NewSourceError != nil {
		return nil, d.NewSourceError
	}
	if d.closed {
		return nil, errors.New("audio device not ready")
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, errors.New("no audio to play")
	}

	s := &MockSource{Buffer: buf, done: make(chan struct{})}
	d.sources = append(d.sources, s)
	return s, nil
}

// Close marks the device unusable.
func (d *MockDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

// Sources returns every source ever created, in creation order.
func (d *MockDevice) Sources() []*MockSource {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*MockSource, len(d.sources))
	copy(out, d.sources)
	return out
}

// LiveCount returns the number of sources that are started and not yet
// stopped or finished.
func (d *MockDevice) LiveCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, s := range d.sources {
		if s.IsLive() {
			n++
		}
	}
	return n
}

// MockSource is a controllable playback source for tests.
type MockSource struct {
	Buffer *Buffer

	mu       sync.Mutex
	started  bool
	stopped  bool
	finished bool
	done     chan struct{}
}

// Start marks the source as playing.
func (s *MockSource) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.finished {
		return
	}
	s.started = true
}

// Stop halts the source early. Done is not signaled.
func (s *MockSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

// Done reports natural end of playback.
func (s *MockSource) Done() <-chan struct{} {
	return s.done
}

// FinishNaturally simulates the source draining to its natural end.
func (s *MockSource) FinishNaturally() {
	s.mu.Lock()
	if s.stopped || s.finished || !s.started {
		s.mu.Unlock()
		return
	}
	s.finished = true
	s.mu.Unlock()
	close(s.done)
}

// IsLive reports whether the source is currently playing.
func (s *MockSource) IsLive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && !s.stopped && !s.finished
}

// WasStarted reports whether Start was ever called.
func (s *MockSource) WasStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// WasStopped reports whether Stop was called before a natural end.
func (s *MockSource) WasStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
