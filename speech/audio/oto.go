//go:build !nocgo
// +build !nocgo

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
)

// OtoDevice implements Device on top of the oto audio context.
type OtoDevice struct {
	context *oto.Context
	mu      sync.Mutex
	ready   bool
}

// NewOtoDevice creates the process-wide audio output device.
func NewOtoDevice() (*OtoDevice, error) {
	options := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatSignedInt16LE,
	}

	// Platform-specific buffer size adjustments.
	switch runtime.GOOS {
	case "darwin":
		options.BufferSize = 100 * time.Millisecond
	case "windows":
		options.BufferSize = 80 * time.Millisecond
	default:
		options.BufferSize = 50 * time.Millisecond
	}

	log.Debug("initializing audio device",
		"sample_rate", options.SampleRate,
		"channels", options.ChannelCount,
		"buffer_size", options.BufferSize)

	context, readyChan, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio context: %w", err)
	}

	select {
	case <-readyChan:
	case <-time.After(5 * time.Second):
		// oto v3 contexts have no Close; the stale one is garbage collected.
		return nil, errors.New("audio context initialization timeout")
	}

	log.Debug("audio device ready")
	return &OtoDevice{context: context, ready: true}, nil
}

// NewSource prepares a playback source for the given buffer.
func (d *OtoDevice) NewSource(buf *Buffer) (Source, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ready || d.context == nil {
		return nil, errors.New("audio device not ready")
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, errors.New("no audio to play")
	}

	player := d.context.NewPlayer(bytes.NewReader(buf.Data))
	return &otoSource{
		player:   player,
		duration: buf.Duration,
		done:     make(chan struct{}),
	}, nil
}

// Close releases the device. oto v3 has no context close; the device is
// simply marked unusable.
func (d *OtoDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ready = false
	d.context = nil
	return nil
}

// otoSource wraps an oto player for one playback.
type otoSource struct {
	player   *oto.Player
	duration time.Duration
	done     chan struct{}

	mu      sync.Mutex
	started bool
	stopped bool
}

// Start begins playback and watches for the natural end.
func (s *otoSource) Start() {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	s.player.Play()
	go s.watch()
}

// watch polls the player and closes done when playback drains naturally.
func (s *otoSource) watch() {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		if !s.player.IsPlaying() {
			s.stopped = true
			s.mu.Unlock()
			_ = s.player.Close()
			close(s.done)
			return
		}
		s.mu.Unlock()
	}
}

// Stop halts playback early without signaling Done.
func (s *otoSource) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	_ = s.player.Close()
}

// Done reports natural end of playback.
func (s *otoSource) Done() <-chan struct{} {
	return s.done
}
