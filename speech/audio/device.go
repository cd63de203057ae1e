// Package audio owns the audio output device and decoded sample buffers
// for speech playback.
package audio

import (
	"errors"
	"fmt"
	"time"
)

// Audio format constants. Synthesized speech arrives as raw PCM in exactly
// this format; the output device is opened once to match it.
const (
	// SampleRate is the audio sample rate in Hz.
	SampleRate = 24000
	// Channels is the number of audio channels (1 = mono).
	Channels = 1
	// BitDepth is the bit depth per sample (16-bit signed LE).
	BitDepth = 16
	// BytesPerSample is the number of bytes per sample frame.
	BytesPerSample = BitDepth / 8 * Channels
)

// Buffer is a decoded, ready-to-play audio sample buffer.
type Buffer struct {
	Data       []byte
	SampleRate int
	Channels   int
	Duration   time.Duration
}

// NewBuffer validates raw PCM data and wraps it in a Buffer.
func NewBuffer(pcm []byte) (*Buffer, error) {
	if len(pcm) == 0 {
		return nil, errors.New("empty PCM data")
	}
	if len(pcm)%BytesPerSample != 0 {
		return nil, fmt.Errorf("PCM data length %d is not aligned to %d-byte samples", len(pcm), BytesPerSample)
	}

	samples := len(pcm) / BytesPerSample
	return &Buffer{
		Data:       pcm,
		SampleRate: SampleRate,
		Channels:   Channels,
		Duration:   time.Duration(samples) * time.Second / SampleRate,
	}, nil
}

// Size returns the buffer size in bytes.
func (b *Buffer) Size() int64 {
	return int64(len(b.Data))
}

// Source is a single live playback of one buffer. At most one source may
// be attached to the device at a time; that discipline belongs to the
// playback controller, not the device.
type Source interface {
	// Start begins playback.
	Start()

	// Stop halts playback and releases the source. Idempotent.
	Stop()

	// Done is closed when playback reaches its natural end. It is NOT
	// closed when the source is stopped early.
	Done() <-chan struct{}
}

// Device is the process-wide audio output handle.
type Device interface {
	// NewSource prepares a source for the given buffer.
	NewSource(buf *Buffer) (Source, error)

	// Close releases the device.
	Close() error
}
