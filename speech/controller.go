// Package speech provides speech playback for study content: one shared
// output device, a cache of synthesized audio keyed by normalized text,
// and at most one active playback at any instant.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/reenas3520-oss/yahoooo-study/speech/audio"
)

// State is the externally visible playback state. Text is non-empty iff
// IsPlaying is true, and always names the normalized text currently loaded
// (or loading) into the output device.
type State struct {
	IsPlaying bool
	Text      string
}

// Idle reports whether nothing is playing or loading.
func (s State) Idle() bool {
	return !s.IsPlaying
}

// Synthesizer turns text into a base64-encoded PCM payload.
type Synthesizer interface {
	GenerateSpeech(ctx context.Context, text, voice, languageHint string) (string, error)
}

// Tracker marks a long-running fetch on the global busy indicator.
type Tracker interface {
	Track(fn func() error) error
}

// Controller owns the audio output device, the synthesized-audio cache and
// the playback state. It is the only writer of all three.
type Controller struct {
	mu       sync.Mutex
	device   audio.Device
	synth    Synthesizer
	tracker  Tracker
	cache    *Cache
	voice    string
	language string

	state  State
	source audio.Source

	onChange func(State)
}

// NewController creates a playback controller bound to a device and a
// synthesizer.
func NewController(device audio.Device, synth Synthesizer, cfg Config) *Controller {
	return &Controller{
		device:   device,
		synth:    synth,
		cache:    NewCache(cfg.CacheEntries),
		voice:    cfg.Voice,
		language: cfg.Language,
	}
}

// UseTracker routes cache-miss fetches through the global busy indicator.
func (c *Controller) UseTracker(t Tracker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tracker = t
}

// OnStateChange registers a callback invoked after every state change.
// The callback runs outside the controller lock.
func (c *Controller) OnStateChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// State returns a copy of the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetVoice updates the voice and language used for future synthesis.
// Already-cached audio keeps playing with the voice it was made with.
func (c *Controller) SetVoice(language, voice string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = language
	c.voice = voice
}

// Cache exposes the audio cache for inspection.
func (c *Controller) Cache() *Cache {
	return c.cache
}

// Speak plays the given text aloud. Speaking the text that is already
// playing toggles it off; speaking different text interrupts whatever is
// playing. Empty (after normalization) text is a no-op.
func (c *Controller) Speak(ctx context.Context, rawText string) error {
	text := Normalize(rawText)
	if text == "" {
		return nil
	}

	c.mu.Lock()

	// Toggle off: the same text is attached and playing.
	if c.source != nil && c.state.Text == text {
		c.stopLocked()
		c.mu.Unlock()
		c.notify()
		return nil
	}

	// Interrupt: a different text is attached. The new request wins.
	if c.source != nil {
		c.stopLocked()
	}

	// Reflect loading/playing before the audio is ready.
	c.state = State{IsPlaying: true, Text: text}

	if buf, ok := c.cache.Get(text); ok {
		err := c.attachLocked(buf, text)
		c.mu.Unlock()
		c.notify()
		if err != nil {
			c.resetIfCurrent(text)
			return err
		}
		return nil
	}

	voice, language := c.voice, c.language
	c.mu.Unlock()
	c.notify()

	// Cache miss: fetch under the busy flag. There is no cancellation of
	// an issued request; a superseding Speak only stops prior playback.
	var payload string
	fetch := func() error {
		var err error
		payload, err = c.synth.GenerateSpeech(ctx, text, voice, language)
		return err
	}
	var err error
	if c.tracker != nil {
		err = c.tracker.Track(fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		c.resetIfCurrent(text)
		return fmt.Errorf("%w: %s", ErrSynthesis, err)
	}

	buf, err := decodePayload(payload)
	if err != nil {
		log.Error("audio decode failed", "err", err, "text_len", len(text))
		c.resetIfCurrent(text)
		return err
	}

	c.mu.Lock()
	c.cache.Put(text, buf)
	log.Debug("cached synthesized audio",
		"size", humanize.Bytes(uint64(buf.Size())),
		"duration", buf.Duration,
		"entries", c.cache.Len())

	// A newer request may have superseded this one while the fetch was in
	// flight. The audio stays cached for later use but never auto-plays.
	if c.state.Text != text || !c.state.IsPlaying || c.source != nil {
		c.mu.Unlock()
		return nil
	}

	err = c.attachLocked(buf, text)
	c.mu.Unlock()
	c.notify()
	if err != nil {
		c.resetIfCurrent(text)
		return err
	}
	return nil
}

// Stop unconditionally detaches any live source and resets to idle.
// Idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
	c.notify()
}

// Shutdown stops playback and releases the output device.
func (c *Controller) Shutdown() error {
	c.Stop()
	return c.device.Close()
}

// stopLocked detaches and stops the live source, if any, and resets the
// state. Caller holds the lock.
func (c *Controller) stopLocked() {
	if c.source != nil {
		c.source.Stop()
		c.source = nil
	}
	c.state = State{}
}

// attachLocked creates and starts a source for buf and registers the
// natural-end watcher. Caller holds the lock and has set the state.
func (c *Controller) attachLocked(buf *audio.Buffer, text string) error {
	src, err := c.device.NewSource(buf)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrDeviceNotReady, err)
	}
	c.source = src
	src.Start()
	go c.awaitEnd(src, text)
	return nil
}

// awaitEnd resets the state when playback drains naturally, but only if
// this source is still the current one; a newer request must not be
// clobbered by a stale completion.
func (c *Controller) awaitEnd(src audio.Source, text string) {
	<-src.Done()

	c.mu.Lock()
	if c.source == src && c.state.Text == text {
		c.source = nil
		c.state = State{}
		c.mu.Unlock()
		c.notify()
		return
	}
	c.mu.Unlock()
}

// resetIfCurrent resets to idle if text is still the current request.
func (c *Controller) resetIfCurrent(text string) {
	c.mu.Lock()
	if c.state.Text == text {
		c.stopLocked()
		c.mu.Unlock()
		c.notify()
		return
	}
	c.mu.Unlock()
}

// notify invokes the state-change callback outside the lock.
func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	state := c.state
	c.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

// decodePayload turns a base64 PCM payload into a playable buffer.
func decodePayload(payload string) (*audio.Buffer, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	buf, err := audio.NewBuffer(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecode, err)
	}
	return buf, nil
}
