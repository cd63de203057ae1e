package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/reenas3520-oss/yahoooo-study/speech/audio"
)

// fakeSynth is a controllable synthesizer for tests.
type fakeSynth struct {
	mu      sync.Mutex
	calls   map[string]int
	payload string
	err     error
	release chan struct{} // when set, GenerateSpeech blocks until closed
}

func newFakeSynth() *fakeSynth {
	return &fakeSynth{
		calls:   make(map[string]int),
		payload: validPayload(),
	}
}

func (f *fakeSynth) GenerateSpeech(_ context.Context, text, _, _ string) (string, error) {
	f.mu.Lock()
	f.calls[text]++
	release := f.release
	payload, err := f.payload, f.err
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	if err != nil {
		return "", err
	}
	return payload, nil
}

func (f *fakeSynth) callsFor(text string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[text]
}

// validPayload returns a base64 payload of 0.1s of aligned PCM silence.
func validPayload() string {
	return base64.StdEncoding.EncodeToString(make([]byte, audio.SampleRate*audio.BytesPerSample/10))
}

func newTestController(t *testing.T) (*Controller, *audio.MockDevice, *fakeSynth) {
	t.Helper()
	device := audio.NewMockDevice()
	synth := newFakeSynth()
	return NewController(device, synth, DefaultConfig()), device, synth
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

// TestSpeakEmptyTextIsNoop tests that text that normalizes to nothing is
// ignored entirely.
func TestSpeakEmptyTextIsNoop(t *testing.T) {
	c, device, synth := newTestController(t)

	for _, raw := range []string{"", "   ", "** **", "```\ncode only\n```"} {
		if err := c.Speak(context.Background(), raw); err != nil {
			t.Errorf("Speak(%q) error = %v", raw, err)
		}
	}

	if !c.State().Idle() {
		t.Errorf("State() = %+v, want idle", c.State())
	}
	if len(device.Sources()) != 0 {
		t.Errorf("created %d sources, want 0", len(device.Sources()))
	}
	if synth.callsFor("") != 0 {
		t.Error("synthesizer called for empty text")
	}
}

// TestToggleLaw tests that speaking the same text twice ends idle with no
// audio attached, on both the cache-miss and cache-hit paths.
func TestToggleLaw(t *testing.T) {
	c, device, _ := newTestController(t)
	ctx := context.Background()

	// First speak: cache miss.
	if err := c.Speak(ctx, "hello world"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if got := c.State(); !got.IsPlaying || got.Text != "hello world" {
		t.Fatalf("State() = %+v, want playing %q", got, "hello world")
	}

	// Second speak of the same text: toggle off.
	if err := c.Speak(ctx, "hello world"); err != nil {
		t.Fatalf("Speak() toggle error = %v", err)
	}
	if !c.State().Idle() {
		t.Errorf("State() after toggle = %+v, want idle", c.State())
	}
	if device.LiveCount() != 0 {
		t.Errorf("LiveCount() = %d, want 0", device.LiveCount())
	}

	// Third and fourth speak: cache-hit path behaves identically.
	if err := c.Speak(ctx, "hello world"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if err := c.Speak(ctx, "hello world"); err != nil {
		t.Fatalf("Speak() toggle error = %v", err)
	}
	if !c.State().Idle() || device.LiveCount() != 0 {
		t.Errorf("cache-hit toggle left state %+v with %d live sources",
			c.State(), device.LiveCount())
	}
}

// TestInterruptLaw tests that speaking different text stops the prior
// playback and leaves exactly one active source.
func TestInterruptLaw(t *testing.T) {
	c, device, _ := newTestController(t)
	ctx := context.Background()

	if err := c.Speak(ctx, "alpha"); err != nil {
		t.Fatalf("Speak(A) error = %v", err)
	}
	if err := c.Speak(ctx, "beta"); err != nil {
		t.Fatalf("Speak(B) error = %v", err)
	}

	if got := c.State(); !got.IsPlaying || got.Text != "beta" {
		t.Errorf("State() = %+v, want playing beta", got)
	}
	if device.LiveCount() != 1 {
		t.Errorf("LiveCount() = %d, want 1", device.LiveCount())
	}

	sources := device.Sources()
	if len(sources) != 2 {
		t.Fatalf("created %d sources, want 2", len(sources))
	}
	if !sources[0].WasStopped() {
		t.Error("first source was not stopped on interrupt")
	}
	if !sources[1].IsLive() {
		t.Error("second source is not live")
	}
}

// TestCacheIdempotence tests that a completed play-to-end cycle makes the
// second speak a cache hit: at most one synthesis request per text.
func TestCacheIdempotence(t *testing.T) {
	c, device, synth := newTestController(t)
	ctx := context.Background()

	if err := c.Speak(ctx, "tissues"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	device.Sources()[0].FinishNaturally()
	waitFor(t, func() bool { return c.State().Idle() }, "state never reset after natural end")

	if err := c.Speak(ctx, "tissues"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if got := c.State(); !got.IsPlaying || got.Text != "tissues" {
		t.Errorf("State() = %+v, want playing tissues", got)
	}
	if n := synth.callsFor("tissues"); n != 1 {
		t.Errorf("synthesizer called %d times, want 1", n)
	}
}

// TestStaleCompletionGuard tests that a slow fetch resolving after a newer
// request must not overwrite the newer playback; the late audio is cached
// but never auto-played.
func TestStaleCompletionGuard(t *testing.T) {
	c, device, synth := newTestController(t)
	ctx := context.Background()

	// Pre-warm B so its speak is a synchronous cache hit.
	bufB, err := audio.NewBuffer(make([]byte, 480))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	c.Cache().Put("beta", bufB)

	// A's fetch blocks until released.
	release := make(chan struct{})
	synth.mu.Lock()
	synth.release = release
	synth.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- c.Speak(ctx, "alpha") }()
	waitFor(t, func() bool { return synth.callsFor("alpha") == 1 }, "A's fetch never started")

	// B interrupts while A's fetch is in flight.
	synth.mu.Lock()
	synth.release = nil
	synth.mu.Unlock()
	if err := c.Speak(ctx, "beta"); err != nil {
		t.Fatalf("Speak(B) error = %v", err)
	}
	if got := c.State(); !got.IsPlaying || got.Text != "beta" {
		t.Fatalf("State() = %+v, want playing beta", got)
	}

	// A's fetch resolves late.
	close(release)
	if err := <-errCh; err != nil {
		t.Fatalf("Speak(A) error = %v", err)
	}

	if got := c.State(); !got.IsPlaying || got.Text != "beta" {
		t.Errorf("stale completion overwrote state: %+v, want playing beta", got)
	}
	if device.LiveCount() != 1 {
		t.Errorf("LiveCount() = %d, want 1", device.LiveCount())
	}
	if _, ok := c.Cache().Get("alpha"); !ok {
		t.Error("late audio was not cached for later use")
	}
}

// TestNaturalEndGuardedReset tests that a natural end only resets the
// state while its text is still current.
func TestNaturalEndGuardedReset(t *testing.T) {
	c, device, _ := newTestController(t)
	ctx := context.Background()

	if err := c.Speak(ctx, "gravitation"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	device.Sources()[0].FinishNaturally()
	waitFor(t, func() bool { return c.State().Idle() }, "state never reset after natural end")
	if device.LiveCount() != 0 {
		t.Errorf("LiveCount() = %d, want 0", device.LiveCount())
	}
}

// TestSynthesisFailureResetsState tests the provider-failure error path.
func TestSynthesisFailureResetsState(t *testing.T) {
	c, _, synth := newTestController(t)
	synth.err = errors.New("credentials rejected")

	err := c.Speak(context.Background(), "sound")
	if !errors.Is(err, ErrSynthesis) {
		t.Errorf("Speak() error = %v, want ErrSynthesis", err)
	}
	if !c.State().Idle() {
		t.Errorf("State() = %+v, want idle after failure", c.State())
	}
}

// TestDecodeFailureResetsState tests the decode error path, for both
// invalid base64 and misaligned PCM.
func TestDecodeFailureResetsState(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "invalid base64", payload: "!!not-base64!!"},
		{name: "misaligned pcm", payload: base64.StdEncoding.EncodeToString(make([]byte, 3))},
		{name: "empty payload", payload: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, device, synth := newTestController(t)
			synth.payload = tt.payload

			err := c.Speak(context.Background(), "motion")
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Speak() error = %v, want ErrDecode", err)
			}
			if !c.State().Idle() {
				t.Errorf("State() = %+v, want idle", c.State())
			}
			if device.LiveCount() != 0 {
				t.Errorf("LiveCount() = %d, want 0", device.LiveCount())
			}
		})
	}
}

// TestSpeakHelloScenario tests the end-to-end success scenario: empty
// cache, provider returns audio, decode succeeds, state playing and the
// cache holds the normalized key.
func TestSpeakHelloScenario(t *testing.T) {
	c, _, _ := newTestController(t)

	if err := c.Speak(context.Background(), "Hello"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if got := c.State(); !got.IsPlaying || got.Text != "Hello" {
		t.Errorf("State() = %+v, want {true Hello}", got)
	}
	if _, ok := c.Cache().Get("Hello"); !ok {
		t.Error("cache does not contain key \"Hello\"")
	}
}

// TestStopIsIdempotent tests Stop from every position.
func TestStopIsIdempotent(t *testing.T) {
	c, device, _ := newTestController(t)

	c.Stop() // idle stop is fine
	if !c.State().Idle() {
		t.Errorf("State() = %+v, want idle", c.State())
	}

	if err := c.Speak(context.Background(), "electricity"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	c.Stop()
	c.Stop()
	if !c.State().Idle() || device.LiveCount() != 0 {
		t.Errorf("Stop() left state %+v with %d live sources", c.State(), device.LiveCount())
	}
}

// recordingTracker counts busy-tracked operations.
type recordingTracker struct {
	mu    sync.Mutex
	count int
}

func (r *recordingTracker) Track(fn func() error) error {
	r.mu.Lock()
	r.count++
	r.mu.Unlock()
	return fn()
}

// TestTrackerOnlyUsedOnCacheMiss tests that the busy indicator covers
// fetches but not cache hits.
func TestTrackerOnlyUsedOnCacheMiss(t *testing.T) {
	c, device, _ := newTestController(t)
	tracker := &recordingTracker{}
	c.UseTracker(tracker)
	ctx := context.Background()

	if err := c.Speak(ctx, "polynomials"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	device.Sources()[0].FinishNaturally()
	waitFor(t, func() bool { return c.State().Idle() }, "state never reset")

	if err := c.Speak(ctx, "polynomials"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}

	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.count != 1 {
		t.Errorf("Track() called %d times, want 1 (miss only)", tracker.count)
	}
}

// TestStateChangeCallback tests that state transitions are reported.
func TestStateChangeCallback(t *testing.T) {
	c, _, _ := newTestController(t)

	var mu sync.Mutex
	var seen []State
	c.OnStateChange(func(s State) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	ctx := context.Background()
	if err := c.Speak(ctx, "waves"); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	c.Stop()

	mu.Lock()
	defer mu.Unlock()
	if len(seen) < 2 {
		t.Fatalf("saw %d state changes, want at least 2", len(seen))
	}
	first, last := seen[0], seen[len(seen)-1]
	if !first.IsPlaying || first.Text != "waves" {
		t.Errorf("first change = %+v, want playing waves", first)
	}
	if !last.Idle() {
		t.Errorf("last change = %+v, want idle", last)
	}
}
