package speech

import "errors"

// Common errors for the speech subsystem.
var (
	// ErrSynthesis indicates the provider failed to produce audio bytes.
	ErrSynthesis = errors.New("speech synthesis failed")
	// ErrDecode indicates audio bytes could not be turned into a playable
	// buffer. Logged distinctly from synthesis failures.
	ErrDecode = errors.New("audio payload could not be decoded")
	// ErrDeviceNotReady indicates the output device rejected a source.
	ErrDeviceNotReady = errors.New("audio device not ready")
)
