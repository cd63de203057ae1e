//go:build nocgo
// +build nocgo

package audio

import "errors"

// Stub implementations for static analysis and builds without CGO.

// OtoDevice stub for nocgo builds.
type OtoDevice struct{}

// NewOtoDevice fails; no audio output is available in a nocgo build.
func NewOtoDevice() (*OtoDevice, error) {
	return nil, errors.New("audio not available in nocgo build")
}

// NewSource fails; no audio output is available in a nocgo build.
func (d *OtoDevice) NewSource(buf *Buffer) (Source, error) {
	return nil, errors.New("audio not available in nocgo build")
}

// Close releases nothing.
func (d *OtoDevice) Close() error {
	return nil
}
