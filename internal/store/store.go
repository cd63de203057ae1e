// Package store persists user-local state: who is signed in, per-user
// profiles and speech preferences. Everything lives in one JSON file in
// the platform data directory.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	gap "github.com/muesli/go-app-paths"
)

// ErrNoCurrentUser is returned when no one is signed in.
var ErrNoCurrentUser = errors.New("no user is signed in")

// Profile is a user's display identity.
type Profile struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"` // base64 image payload or file path
}

// Speech is a user's spoken-reply preference.
type Speech struct {
	Voice    string `json:"voice"`
	Language string `json:"language"`
}

type state struct {
	CurrentUser string             `json:"currentUser,omitempty"`
	Profiles    map[string]Profile `json:"profiles"`
	Speech      map[string]Speech  `json:"speech"`
}

// Store is a file-backed key-value store. Every mutation is written
// through to disk before it returns.
type Store struct {
	mu    sync.Mutex
	path  string
	state state
}

// DefaultPath returns the platform data file for the app.
func DefaultPath() (string, error) {
	scope := gap.NewScope(gap.User, "yahoooo-study")
	path, err := scope.DataPath("state.json")
	if err != nil {
		return "", fmt.Errorf("locating data directory: %w", err)
	}
	return path, nil
}

// Open loads the store at path, creating an empty one when the file does
// not exist. A leading ~ in path is expanded.
func Open(path string) (*Store, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding store path: %w", err)
	}

	s := &Store{
		path: expanded,
		state: state{
			Profiles: make(map[string]Profile),
			Speech:   make(map[string]Speech),
		},
	}

	raw, err := os.ReadFile(expanded)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("no saved state; starting fresh", "path", expanded)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}
	if err := sonic.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}
	if s.state.Profiles == nil {
		s.state.Profiles = make(map[string]Profile)
	}
	if s.state.Speech == nil {
		s.state.Speech = make(map[string]Speech)
	}
	return s, nil
}

// CurrentUser returns the signed-in user, if any.
func (s *Store) CurrentUser() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CurrentUser, s.state.CurrentUser != ""
}

// SignIn records user as the current user, creating a default profile on
// first sign-in.
func (s *Store) SignIn(user string) error {
	if user == "" {
		return errors.New("user name required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CurrentUser = user
	if _, ok := s.state.Profiles[user]; !ok {
		s.state.Profiles[user] = Profile{Name: user}
	}
	return s.saveLocked()
}

// SignOut clears the current user. Profiles and preferences are kept for
// the next sign-in.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentUser = ""
	return s.saveLocked()
}

// KnownUsers returns every user that has ever signed in, sorted.
func (s *Store) KnownUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.state.Profiles))
	for user := range s.state.Profiles {
		out = append(out, user)
	}
	sort.Strings(out)
	return out
}

// Profile returns a user's profile.
func (s *Store) Profile(user string) (Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.Profiles[user]
	return p, ok
}

// SaveProfile stores a user's profile.
func (s *Store) SaveProfile(user string, p Profile) error {
	if user == "" {
		return ErrNoCurrentUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Profiles[user] = p
	return s.saveLocked()
}

// SpeechSettings returns a user's speech preference, if set.
func (s *Store) SpeechSettings(user string) (Speech, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.state.Speech[user]
	return sp, ok
}

// SaveSpeechSettings stores a user's speech preference.
func (s *Store) SaveSpeechSettings(user string, sp Speech) error {
	if user == "" {
		return ErrNoCurrentUser
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Speech[user] = sp
	return s.saveLocked()
}

// saveLocked writes the state file atomically. Caller holds the lock.
func (s *Store) saveLocked() error {
	raw, err := sonic.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing state: %w", err)
	}
	return nil
}
