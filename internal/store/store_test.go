package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s, path
}

// TestOpenMissingFile tests that a fresh store starts empty.
func TestOpenMissingFile(t *testing.T) {
	s, _ := tempStore(t)
	if _, ok := s.CurrentUser(); ok {
		t.Error("CurrentUser() reported a user in a fresh store")
	}
	if users := s.KnownUsers(); len(users) != 0 {
		t.Errorf("KnownUsers() = %v, want empty", users)
	}
}

// TestSignInPersists tests that sign-in state survives a reopen.
func TestSignInPersists(t *testing.T) {
	s, path := tempStore(t)
	if err := s.SignIn("asha@example.com"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	user, ok := reopened.CurrentUser()
	if !ok || user != "asha@example.com" {
		t.Errorf("CurrentUser() = %q, %v, want asha@example.com", user, ok)
	}
	if p, ok := reopened.Profile("asha@example.com"); !ok || p.Name != "asha@example.com" {
		t.Errorf("Profile() = %+v, %v, want default profile", p, ok)
	}
}

// TestSignOutKeepsProfiles tests that signing out forgets the session but
// not the user.
func TestSignOutKeepsProfiles(t *testing.T) {
	s, _ := tempStore(t)
	if err := s.SignIn("asha@example.com"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	if _, ok := s.CurrentUser(); ok {
		t.Error("CurrentUser() reported a user after sign-out")
	}
	if users := s.KnownUsers(); !reflect.DeepEqual(users, []string{"asha@example.com"}) {
		t.Errorf("KnownUsers() = %v", users)
	}
}

// TestKnownUsersSorted tests the registry ordering.
func TestKnownUsersSorted(t *testing.T) {
	s, _ := tempStore(t)
	for _, user := range []string{"ravi@example.com", "asha@example.com", "meera@example.com"} {
		if err := s.SignIn(user); err != nil {
			t.Fatalf("SignIn(%s) error = %v", user, err)
		}
	}
	want := []string{"asha@example.com", "meera@example.com", "ravi@example.com"}
	if got := s.KnownUsers(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownUsers() = %v, want %v", got, want)
	}
}

// TestProfileRoundTrip tests profile updates across reopen.
func TestProfileRoundTrip(t *testing.T) {
	s, path := tempStore(t)
	if err := s.SignIn("asha@example.com"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	p := Profile{Name: "Asha", Avatar: "aGVsbG8="}
	if err := s.SaveProfile("asha@example.com", p); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, ok := reopened.Profile("asha@example.com")
	if !ok || got != p {
		t.Errorf("Profile() = %+v, want %+v", got, p)
	}
}

// TestSpeechSettingsRoundTrip tests per-user speech preferences.
func TestSpeechSettingsRoundTrip(t *testing.T) {
	s, path := tempStore(t)

	if _, ok := s.SpeechSettings("asha@example.com"); ok {
		t.Error("SpeechSettings() reported settings before any save")
	}

	sp := Speech{Voice: "alloy", Language: "hi"}
	if err := s.SaveSpeechSettings("asha@example.com", sp); err != nil {
		t.Fatalf("SaveSpeechSettings() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, ok := reopened.SpeechSettings("asha@example.com")
	if !ok || got != sp {
		t.Errorf("SpeechSettings() = %+v, want %+v", got, sp)
	}
}

// TestSaveRequiresUser tests the empty-user guard.
func TestSaveRequiresUser(t *testing.T) {
	s, _ := tempStore(t)
	if err := s.SaveProfile("", Profile{Name: "x"}); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("SaveProfile() error = %v, want ErrNoCurrentUser", err)
	}
	if err := s.SaveSpeechSettings("", Speech{}); !errors.Is(err, ErrNoCurrentUser) {
		t.Errorf("SaveSpeechSettings() error = %v, want ErrNoCurrentUser", err)
	}
	if err := s.SignIn(""); err == nil {
		t.Error("SignIn(\"\") error = nil, want error")
	}
}
