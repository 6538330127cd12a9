package session

import (
	"testing"

	"github.com/dami/hope/internal/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOPE_AUTH_TOKEN", "")
	store := &Store{Dir: t.TempDir()}

	info := &UserInfo{
		AccessToken: "tok-abc",
		TokenType:   "bearer",
		User:        &models.User{ID: 1, Username: "admin", Email: "admin@example.org"},
	}
	if err := store.Save(info); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || got.AccessToken != "tok-abc" {
		t.Fatalf("loaded %+v", got)
	}
	if got.User == nil || got.User.Username != "admin" {
		t.Fatalf("user round trip failed: %+v", got.User)
	}
	if !store.IsAuthenticated() {
		t.Fatalf("expected authenticated after save")
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("HOPE_AUTH_TOKEN", "")
	store := &Store{Dir: t.TempDir()}

	info, err := store.Load()
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil info, got %+v", info)
	}
	if store.IsAuthenticated() {
		t.Fatalf("expected unauthenticated")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	t.Setenv("HOPE_AUTH_TOKEN", "")
	store := &Store{Dir: t.TempDir()}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on empty dir: %v", err)
	}

	if err := store.Save(&UserInfo{AccessToken: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after clear")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestEnvTokenOverridesStoredSession(t *testing.T) {
	store := &Store{Dir: t.TempDir()}
	if err := store.Save(&UserInfo{AccessToken: "stored"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("HOPE_AUTH_TOKEN", "from-env")
	if got := store.Token(); got != "from-env" {
		t.Fatalf("Token() = %q, want env override", got)
	}
}
