package config

import (
	"testing"
	"time"
)

func setupConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("HOPE_CONFIG_DIR", t.TempDir())
	t.Setenv("HOPE_API_URL", "")
	t.Setenv("HOPE_TIMEOUT", "")
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	setupConfigDir(t)

	if got := APIURL(); got != "http://localhost:8000" {
		t.Fatalf("APIURL() = %q", got)
	}
	if got := RequestTimeout(); got != 15*time.Second {
		t.Fatalf("RequestTimeout() = %s", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	setupConfigDir(t)

	if err := Save(&Config{APIURL: "https://api.example.org", RequestTimeout: "30s"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := APIURL(); got != "https://api.example.org" {
		t.Fatalf("APIURL() = %q", got)
	}
	if got := RequestTimeout(); got != 30*time.Second {
		t.Fatalf("RequestTimeout() = %s", got)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	setupConfigDir(t)

	if err := Save(&Config{APIURL: "https://file.example.org", RequestTimeout: "30s"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv("HOPE_API_URL", "https://env.example.org")
	t.Setenv("HOPE_TIMEOUT", "5s")

	if got := APIURL(); got != "https://env.example.org" {
		t.Fatalf("APIURL() = %q, want env override", got)
	}
	if got := RequestTimeout(); got != 5*time.Second {
		t.Fatalf("RequestTimeout() = %s, want env override", got)
	}
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	setupConfigDir(t)
	t.Setenv("HOPE_TIMEOUT", "soon")

	if got := RequestTimeout(); got != 15*time.Second {
		t.Fatalf("RequestTimeout() = %s, want default for invalid duration", got)
	}
}
