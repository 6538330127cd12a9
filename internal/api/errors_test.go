package api

import (
	"fmt"
	"testing"
)

func TestDecodeAPIErrorPrefersStructuredCode(t *testing.T) {
	body := []byte(`{"code":"already_exists","message":"email exists"}`)
	apiErr := decodeAPIError(409, body)
	if apiErr.Kind != KindAlreadyExists {
		t.Fatalf("kind = %s, want %s", apiErr.Kind, KindAlreadyExists)
	}
	if apiErr.Message != "email exists" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestDecodeAPIErrorSniffsMessageText(t *testing.T) {
	tests := []struct {
		body string
		want ErrorKind
	}{
		{`{"message":"subscription already exists"}`, KindAlreadyExists},
		{`{"detail":"invalid email address"}`, KindInvalid},
		{`{"error":"something broke"}`, KindUnknown},
		{`plain text failure`, KindUnknown},
	}
	for _, tt := range tests {
		apiErr := decodeAPIError(400, []byte(tt.body))
		if apiErr.Kind != tt.want {
			t.Errorf("body %q: kind = %s, want %s", tt.body, apiErr.Kind, tt.want)
		}
	}
}

func TestIsAlreadyExistsUnwraps(t *testing.T) {
	apiErr := decodeAPIError(409, []byte(`{"message":"email exists"}`))
	wrapped := fmt.Errorf("subscribe: %w", apiErr)
	if !IsAlreadyExists(wrapped) {
		t.Fatalf("expected IsAlreadyExists on wrapped error")
	}
	if IsAlreadyExists(fmt.Errorf("other")) {
		t.Fatalf("plain error must not report already-exists")
	}
}
