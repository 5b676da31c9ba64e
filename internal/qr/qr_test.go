package qr

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestInviteRoundTrip(t *testing.T) {
	payload := InvitePayload("user-123", "haebit fan")

	id, name, err := ParseInvite(payload)
	if err != nil {
		t.Fatalf("ParseInvite failed: %v", err)
	}
	if id != "user-123" {
		t.Errorf("expected user id %q, got %q", "user-123", id)
	}
	if name != "haebit fan" {
		t.Errorf("expected nickname %q, got %q", "haebit fan", name)
	}
}

func TestInvitePayloadNoNickname(t *testing.T) {
	payload := InvitePayload("user-123", "")

	id, name, err := ParseInvite(payload)
	if err != nil {
		t.Fatalf("ParseInvite failed: %v", err)
	}
	if id != "user-123" {
		t.Errorf("expected user id %q, got %q", "user-123", id)
	}
	if name != "" {
		t.Errorf("expected empty nickname, got %q", name)
	}
}

func TestParseInviteRejectsForeignPayloads(t *testing.T) {
	tests := []string{
		"https://example.com?id=abc",
		"haebit://friend",
		"haebit://friend?name=only",
		"",
	}
	for _, payload := range tests {
		if _, _, err := ParseInvite(payload); err == nil {
			t.Errorf("expected error for payload %q", payload)
		}
	}
}

func TestWriteInvitePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invite.png")

	if err := WriteInvitePNG("user-123", "tester", path); err != nil {
		t.Fatalf("WriteInvitePNG failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read PNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func TestInviteString(t *testing.T) {
	s, err := InviteString("user-123", "tester")
	if err != nil {
		t.Fatalf("InviteString failed: %v", err)
	}
	if s == "" {
		t.Error("expected non-empty QR block string")
	}
}
