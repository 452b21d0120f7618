package utils

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("secret", "user-42", 5)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	sub, err := ParseAccessToken("secret", tok.Token)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sub != "user-42" {
		t.Fatalf("expected user-42, got %q", sub)
	}
}

func TestParseAccessToken_Rejects(t *testing.T) {
	tok, _ := NewAccessToken("secret", "user-42", 5)
	if _, err := ParseAccessToken("other", tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
	expired, _ := NewAccessToken("secret", "user-42", -1)
	if _, err := ParseAccessToken("secret", expired.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
	if _, err := ParseAccessToken("secret", "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestRefreshToken(t *testing.T) {
	a, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	b, _ := NewRefreshToken(7)
	if len(a.Raw) != 96 || a.Raw == b.Raw {
		t.Fatalf("expected distinct 96-char tokens, got %q and %q", a.Raw, b.Raw)
	}
	if HashRefreshRaw(a.Raw) != HashRefreshRaw(a.Raw) || HashRefreshRaw(a.Raw) == HashRefreshRaw(b.Raw) {
		t.Fatalf("expected stable distinct hashes")
	}
}

func TestPassword(t *testing.T) {
	h, err := HashPassword("hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !VerifyPassword(h, "hunter2") || VerifyPassword(h, "hunter3") {
		t.Fatalf("expected password to verify only with the right plain text")
	}
}

func TestPassword_EdgeCases(t *testing.T) {
	if _, err := HashPassword("", bcrypt.MinCost); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
	h, err := HashPassword("hunter2", 1)
	if err != nil {
		t.Fatalf("expected low cost to be clamped, got %v", err)
	}
	if cost, _ := bcrypt.Cost([]byte(h)); cost != bcrypt.MinCost {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost, cost)
	}
}
