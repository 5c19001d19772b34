package token

import (
	"errors"
	"testing"
	"time"
)

func TestNewServiceRequiresSecret(t *testing.T) {
	if _, err := NewService("", "gatehouse"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewService("test-secret", "gatehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := svc.Issue("user-123", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	subject, err := svc.Verify(tok)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("unexpected subject: %q", subject)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc, err := NewService("test-secret", "gatehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := svc.Issue("user-123", -time.Second)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.Verify(tok); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewService("secret-one", "gatehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	verifier, err := NewService("secret-two", "gatehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := issuer.Issue("user-123", time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(tok); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, err := NewService("test-secret", "gatehouse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrMalformed) {
			t.Fatalf("token %q: expected ErrMalformed, got %v", tok, err)
		}
	}
}
