package security

import (
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	provider := NewSessionProvider("test-secret")
	token, expiresAt, err := provider.Generate("user_1", "student", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("expected a future expiry")
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user_1" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionRejectsWrongSecret(t *testing.T) {
	token, _, err := NewSessionProvider("secret-a").Generate("user_1", "student", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewSessionProvider("secret-b").Parse(token); err == nil {
		t.Fatal("expected a signature error")
	}
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	provider := NewSessionProvider("test-secret")
	token, _, err := provider.Generate("user_1", "student", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := provider.Parse(token); err == nil {
		t.Fatal("expected an expiry error")
	}
}

func TestSessionRejectsMalformedToken(t *testing.T) {
	provider := NewSessionProvider("test-secret")
	for _, token := range []string{"", "only.two", "a.b.c.d"} {
		if _, err := provider.Parse(token); err == nil {
			t.Fatalf("expected an error for %q", token)
		}
	}
}
