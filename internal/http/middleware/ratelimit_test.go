package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterEnforcesLimit(t *testing.T) {
	limiter := NewRateLimiter()
	for i := 0; i < 3; i++ {
		if !limiter.Allow("key", 3, time.Minute) {
			t.Fatalf("expected request %d allowed", i+1)
		}
	}
	if limiter.Allow("key", 3, time.Minute) {
		t.Fatal("expected the fourth request denied")
	}
	if !limiter.Allow("other", 3, time.Minute) {
		t.Fatal("expected an unrelated key unaffected")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewRateLimiter()
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected the first request allowed")
	}
	if limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected the second request denied")
	}
	time.Sleep(20 * time.Millisecond)
	if !limiter.Allow("key", 1, 10*time.Millisecond) {
		t.Fatal("expected a fresh window after expiry")
	}
}
