package transport

import (
	"math/rand"
	"testing"
	"time"

	"github.com/danmuck/cbusctl/internal/testutil/testlog"
)

func TestNextBackoffDelayNoJitter(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultBackoff()
	cfg.Jitter = false
	want := []time.Duration{
		250 * time.Millisecond,
		500 * time.Millisecond,
		time.Second,
		2 * time.Second,
		4 * time.Second,
		5 * time.Second,
		5 * time.Second,
	}
	for i, w := range want {
		if got := NextBackoffDelay(cfg, i+1, nil); got != w {
			t.Fatalf("attempt%d got=%v want=%v", i+1, got, w)
		}
	}
}

func TestNextBackoffDelayJitterRange(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultBackoff()
	rng := rand.New(rand.NewSource(7))
	for attempt := 2; attempt < 8; attempt++ {
		base := NextBackoffDelay(BackoffConfig{
			InitialDelay: cfg.InitialDelay,
			Multiplier:   cfg.Multiplier,
			MaxDelay:     cfg.MaxDelay,
		}, attempt, nil)
		got := NextBackoffDelay(cfg, attempt, rng)
		if got < base/2 || got > base*3/2 {
			t.Fatalf("attempt%d jitter out of range: got=%v base=%v", attempt, got, base)
		}
	}
}

func TestNextBackoffDelayEdges(t *testing.T) {
	testlog.Start(t)
	if got := NextBackoffDelay(BackoffConfig{}, 3, nil); got != 0 {
		t.Fatalf("zero config got=%v", got)
	}
	cfg := BackoffConfig{InitialDelay: time.Second, Multiplier: 0.5}
	if got := NextBackoffDelay(cfg, 4, nil); got != time.Second {
		t.Fatalf("multiplier below one got=%v want=%v", got, time.Second)
	}
	if got := NextBackoffDelay(DefaultBackoff(), 1, rand.New(rand.NewSource(1))); got != 250*time.Millisecond {
		t.Fatalf("first attempt should not jitter, got=%v", got)
	}
}

func TestBackoffExhausted(t *testing.T) {
	testlog.Start(t)
	cfg := DefaultBackoff()
	if cfg.Exhausted(1000) {
		t.Fatalf("unlimited config reported exhausted")
	}
	cfg.MaxAttempts = 3
	if cfg.Exhausted(3) || !cfg.Exhausted(4) {
		t.Fatalf("limit check wrong for MaxAttempts=3")
	}
}
