package ratelimit

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(window time.Duration, max int) (*Limiter, *fakeClock) {
	l := New(window, max)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	l.SetClock(clock.now)
	return l, clock
}

func TestBurstWithinWindow(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("k")
		if !ok {
			t.Fatalf("request %d should be admitted", i+1)
		}
		clock.advance(time.Millisecond)
	}

	ok, retryAfter := l.Allow("k")
	if ok {
		t.Fatal("fourth request within the window should be rejected")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Errorf("unexpected retryAfter %v", retryAfter)
	}
}

func TestAdmitsAfterWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		l.Allow("k")
	}
	if ok, _ := l.Allow("k"); ok {
		t.Fatal("expected rejection at the limit")
	}

	clock.advance(time.Minute + time.Second)
	if ok, _ := l.Allow("k"); !ok {
		t.Error("expected admission after the window slid past the burst")
	}
}

func TestTimestampAgedExactlyOneWindowIsExpired(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 1)

	if ok, _ := l.Allow("k"); !ok {
		t.Fatal("first request should be admitted")
	}
	clock.advance(time.Minute)
	if ok, _ := l.Allow("k"); !ok {
		t.Error("a timestamp aged exactly one window must not count")
	}
}

func TestRetryAfterTracksOldestInWindowHit(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 2)

	l.Allow("k")
	clock.advance(20 * time.Second)
	l.Allow("k")
	clock.advance(10 * time.Second)

	ok, retryAfter := l.Allow("k")
	if ok {
		t.Fatal("expected rejection")
	}
	// Oldest hit is 30s old; it expires in another 30s.
	if retryAfter != 30*time.Second {
		t.Errorf("expected retryAfter 30s, got %v", retryAfter)
	}
}

func TestZeroLimitRejectsEverything(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 0)

	ok, retryAfter := l.Allow("k")
	if ok {
		t.Fatal("a zero limit must reject every request")
	}
	if retryAfter != time.Minute {
		t.Errorf("expected the full window as the hint, got %v", retryAfter)
	}

	// Repeated checks stay rejections, never faults.
	if ok, _ := l.Allow("k"); ok {
		t.Error("expected continued rejection")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Minute, 1)

	if ok, _ := l.Allow("a"); !ok {
		t.Fatal("first request for a should be admitted")
	}
	if ok, _ := l.Allow("a"); ok {
		t.Fatal("second request for a should be rejected")
	}
	if ok, _ := l.Allow("b"); !ok {
		t.Error("request for b must not be throttled by a's hits")
	}
}

func TestRejectedRequestDoesNotConsumeBudget(t *testing.T) {
	l, clock := newTestLimiter(time.Minute, 1)

	l.Allow("k")
	for i := 0; i < 5; i++ {
		l.Allow("k")
	}

	// Only the single admitted hit should be on the books.
	clock.advance(time.Minute)
	if ok, _ := l.Allow("k"); !ok {
		t.Error("rejected requests must not extend the throttle")
	}
}
