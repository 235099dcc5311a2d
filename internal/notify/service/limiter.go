package service

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	limiterIdleAfter     = 10 * time.Minute
	limiterSweepInterval = 5 * time.Minute
)

type recipientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RecipientLimiter throttles texts per destination number with a token
// bucket refilled at perMinute tokens a minute. Idle buckets are swept
// lazily on Allow.
type RecipientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*recipientBucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

// NewRecipientLimiter returns a limiter allowing perMinute texts per
// recipient. perMinute <= 0 disables throttling.
func NewRecipientLimiter(perMinute int) *RecipientLimiter {
	return &RecipientLimiter{
		buckets: make(map[string]*recipientBucket),
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   perMinute,
	}
}

// Allow takes a token for recipient at now and reports whether one was
// available.
func (l *RecipientLimiter) Allow(recipient string, now time.Time) bool {
	if l.burst <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	b, ok := l.buckets[recipient]
	if !ok {
		b = &recipientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[recipient] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Len reports how many recipients currently hold a bucket.
func (l *RecipientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *RecipientLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < limiterSweepInterval {
		return
	}
	l.lastSweep = now
	for recipient, b := range l.buckets {
		if now.Sub(b.lastSeen) > limiterIdleAfter {
			delete(l.buckets, recipient)
		}
	}
}
