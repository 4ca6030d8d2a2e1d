// Package moderation contains the in-memory message-rate tracking used to
// police the identity channel.
package moderation

import (
	"sync"
	"time"
)

// SpamGuard keeps a sliding window of recent message timestamps per user.
// Exceeding the threshold inside the window triggers exactly one enforcement
// and clears that user's window. State is process-local and rebuilt from
// nothing at startup.
type SpamGuard struct {
	window    time.Duration
	threshold int

	mu      sync.Mutex
	byUser  map[string][]time.Time
	lastGC  time.Time
	gcEvery time.Duration
}

// NewSpamGuard builds a guard with the given sliding window and message
// threshold. Idle users are evicted opportunistically so the map stays
// bounded over long uptimes.
func NewSpamGuard(window time.Duration, threshold int) *SpamGuard {
	return &SpamGuard{
		window:    window,
		threshold: threshold,
		byUser:    make(map[string][]time.Time),
		gcEvery:   10 * window,
	}
}

// Record notes one qualifying message for the user at the given time and
// reports whether the user crossed the threshold. A true result means the
// caller must enforce once; the user's window is already reset.
func (g *SpamGuard) Record(userID string, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.maybeEvictIdle(now)

	recent := append(g.byUser[userID], now)
	cutoff := now.Add(-g.window)
	pruned := recent[:0]
	for _, ts := range recent {
		if ts.After(cutoff) {
			pruned = append(pruned, ts)
		}
	}

	if len(pruned) > g.threshold {
		delete(g.byUser, userID)
		return true
	}

	g.byUser[userID] = pruned
	return false
}

// Reset drops the tracked window for a user, e.g. after an external
// enforcement action.
func (g *SpamGuard) Reset(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.byUser, userID)
}

// Tracked returns the number of users currently tracked.
func (g *SpamGuard) Tracked() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.byUser)
}

// maybeEvictIdle removes users whose newest timestamp fell out of the window.
// Runs at most once per gcEvery; callers hold the lock.
func (g *SpamGuard) maybeEvictIdle(now time.Time) {
	if now.Sub(g.lastGC) < g.gcEvery {
		return
	}
	g.lastGC = now

	cutoff := now.Add(-g.window)
	for userID, timestamps := range g.byUser {
		if len(timestamps) == 0 || !timestamps[len(timestamps)-1].After(cutoff) {
			delete(g.byUser, userID)
		}
	}
}
