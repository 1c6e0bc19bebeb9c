// Package cache holds the most recent discovery result as a single
// immutable snapshot with a validity window.
//
// The snapshot is replaced wholesale on every successful discovery pass and
// either served in full or not at all; there is no per-event expiry and no
// partially updated state for a reader to observe.
package cache

import (
	"sync"
	"time"

	"github.com/confscout/eventscout/internal/event"
)

// DefaultWindow is the validity window applied when none is configured.
const DefaultWindow = 6 * time.Hour

// Snapshot is one committed discovery result. The timestamp is kept as an
// RFC3339 string; a stamp that fails to parse invalidates the snapshot
// (fail closed, forcing a re-fetch) rather than serving stale data.
type Snapshot struct {
	Events    []*event.Event `json:"events"`
	Timestamp string         `json:"timestamp"`
}

// Cache owns the current snapshot. Readers get the whole snapshot or
// nothing; Set swaps the snapshot pointer under the lock so a reader never
// sees a half-written result.
type Cache struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	window   time.Duration
}

// New creates a cache with the given validity window.
func New(window time.Duration) *Cache {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Cache{window: window}
}

// Set commits events as a new snapshot stamped with the current time and
// returns the committed snapshot.
func (c *Cache) Set(events []*event.Event) *Snapshot {
	snap := &Snapshot{
		Events:    events,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	return snap
}

// Get returns the current snapshot when it is still valid. The events slice
// is a copy, so callers may re-sort it without disturbing the committed
// snapshot.
func (c *Cache) Get() (*Snapshot, bool) {
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()

	if !valid(snap, c.window) {
		return nil, false
	}

	events := make([]*event.Event, len(snap.Events))
	copy(events, snap.Events)
	return &Snapshot{Events: events, Timestamp: snap.Timestamp}, true
}

// IsValid reports whether a snapshot exists, is within the validity window,
// and carries a parsable timestamp.
func (c *Cache) IsValid() bool {
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()

	return valid(snap, c.window)
}

// Clear drops the snapshot, forcing the next discovery pass to go live.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

func valid(snap *Snapshot, window time.Duration) bool {
	if snap == nil || len(snap.Events) == 0 {
		return false
	}
	stamp, err := time.Parse(time.RFC3339, snap.Timestamp)
	if err != nil {
		return false
	}
	return time.Since(stamp) < window
}
