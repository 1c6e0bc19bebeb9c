package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/eventscout/internal/event"
)

func sampleEvents() []*event.Event {
	return []*event.Event{
		event.New("cncf", "KCD Munich", "May 5, 2026", "Munich", "", "", "https://www.cncf.io/events/"),
		event.New("kubecon", "KubeCon NA", "November 10, 2026", "Atlanta", "", "", "https://events.linuxfoundation.org/"),
	}
}

func TestEmptyCacheInvalid(t *testing.T) {
	c := New(time.Hour)

	assert.False(t, c.IsValid())

	_, ok := c.Get()
	assert.False(t, ok)
}

func TestSetThenGet(t *testing.T) {
	c := New(time.Hour)
	events := sampleEvents()

	c.Set(events)

	require.True(t, c.IsValid())
	snap, ok := c.Get()
	require.True(t, ok)
	assert.Len(t, snap.Events, 2)

	_, err := time.Parse(time.RFC3339, snap.Timestamp)
	assert.NoError(t, err, "timestamp must be RFC3339")
}

func TestStaleSnapshotInvalid(t *testing.T) {
	c := New(time.Hour)
	c.snapshot = &Snapshot{
		Events:    sampleEvents(),
		Timestamp: time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339),
	}

	assert.False(t, c.IsValid())

	_, ok := c.Get()
	assert.False(t, ok, "stale snapshot must not be served")
}

func TestCorruptTimestampFailsClosed(t *testing.T) {
	c := New(time.Hour)
	c.snapshot = &Snapshot{
		Events:    sampleEvents(),
		Timestamp: "not-a-timestamp",
	}

	assert.False(t, c.IsValid(), "unparsable timestamp must invalidate the snapshot")
}

func TestEmptyEventListInvalid(t *testing.T) {
	c := New(time.Hour)
	c.Set(nil)

	assert.False(t, c.IsValid())
}

func TestSetReplacesWholesale(t *testing.T) {
	c := New(time.Hour)
	c.Set(sampleEvents())

	replacement := []*event.Event{
		event.New("linux_foundation", "Open Source Summit", "", "", "", "", "https://www.linuxfoundation.org/events/"),
	}
	c.Set(replacement)

	snap, ok := c.Get()
	require.True(t, ok)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "Open Source Summit", snap.Events[0].Title)
}

func TestGetReturnsIndependentSlice(t *testing.T) {
	c := New(time.Hour)
	c.Set(sampleEvents())

	snap, ok := c.Get()
	require.True(t, ok)
	require.Len(t, snap.Events, 2)

	// Reordering the returned slice must not reorder the snapshot.
	snap.Events[0], snap.Events[1] = snap.Events[1], snap.Events[0]

	again, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, "KCD Munich", again.Events[0].Title)
	assert.Equal(t, "KubeCon NA", again.Events[1].Title)
}

func TestClear(t *testing.T) {
	c := New(time.Hour)
	c.Set(sampleEvents())
	require.True(t, c.IsValid())

	c.Clear()
	assert.False(t, c.IsValid())
}
