package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/cache"
	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/fetcher"
)

type recordingNotifier struct {
	calls [][]*event.Event
}

func (n *recordingNotifier) Notify(events []*event.Event) error {
	n.calls = append(n.calls, events)
	return nil
}

func sampleEvent(title string) *event.Event {
	return event.New(event.SourceCNCF, title, "2026-05-01", "Online", "A cloud native community gathering.", "https://example.com/"+title, "")
}

func TestWatchPassAnnouncesOnlyNewEvents(t *testing.T) {
	c := cache.New(cache.DefaultWindow)
	a := agent.NewDiscovery(fetcher.New(time.Second, 1, "test"), c)
	a.Sources = nil

	dataset := []*event.Event{sampleEvent("Observability Day")}
	a.Sample = func() []*event.Event { return dataset }

	n := &recordingNotifier{}
	s := New(a, c, n)

	// First pass primes the seen set without announcing.
	s.runOnce(context.Background())
	assert.Empty(t, n.calls)

	// Nothing new: still quiet.
	s.runOnce(context.Background())
	assert.Empty(t, n.calls)

	// A new listing appears and is the only one announced.
	dataset = append(dataset, sampleEvent("KubeCon Add-on Day"))
	s.runOnce(context.Background())

	require.Len(t, n.calls, 1)
	require.Len(t, n.calls[0], 1)
	assert.Equal(t, "KubeCon Add-on Day", n.calls[0][0].Title)
}

func TestOverlappingPassesAreSerialized(t *testing.T) {
	c := cache.New(cache.DefaultWindow)
	a := agent.NewDiscovery(fetcher.New(time.Second, 1, "test"), c)
	a.Sources = nil

	// A slow pass that records how many passes run at once. The pipeline
	// runs inside runOnce, so concurrency here means concurrent passes.
	var inFlight, maxInFlight int32
	a.Sample = func() []*event.Event {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			m := atomic.LoadInt32(&maxInFlight)
			if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return []*event.Event{sampleEvent("Slow Sample Conference")}
	}

	s := New(a, c, &recordingNotifier{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runOnce(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInFlight))
}
