// Package scheduler re-runs discovery on a cron schedule and announces
// events that were not present in earlier passes.
package scheduler

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/cache"
	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/logger"
	"github.com/confscout/eventscout/internal/notifier"
)

// Scheduler periodically clears the cache, re-discovers events, and
// notifies about the ones not seen before. Passes never overlap: a
// discovery pass can outlast a short schedule interval, so queued firings
// are skipped and direct calls serialize on the mutex.
type Scheduler struct {
	agent    *agent.DiscoveryAgent
	cache    *cache.Cache
	notifier notifier.Notifier

	cron *cron.Cron

	mu   sync.Mutex
	seen map[string]bool
}

// New creates a scheduler over the given agent, cache, and notifier.
func New(a *agent.DiscoveryAgent, c *cache.Cache, n notifier.Notifier) *Scheduler {
	return &Scheduler{
		agent:    a,
		cache:    c,
		notifier: n,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		seen:     make(map[string]bool),
	}
}

// Start registers the discovery job under the given cron spec (robfig/cron
// syntax, descriptors like "@every 6h" included), runs one pass immediately,
// and starts the schedule.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.runOnce(ctx) }); err != nil {
		return err
	}

	s.runOnce(ctx)
	s.cron.Start()
	return nil
}

// Stop stops the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// runOnce executes one watch pass. The first pass only primes the seen set
// so a fresh start does not announce the entire current listing.
func (s *Scheduler) runOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	priming := len(s.seen) == 0

	s.cache.Clear()
	resp := s.agent.Discover(ctx)

	events, _ := resp["events"].([]*event.Event)
	fresh := event.Diff(s.seen, events)
	event.MarkSeen(s.seen, events)

	logger.Info("Watch pass complete", logger.Fields{
		"total": len(events),
		"new":   len(fresh),
	})

	if priming || len(fresh) == 0 {
		return
	}
	if err := s.notifier.Notify(fresh); err != nil {
		logger.Error("Notification failed", nil, err)
	}
}
