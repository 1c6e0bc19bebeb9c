package agent

import (
	"context"
	"sort"
	"time"

	"github.com/confscout/eventscout/internal/cache"
	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/extractor"
	"github.com/confscout/eventscout/internal/fetcher"
	"github.com/confscout/eventscout/internal/filter"
	"github.com/confscout/eventscout/internal/logger"
	"github.com/confscout/eventscout/internal/metrics"
	"github.com/confscout/eventscout/internal/scorer"
)

// Source is one scraping target: a primary URL plus fallbacks tried in order
// when the primary yields nothing.
type Source struct {
	Tag       string
	URL       string
	Fallbacks []string
}

// DefaultSources returns the built-in scraping targets.
func DefaultSources() []Source {
	return []Source{
		{
			Tag: event.SourceLinuxFoundation,
			URL: "https://events.linuxfoundation.org/",
			Fallbacks: []string{
				"https://www.linuxfoundation.org/events/",
			},
		},
		{
			Tag: event.SourceCNCF,
			URL: "https://www.cncf.io/events/",
			Fallbacks: []string{
				"https://community.cncf.io/events/",
			},
		},
		{
			Tag: event.SourceKubeCon,
			URL: "https://events.linuxfoundation.org/kubecon-cloudnativecon-north-america/",
			Fallbacks: []string{
				"https://events.linuxfoundation.org/kubecon-cloudnativecon-europe/",
			},
		},
	}
}

// DiscoveryAgent owns the scrape, score, cache pipeline and answers
// discover, filter, and details requests.
type DiscoveryAgent struct {
	Base

	fetcher *fetcher.Fetcher
	cache   *cache.Cache

	// Sources and Sample are exported so callers and tests can substitute
	// targets and the offline fallback dataset.
	Sources []Source
	Sample  SampleProvider
}

// NewDiscovery creates a discovery agent over the given fetcher and cache,
// with the default sources and sample dataset.
func NewDiscovery(f *fetcher.Fetcher, c *cache.Cache) *DiscoveryAgent {
	return &DiscoveryAgent{
		Base:    NewBase("EventDiscoveryAgent", "Discovers and ranks cloud native conference events"),
		fetcher: f,
		cache:   c,
		Sources: DefaultSources(),
		Sample:  DefaultSample,
	}
}

// Cache exposes the agent's snapshot cache for callers that coordinate
// around it (the watch scheduler clears it between passes).
func (a *DiscoveryAgent) Cache() *cache.Cache { return a.cache }

// ProcessRequest dispatches on the request type. An absent type defaults to
// discover.
func (a *DiscoveryAgent) ProcessRequest(ctx context.Context, req Request) Response {
	switch t := requestType(req, "discover"); t {
	case "discover":
		return a.Discover(ctx)
	case "filter":
		return a.Filter(ctx, mapField(req, "filters"))
	case "details":
		return a.Details(ctx, stringField(req, "event_id"))
	default:
		return Fail("unknown request type: %s", t)
	}
}

// Discover returns the cached snapshot when valid, otherwise scrapes all
// sources, scores and sorts the results, commits them as the new snapshot,
// and reports whether the events came from cache, live scraping, or the
// sample fallback.
func (a *DiscoveryAgent) Discover(ctx context.Context) Response {
	if snap, ok := a.cache.Get(); ok {
		metrics.CacheHits.Inc()
		a.LogActivity("Serving cached events", logger.Fields{"count": len(snap.Events)})
		return Response{
			"success":   true,
			"events":    snap.Events,
			"source":    "cache",
			"timestamp": snap.Timestamp,
		}
	}
	metrics.CacheMisses.Inc()

	start := time.Now()
	var all []*event.Event
	for _, src := range a.Sources {
		events := a.scrapeSource(ctx, src)
		metrics.EventsScraped.WithLabelValues(src.Tag).Add(float64(len(events)))
		logger.Info("Scraped source", logger.Fields{
			"source": src.Tag,
			"count":  len(events),
		})
		all = append(all, events...)
	}

	label := "live"
	if len(all) == 0 {
		all = a.Sample()
		label = "sample"
		logger.Warn("All sources empty, using sample events", logger.Fields{
			"count": len(all),
		})
	}

	processed := process(all)
	snap := a.cache.Set(processed)
	metrics.DiscoveryDuration.Observe(time.Since(start).Seconds())

	a.LogActivity("Discovery pass complete", logger.Fields{
		"count":  len(processed),
		"source": label,
	})
	return Response{
		"success":   true,
		"events":    processed,
		"source":    label,
		"timestamp": snap.Timestamp,
	}
}

// Filter applies criteria from a raw filters map to the current events,
// running a discovery pass first when the cache is empty or stale.
func (a *DiscoveryAgent) Filter(ctx context.Context, raw map[string]interface{}) Response {
	if !a.cache.IsValid() {
		a.Discover(ctx)
	}

	var events []*event.Event
	if snap, ok := a.cache.Get(); ok {
		events = snap.Events
	}

	criteria := filter.FromMap(raw)
	matched := criteria.Apply(events)

	a.LogActivity("Filtered events", logger.Fields{
		"matched": len(matched),
		"of":      len(events),
	})
	return Response{
		"success":         true,
		"events":          matched,
		"filters_applied": raw,
		"total_found":     len(matched),
	}
}

// Details looks up an event by ID in the current snapshot and enriches it
// with funding program information. The lookup never mutates the snapshot.
func (a *DiscoveryAgent) Details(ctx context.Context, eventID string) Response {
	if eventID == "" {
		return Fail("event_id is required")
	}

	if !a.cache.IsValid() {
		a.Discover(ctx)
	}

	if snap, ok := a.cache.Get(); ok {
		for _, evt := range snap.Events {
			if evt.ID == eventID {
				a.LogActivity("Served event details", logger.Fields{"event_id": eventID})
				return Response{
					"success": true,
					"event":   NewEventDetails(evt),
				}
			}
		}
	}
	return Fail("event with ID %s not found", eventID)
}

// scrapeSource fetches and extracts one source. Fallback URLs are tried in
// order only when the preceding URL yielded no events; the first URL with
// any yield wins.
func (a *DiscoveryAgent) scrapeSource(ctx context.Context, src Source) []*event.Event {
	urls := append([]string{src.URL}, src.Fallbacks...)
	for _, u := range urls {
		markup, err := a.fetcher.Fetch(ctx, u)
		if err != nil {
			metrics.FetchFailures.WithLabelValues(src.Tag).Inc()
			logger.Warn("Source fetch failed", logger.Fields{
				"source": src.Tag,
				"url":    u,
				"error":  err.Error(),
			})
			continue
		}
		if events := extractor.Extract(markup, src.Tag, u); len(events) > 0 {
			return events
		}
		logger.Debug("URL yielded no events", logger.Fields{
			"source": src.Tag,
			"url":    u,
		})
	}
	return nil
}

// process stamps and scores events, then sorts by relevance descending with
// the raw date string (lexically, descending) as the tiebreaker.
func process(events []*event.Event) []*event.Event {
	now := time.Now().UTC()
	for _, evt := range events {
		evt.ProcessedAt = now
		evt.RelevanceScore = scorer.Score(evt)
		evt.Deadlines = event.EstimateDeadlines(evt)
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].RelevanceScore != events[j].RelevanceScore {
			return events[i].RelevanceScore > events[j].RelevanceScore
		}
		return events[i].Date > events[j].Date
	})
	return events
}
