package cli

import (
	"sort"
	"strings"

	"github.com/confscout/eventscout/internal/event"
)

// SortOrder represents the available display sort options.
type SortOrder string

const (
	SortByRelevance SortOrder = "relevance"
	SortByDate      SortOrder = "date"
	SortByTitle     SortOrder = "title"
)

// sortEvents re-orders events for display. Relevance is the ranking the
// agent already applied, so it leaves the slice untouched. Date sorting is
// lexical on the raw date string, which puts TBD dates last.
func sortEvents(events []*event.Event, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Date != events[j].Date {
				return events[i].Date < events[j].Date
			}
			return strings.ToLower(events[i].Title) < strings.ToLower(events[j].Title)
		})
	case SortByTitle:
		sort.SliceStable(events, func(i, j int) bool {
			ti, tj := strings.ToLower(events[i].Title), strings.ToLower(events[j].Title)
			if ti != tj {
				return ti < tj
			}
			return events[i].Date < events[j].Date
		})
	}
}
