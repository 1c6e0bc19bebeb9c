// Package filter narrows a discovered event list by caller-supplied
// criteria.
//
// Criteria arrive as a loosely-typed map (the request contract used by the
// agents) and are parsed into a typed Criteria value. Recognized keys:
//
//   - location: case-insensitive substring match on the event location
//   - min_relevance: minimum relevance score
//   - event_type: exact match on the derived event type
//   - date_range: declared but not applied (see Criteria.DateRange)
//
// Unrecognized keys are ignored so callers can send newer criteria to older
// deployments without breaking.
package filter

import (
	"fmt"
	"strings"

	"github.com/confscout/eventscout/internal/event"
)

// Criteria represents event filtering criteria.
type Criteria struct {
	// Location is matched as a case-insensitive substring of the event
	// location. Events without a usable location fail the criterion.
	Location string `json:"location,omitempty"`

	// MinRelevance passes events whose relevance score is >= the threshold.
	MinRelevance float64 `json:"min_relevance,omitempty"`

	// EventType is an exact match on the derived event type tag.
	EventType string `json:"event_type,omitempty"`

	// DateRange is accepted for forward compatibility but not applied:
	// event dates are free-text strings with no reliable parse, so the
	// criterion always passes. Do not quietly implement range semantics
	// here without agreeing on a date format first.
	DateRange string `json:"date_range,omitempty"`
}

// FromMap parses a criteria map into a typed Criteria. Unknown keys are
// skipped; values of an unexpected type are skipped too.
func FromMap(raw map[string]interface{}) Criteria {
	var c Criteria
	for key, value := range raw {
		switch key {
		case "location":
			if s, ok := value.(string); ok {
				c.Location = s
			}
		case "min_relevance":
			switch v := value.(type) {
			case float64:
				c.MinRelevance = v
			case int:
				c.MinRelevance = float64(v)
			}
		case "event_type":
			if s, ok := value.(string); ok {
				c.EventType = s
			}
		case "date_range":
			if s, ok := value.(string); ok {
				c.DateRange = s
			}
		}
	}
	return c
}

// IsEmpty reports whether no active criterion is set.
func (c Criteria) IsEmpty() bool {
	return c.Location == "" && c.MinRelevance == 0 && c.EventType == "" && c.DateRange == ""
}

// Matches checks whether an event passes all active criteria.
func (c Criteria) Matches(evt *event.Event) bool {
	if c.Location != "" {
		if evt.Location == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(evt.Location), strings.ToLower(c.Location)) {
			return false
		}
	}

	if c.MinRelevance > 0 && evt.RelevanceScore < c.MinRelevance {
		return false
	}

	if c.EventType != "" && evt.Type != c.EventType {
		return false
	}

	// DateRange: declared, never filters.

	return true
}

// Apply returns the events matching all active criteria. The result is
// always a subsequence of the input.
func (c Criteria) Apply(events []*event.Event) []*event.Event {
	if c.IsEmpty() {
		return events
	}

	filtered := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if c.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
func (c Criteria) String() string {
	if c.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if c.Location != "" {
		parts = append(parts, fmt.Sprintf("Location: %s", c.Location))
	}
	if c.MinRelevance > 0 {
		parts = append(parts, fmt.Sprintf("Min relevance: %.1f", c.MinRelevance))
	}
	if c.EventType != "" {
		parts = append(parts, fmt.Sprintf("Type: %s", c.EventType))
	}
	if c.DateRange != "" {
		parts = append(parts, fmt.Sprintf("Date range: %s (not applied)", c.DateRange))
	}
	return strings.Join(parts, " | ")
}
