package filter

import (
	"testing"

	"github.com/confscout/eventscout/internal/event"
)

func testEvents() []*event.Event {
	return []*event.Event{
		{
			ID:             "kubecon_1",
			Title:          "KubeCon NA",
			Location:       "Atlanta, GA",
			Type:           "conference",
			RelevanceScore: 9.0,
		},
		{
			ID:             "cncf_1",
			Title:          "KCD Munich",
			Location:       "Munich, Germany",
			Type:           "event",
			RelevanceScore: 5.0,
		},
		{
			ID:             "cncf_2",
			Title:          "Online Meetup",
			Location:       event.LocationTBD,
			Type:           "event",
			RelevanceScore: 2.5,
		},
	}
}

func TestMinRelevanceSubset(t *testing.T) {
	events := testEvents()
	c := Criteria{MinRelevance: 5}

	got := c.Apply(events)

	if len(got) != 2 {
		t.Fatalf("expected 2 events with score >= 5, got %d", len(got))
	}
	for _, evt := range got {
		if evt.RelevanceScore < 5 {
			t.Errorf("event %s has score %.1f below threshold", evt.ID, evt.RelevanceScore)
		}
	}

	// Result must be a subset of the input
	input := make(map[string]bool)
	for _, evt := range events {
		input[evt.ID] = true
	}
	for _, evt := range got {
		if !input[evt.ID] {
			t.Errorf("filter produced event %s not present in input", evt.ID)
		}
	}
}

func TestLocationSubstring(t *testing.T) {
	tests := []struct {
		name     string
		location string
		expected int
	}{
		{"exact city", "Munich", 1},
		{"case insensitive", "atlanta", 1},
		{"partial", "germ", 1},
		{"no match", "Tokyo", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Criteria{Location: tt.location}
			got := c.Apply(testEvents())
			if len(got) != tt.expected {
				t.Errorf("Location=%q matched %d events, expected %d", tt.location, len(got), tt.expected)
			}
		})
	}
}

func TestEventTypeExactMatch(t *testing.T) {
	c := Criteria{EventType: "conference"}

	got := c.Apply(testEvents())
	if len(got) != 1 || got[0].ID != "kubecon_1" {
		t.Fatalf("expected only the conference event, got %v", got)
	}
}

func TestDateRangeIsNoOp(t *testing.T) {
	c := Criteria{DateRange: "2026-01-01..2026-12-31"}

	got := c.Apply(testEvents())
	if len(got) != len(testEvents()) {
		t.Errorf("date_range must not filter, got %d of %d events", len(got), len(testEvents()))
	}
}

func TestEmptyCriteriaPassesAll(t *testing.T) {
	events := testEvents()
	got := Criteria{}.Apply(events)
	if len(got) != len(events) {
		t.Errorf("empty criteria filtered events: %d of %d", len(got), len(events))
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]interface{}{
		"location":      "Munich",
		"min_relevance": 4.5,
		"event_type":    "event",
		"bogus_key":     "ignored",
		"another":       42,
	})

	if c.Location != "Munich" {
		t.Errorf("expected location Munich, got %q", c.Location)
	}
	if c.MinRelevance != 4.5 {
		t.Errorf("expected min relevance 4.5, got %f", c.MinRelevance)
	}
	if c.EventType != "event" {
		t.Errorf("expected event_type event, got %q", c.EventType)
	}
}

func TestFromMapIntThreshold(t *testing.T) {
	c := FromMap(map[string]interface{}{"min_relevance": 5})
	if c.MinRelevance != 5.0 {
		t.Errorf("expected int threshold coerced to 5.0, got %f", c.MinRelevance)
	}
}

func TestFromMapWrongTypesIgnored(t *testing.T) {
	c := FromMap(map[string]interface{}{
		"location":      123,
		"min_relevance": "high",
	})
	if !c.IsEmpty() {
		t.Errorf("expected mistyped criteria to be ignored, got %+v", c)
	}
}
