package event

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id1 := GenerateID("cncf", "CloudNativeCon Europe")
	id2 := GenerateID("cncf", "CloudNativeCon Europe")

	if id1 != id2 {
		t.Errorf("expected deterministic IDs, got %q and %q", id1, id2)
	}

	if !strings.HasPrefix(id1, "cncf_") {
		t.Errorf("expected ID to carry the source prefix, got %q", id1)
	}

	other := GenerateID("linux_foundation", "CloudNativeCon Europe")
	if other == id1 {
		t.Error("different sources should produce different IDs for the same title")
	}
}

func TestGenerateIDCollidesOnSameTitle(t *testing.T) {
	// The hash covers the title only. Two distinct events sharing a title
	// collide, and that is the documented behavior.
	a := New("cncf", "Community Meetup", "May 3, 2026", "Berlin", "", "", "https://www.cncf.io/events/")
	b := New("cncf", "Community Meetup", "June 9, 2026", "Paris", "", "", "https://www.cncf.io/events/")

	if a.ID != b.ID {
		t.Errorf("expected colliding IDs for identical titles, got %q and %q", a.ID, b.ID)
	}
}

func TestTypeForSource(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"kubecon", "conference"},
		{"KubeCon", "conference"},
		{"linux_foundation", "event"},
		{"cncf", "event"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := TypeForSource(tt.source); got != tt.expected {
				t.Errorf("TypeForSource(%q) = %q, expected %q", tt.source, got, tt.expected)
			}
		})
	}
}

func TestNewAppliesSentinels(t *testing.T) {
	evt := New("linux_foundation", "Open Source Summit", "", "", "", "", "https://www.linuxfoundation.org/events/")

	if evt.Date != DateTBD {
		t.Errorf("expected date sentinel %q, got %q", DateTBD, evt.Date)
	}
	if evt.Location != LocationTBD {
		t.Errorf("expected location sentinel %q, got %q", LocationTBD, evt.Location)
	}
	if evt.Description != NoDescription {
		t.Errorf("expected description sentinel %q, got %q", NoDescription, evt.Description)
	}
	if evt.URL != "https://www.linuxfoundation.org/events/" {
		t.Errorf("expected URL to fall back to base URL, got %q", evt.URL)
	}
}

func TestDiff(t *testing.T) {
	seen := map[string]bool{}

	first := []*Event{
		New("cncf", "KCD Munich", "", "", "", "", "https://www.cncf.io/events/"),
		New("cncf", "KCD Porto", "", "", "", "", "https://www.cncf.io/events/"),
	}

	fresh := Diff(seen, first)
	if len(fresh) != 2 {
		t.Fatalf("expected 2 new events on first pass, got %d", len(fresh))
	}

	MarkSeen(seen, first)

	second := append(first, New("kubecon", "KubeCon NA", "", "", "", "", "https://events.linuxfoundation.org/"))
	fresh = Diff(seen, second)
	if len(fresh) != 1 {
		t.Fatalf("expected 1 new event on second pass, got %d", len(fresh))
	}
	if fresh[0].Title != "KubeCon NA" {
		t.Errorf("expected the new event to be KubeCon NA, got %q", fresh[0].Title)
	}
}
