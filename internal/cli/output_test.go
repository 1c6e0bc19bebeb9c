package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/confscout/eventscout/internal/event"
)

func listing() []*event.Event {
	a := event.New(event.SourceCNCF, "KubeCon Europe", "2026-03-16", "Paris, France", "The flagship cloud native conference.", "https://example.com/kc", "")
	a.RelevanceScore = 9
	b := event.New(event.SourceLinuxFoundation, "Open Source Summit", event.DateTBD, "Denver, CO", "Cross-project collaboration.", "https://example.com/oss", "")
	b.RelevanceScore = 3
	return []*event.Event{a, b}
}

func TestWriteOutputText(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{Origin: "live", Events: listing(), EventCount: 2}

	if err := WriteOutput(&buf, result, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Events (live):", "KubeCon Europe", "Open Source Summit", "Total: 2 events"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "ID:") {
		t.Errorf("non-verbose output should not include IDs:\n%s", out)
	}
}

func TestWriteOutputTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, &OutputResult{}, FormatText, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No events found.") {
		t.Errorf("empty listing output = %q", buf.String())
	}
}

func TestWriteOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{Origin: "cache", Events: listing(), EventCount: 2}

	if err := WriteOutput(&buf, result, FormatJSON, false); err != nil {
		t.Fatalf("WriteOutput() error = %v", err)
	}

	var decoded OutputResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.EventCount != 2 || len(decoded.Events) != 2 {
		t.Errorf("decoded = %+v, want 2 events", decoded)
	}
	if decoded.Origin != "cache" {
		t.Errorf("origin = %q, want cache", decoded.Origin)
	}
}

func TestSortEvents(t *testing.T) {
	events := listing()

	sortEvents(events, SortByTitle)
	if events[0].Title != "KubeCon Europe" {
		t.Errorf("title sort: first = %q", events[0].Title)
	}

	// Lexical date sort puts TBD after real dates.
	sortEvents(events, SortByDate)
	if events[len(events)-1].Date != event.DateTBD {
		t.Errorf("date sort: last = %q, want TBD last", events[len(events)-1].Date)
	}

	// Relevance keeps the incoming ranking.
	ranked := listing()
	sortEvents(ranked, SortByRelevance)
	if ranked[0].Title != "KubeCon Europe" {
		t.Errorf("relevance sort reordered: first = %q", ranked[0].Title)
	}
}
