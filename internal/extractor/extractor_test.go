package extractor

import (
	"os"
	"testing"

	"github.com/confscout/eventscout/internal/event"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", name, err)
	}
	return data
}

func TestExtractLinuxFoundationEvents(t *testing.T) {
	markup := loadFixture(t, "linux_foundation_events.html")

	events := Extract(markup, event.SourceLinuxFoundation, "https://www.linuxfoundation.org/events/")

	// Four event-card blocks: one has a trivial title ("Hi") and is dropped.
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	byTitle := make(map[string]*event.Event)
	for _, evt := range events {
		if evt.Title == "" {
			t.Fatal("extracted event with empty title")
		}
		byTitle[evt.Title] = evt
	}

	oss, ok := byTitle["Open Source Summit North America"]
	if !ok {
		t.Fatal("expected Open Source Summit North America to be extracted")
	}
	if oss.Date != "2026-06-22" {
		t.Errorf("expected machine-readable datetime to win, got %q", oss.Date)
	}
	if oss.Location != "Denver, CO" {
		t.Errorf("expected location 'Denver, CO', got %q", oss.Location)
	}
	if oss.URL != "https://www.linuxfoundation.org/events/open-source-summit-north-america/" {
		t.Errorf("relative href not resolved, got %q", oss.URL)
	}
	if oss.Source != event.SourceLinuxFoundation {
		t.Errorf("expected source tag to be carried, got %q", oss.Source)
	}
	if oss.Type != "event" {
		t.Errorf("expected derived type 'event', got %q", oss.Type)
	}

	kc, ok := byTitle["KubeCon + CloudNativeCon Europe"]
	if !ok {
		t.Fatal("expected KubeCon + CloudNativeCon Europe to be extracted")
	}
	if kc.Date != "March 16-19, 2026" {
		t.Errorf("expected date from class hint, got %q", kc.Date)
	}
	if kc.Location != "Amsterdam, Netherlands" {
		t.Errorf("expected venue class to supply location, got %q", kc.Location)
	}
	if kc.URL != "https://events.linuxfoundation.org/kubecon-cloudnativecon-europe/" {
		t.Errorf("absolute href must be kept as-is, got %q", kc.URL)
	}

	bare, ok := byTitle["Linux Security Summit"]
	if !ok {
		t.Fatal("expected Linux Security Summit to be extracted")
	}
	if bare.Date != event.DateTBD || bare.Location != event.LocationTBD {
		t.Errorf("expected sentinel date/location, got %q / %q", bare.Date, bare.Location)
	}
	if bare.Description != event.NoDescription {
		t.Errorf("expected description sentinel, got %q", bare.Description)
	}
	if bare.URL != "https://www.linuxfoundation.org/events/" {
		t.Errorf("expected URL fallback to base URL, got %q", bare.URL)
	}
}

func TestExtractSelectorPriority(t *testing.T) {
	markup := loadFixture(t, "cncf_events.html")

	events := Extract(markup, event.SourceCNCF, "https://www.cncf.io/events/")

	// The card selector matches, so the lower-priority item block is ignored.
	if len(events) != 2 {
		t.Fatalf("expected 2 events from card blocks only, got %d", len(events))
	}
	for _, evt := range events {
		if evt.Title == "This item block must not be picked up while card blocks exist" {
			t.Error("item block extracted despite card blocks matching first")
		}
	}
}

func TestExtractShortDateFallsBack(t *testing.T) {
	markup := loadFixture(t, "cncf_events.html")

	events := Extract(markup, event.SourceCNCF, "https://www.cncf.io/events/")

	for _, evt := range events {
		if evt.Title == "Prometheus Day" {
			// "TBA" is at the length threshold and treated as noise.
			if evt.Date != event.DateTBD {
				t.Errorf("expected date sentinel for short date text, got %q", evt.Date)
			}
			return
		}
	}
	t.Fatal("Prometheus Day not extracted")
}

func TestExtractRelativeURLResolution(t *testing.T) {
	markup := loadFixture(t, "cncf_events.html")

	events := Extract(markup, event.SourceCNCF, "https://www.cncf.io/events/")

	for _, evt := range events {
		if evt.Title == "Kubernetes Community Days Munich" {
			if evt.URL != "https://www.cncf.io/kcd-munich/" {
				t.Errorf("expected ../ to resolve against base, got %q", evt.URL)
			}
			return
		}
	}
	t.Fatal("KCD Munich not extracted")
}

func TestExtractTitleOnlyBlock(t *testing.T) {
	markup := loadFixture(t, "title_only.html")

	events := Extract(markup, event.SourceCNCF, "https://www.cncf.io/events/")

	if len(events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(events))
	}

	evt := events[0]
	if evt.Title != "Cloud Native Rejekts" {
		t.Errorf("unexpected title %q", evt.Title)
	}
	if evt.Date != event.DateTBD {
		t.Errorf("expected date %q, got %q", event.DateTBD, evt.Date)
	}
	if evt.Location != event.LocationTBD {
		t.Errorf("expected location %q, got %q", event.LocationTBD, evt.Location)
	}
	if evt.Description != event.NoDescription {
		t.Errorf("expected description %q, got %q", event.NoDescription, evt.Description)
	}
}

func TestExtractNoBlocks(t *testing.T) {
	markup := []byte("<html><body><p>Nothing to see here.</p></body></html>")

	events := Extract(markup, event.SourceCNCF, "https://www.cncf.io/events/")
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}
