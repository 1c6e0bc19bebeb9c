package event

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

// Sentinel values used when a scraped block is missing a field.
const (
	DateTBD       = "TBD"
	LocationTBD   = "TBD"
	NoDescription = "No description available"
)

// Source tags for the supported listing sites.
const (
	SourceLinuxFoundation = "linux_foundation"
	SourceCNCF            = "cncf"
	SourceKubeCon         = "kubecon"
)

// Deadlines holds the estimated program deadlines stamped onto an event
// during processing. Listing pages do not publish these, so every field
// defaults to TBD.
type Deadlines struct {
	CFP          string `json:"cfp_deadline"`
	Registration string `json:"registration_deadline"`
	Scholarship  string `json:"scholarship_deadline"`
}

// EstimateDeadlines returns deadline placeholders for an event. Real
// deadlines would need the per-event pages the pipeline does not fetch.
func EstimateDeadlines(evt *Event) Deadlines {
	return Deadlines{
		CFP:          DateTBD,
		Registration: DateTBD,
		Scholarship:  DateTBD,
	}
}

// Event represents a single discovered conference event.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	Type           string    `json:"type"`
	RelevanceScore float64   `json:"relevance_score"`
	ProcessedAt    time.Time `json:"processed_at,omitempty"`
	Deadlines      Deadlines `json:"deadlines"`
}

// GenerateID creates a deterministic ID for an event from its source tag and
// title. The hash covers the title only, so two distinct events with an
// identical title from the same source share an ID. Kept this way for
// compatibility with existing consumers of the IDs.
func GenerateID(source, title string) string {
	h := fnv.New32a()
	h.Write([]byte(title))
	return fmt.Sprintf("%s_%d", source, h.Sum32())
}

// TypeForSource derives the event type tag from the source tag.
func TypeForSource(source string) string {
	if strings.Contains(strings.ToLower(source), "kubecon") {
		return "conference"
	}
	return "event"
}

// New creates an Event with ID and Type populated. Missing date, location,
// description, and URL fall back to their sentinel defaults; url falls back
// to baseURL so every event links somewhere useful.
func New(source, title, date, location, description, url, baseURL string) *Event {
	if date == "" {
		date = DateTBD
	}
	if location == "" {
		location = LocationTBD
	}
	if description == "" {
		description = NoDescription
	}
	if url == "" {
		url = baseURL
	}
	return &Event{
		ID:          GenerateID(source, title),
		Title:       title,
		Date:        date,
		Location:    location,
		Description: description,
		URL:         url,
		Source:      source,
		Type:        TypeForSource(source),
	}
}
