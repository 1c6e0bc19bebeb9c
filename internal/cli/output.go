package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/event"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains a listing to be output.
type OutputResult struct {
	Origin     string         `json:"origin,omitempty"`
	Events     []*event.Event `json:"events"`
	EventCount int            `json:"event_count"`
}

// WriteOutput writes the listing in the specified format.
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteDetails writes one enriched event in the specified format.
func WriteDetails(w io.Writer, details *agent.EventDetails, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, details)
	case FormatText:
		return writeDetailsText(w, details)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs the listing as human-readable text.
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	if result.Origin != "" {
		fmt.Fprintf(w, "Events (%s):\n\n", result.Origin)
	}

	for _, evt := range result.Events {
		fmt.Fprintf(w, "[%4.1f] %s\n", evt.RelevanceScore, evt.Title)
		fmt.Fprintf(w, "       %s | %s | %s\n", evt.Date, evt.Location, evt.Source)
		if verbose {
			fmt.Fprintf(w, "       ID: %s\n", evt.ID)
			if evt.URL != "" {
				fmt.Fprintf(w, "       URL: %s\n", evt.URL)
			}
			if evt.Description != event.NoDescription {
				fmt.Fprintf(w, "       %s\n", evt.Description)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events\n", result.EventCount)
	return nil
}

// writeDetailsText outputs one enriched event as human-readable text.
func writeDetailsText(w io.Writer, details *agent.EventDetails) error {
	evt := details.Event
	fmt.Fprintf(w, "%s\n", evt.Title)
	fmt.Fprintf(w, "  ID:        %s\n", evt.ID)
	fmt.Fprintf(w, "  Date:      %s\n", evt.Date)
	fmt.Fprintf(w, "  Location:  %s\n", evt.Location)
	fmt.Fprintf(w, "  Source:    %s\n", evt.Source)
	fmt.Fprintf(w, "  Type:      %s\n", evt.Type)
	fmt.Fprintf(w, "  Relevance: %.1f\n", evt.RelevanceScore)
	if evt.URL != "" {
		fmt.Fprintf(w, "  URL:       %s\n", evt.URL)
	}
	if evt.Description != event.NoDescription {
		fmt.Fprintf(w, "\n  %s\n", evt.Description)
	}

	fmt.Fprintf(w, "\nScholarships: available=%v, deadline: %s\n", details.ScholarshipInfo.Available, details.ScholarshipInfo.Deadline)
	fmt.Fprintf(w, "  Requirements: %s\n", strings.Join(details.ScholarshipInfo.Requirements, "; "))
	fmt.Fprintf(w, "Travel funding: available=%v, deadline: %s\n", details.TravelFunding.Available, details.TravelFunding.Deadline)
	fmt.Fprintf(w, "  Coverage: %s\n", details.TravelFunding.Coverage)

	return nil
}
