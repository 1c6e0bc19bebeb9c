// Package calendar exports discovered events as iCalendar data so listings
// can be imported into a calendar client.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/confscout/eventscout/internal/event"
)

// Conferences rarely publish an end date in their listings; assume the
// typical three-day run.
const defaultDurationDays = 3

// dateLayouts are tried in order when parsing a scraped date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// GenerateICS renders events as a single VCALENDAR with one all-day,
// multi-day VEVENT per event. Events whose date cannot be parsed are
// skipped; a calendar entry on a wrong day is worse than a missing one.
func GenerateICS(events []*event.Event, calendarName string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//eventscout//eventscout//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if calendarName != "" {
		fmt.Fprintf(&ics, "X-WR-CALNAME:%s\r\n", escapeICS(calendarName))
	}

	now := time.Now().UTC()
	for _, evt := range events {
		start, ok := parseDate(evt.Date)
		if !ok {
			continue
		}
		writeVEvent(&ics, evt, start, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

func writeVEvent(ics *strings.Builder, evt *event.Event, start time.Time, stamp time.Time) {
	end := start.AddDate(0, 0, defaultDurationDays)

	ics.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(ics, "UID:%s@eventscout\r\n", evt.ID)
	fmt.Fprintf(ics, "DTSTAMP:%s\r\n", stamp.Format("20060102T150405Z"))
	fmt.Fprintf(ics, "DTSTART;VALUE=DATE:%s\r\n", start.Format("20060102"))
	fmt.Fprintf(ics, "DTEND;VALUE=DATE:%s\r\n", end.Format("20060102"))
	fmt.Fprintf(ics, "SUMMARY:%s\r\n", escapeICS(evt.Title))

	description := fmt.Sprintf("Source: %s", evt.Source)
	if evt.Description != "" && evt.Description != event.NoDescription {
		description = evt.Description + "\n" + description
	}
	fmt.Fprintf(ics, "DESCRIPTION:%s\r\n", escapeICS(description))

	if evt.Location != "" && evt.Location != event.LocationTBD {
		fmt.Fprintf(ics, "LOCATION:%s\r\n", escapeICS(evt.Location))
	}
	if evt.URL != "" {
		fmt.Fprintf(ics, "URL:%s\r\n", evt.URL)
	}

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// parseDate tries the known layouts against a scraped date string.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == event.DateTBD {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// escapeICS escapes special characters according to RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
