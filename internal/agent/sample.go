package agent

import "github.com/confscout/eventscout/internal/event"

// SampleProvider supplies fallback events for when every live source is
// unreachable. Injectable so tests and offline runs can control the dataset.
type SampleProvider func() []*event.Event

// DefaultSample returns a small static set of well-known events so the
// pipeline stays demonstrable without network access.
func DefaultSample() []*event.Event {
	return []*event.Event{
		event.New(
			event.SourceKubeCon,
			"KubeCon + CloudNativeCon North America 2026",
			"2026-11-10",
			"Los Angeles, CA",
			"The flagship cloud native conference gathering adopters and technologists from leading open source and cloud native communities.",
			"https://events.linuxfoundation.org/kubecon-cloudnativecon-north-america/",
			"",
		),
		event.New(
			event.SourceLinuxFoundation,
			"Open Source Summit Europe 2026",
			"2026-09-14",
			"Amsterdam, Netherlands",
			"The premier event for open source developers, technologists, and community leaders to collaborate and share information.",
			"https://events.linuxfoundation.org/open-source-summit-europe/",
			"",
		),
		event.New(
			event.SourceCNCF,
			"CloudNativeSecurityCon 2026",
			"2026-06-03",
			"Seattle, WA",
			"Two days of focused content on cloud native security, from supply chain integrity to runtime protection.",
			"https://events.linuxfoundation.org/cloudnativesecuritycon-north-america/",
			"",
		),
	}
}
