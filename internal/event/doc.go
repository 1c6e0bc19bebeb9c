// Package event defines the Event type produced by the discovery pipeline.
//
// Events are scraped from conference listing sites, scored for cloud-native
// relevance, and cached by the discovery agent. Each event carries a
// deterministic ID derived from its source tag and title, so repeated
// discovery runs assign the same ID to the same listing.
package event
