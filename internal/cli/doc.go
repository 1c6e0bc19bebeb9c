// Package cli implements the command-line interface for eventscout.
//
// The cli package provides the Cobra-based CLI with support for discovering
// and filtering events, formatting output (text/JSON), sorting (by
// relevance/date/title), looking up per-event funding details, and running
// the scheduled watch mode. It coordinates the agent, fetcher, cache, and
// notifier packages.
package cli
