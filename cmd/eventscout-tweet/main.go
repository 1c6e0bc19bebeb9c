// Command eventscout-tweet posts announcements for events piped in as JSON,
// typically the output of "eventscout discover --format json". It exists so
// scheduled jobs can separate discovery from announcement.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/confscout/eventscout/internal/event"
	"github.com/confscout/eventscout/internal/notifier"
)

var (
	eventsFile   = flag.String("events-file", "", "Path to events JSON file (or read from stdin)")
	dryRun       = flag.Bool("dry-run", false, "Print tweets without posting")
	maxTweets    = flag.Int("max-tweets", 10, "Maximum number of tweets to post")
	minRelevance = flag.Float64("min-relevance", 0, "Only tweet events at or above this relevance score")
)

func main() {
	flag.Parse()

	var reader io.Reader
	if *eventsFile != "" {
		f, err := os.Open(*eventsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening events file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	var result struct {
		Events []*event.Event `json:"events"`
	}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	if len(result.Events) == 0 {
		fmt.Println("No events to tweet")
		os.Exit(0)
	}

	events := result.Events
	if *minRelevance > 0 {
		filtered := make([]*event.Event, 0, len(events))
		for _, evt := range events {
			if evt.RelevanceScore >= *minRelevance {
				filtered = append(filtered, evt)
			}
		}
		events = filtered
	}

	if len(events) > *maxTweets {
		events = events[:*maxTweets]
	}

	if len(events) == 0 {
		fmt.Println("No events match criteria")
		os.Exit(0)
	}

	var tw notifier.Notifier
	if *dryRun {
		tw = notifier.NewDryRunNotifier()
		fmt.Printf("DRY RUN MODE - Would tweet %d events:\n\n", len(events))
	} else {
		client, err := notifier.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		tw = client
	}

	if err := tw.Notify(events); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting tweets: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Successfully posted %d tweets\n", len(events))
	}
}
