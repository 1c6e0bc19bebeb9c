package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/confscout/eventscout/internal/event"
)

// TwitterNotifier posts event announcements to Twitter.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier using environment variables.
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per event.
func (n *TwitterNotifier) Notify(events []*event.Event) error {
	for i, evt := range events {
		tweet := formatTweet(evt)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for event %s: %w", evt.ID, err)
		}

		// Rate limiting: wait between tweets
		if i < len(events)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet formats an event announcement, truncated to the 280
// character tweet limit.
func formatTweet(evt *event.Event) string {
	tweet := "📣 New cloud native event!\n\n"
	tweet += fmt.Sprintf("✨ %s\n", evt.Title)

	if evt.Date != "" && evt.Date != event.DateTBD {
		tweet += fmt.Sprintf("📅 %s\n", evt.Date)
	}

	if evt.Location != "" && evt.Location != event.LocationTBD {
		tweet += fmt.Sprintf("📍 %s\n", evt.Location)
	}

	if evt.URL != "" {
		tweet += fmt.Sprintf("\n🔗 %s\n", evt.URL)
	}
	tweet += "\n#CloudNative #Kubernetes"

	if len(tweet) > 280 {
		tweet = tweet[:277] + "..."
	}

	return tweet
}
