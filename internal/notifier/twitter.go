package notifier

import (
	"fmt"
	"os"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
)

// Twitter posts run notifications as tweets.
type Twitter struct {
	client *twitter.Client
}

// NewTwitter creates a Twitter notifier using environment variables.
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitter() (*Twitter, error) {
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

	return &Twitter{client: twitter.NewClient(httpClient)}, nil
}

// Notify posts the message as a status update.
func (n *Twitter) Notify(text string) error {
	// Twitter limit is 280 characters
	if len(text) > 280 {
		text = text[:277] + "..."
	}

	_, _, err := n.client.Statuses.Update(text, nil)
	if err != nil {
		return fmt.Errorf("posting tweet: %w", err)
	}
	return nil
}
