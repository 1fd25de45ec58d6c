package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	slacksvc "github.com/buyops-dev/creative-relay/pkg/service/slack"
)

// Slack holds CLI flags for the Slack integration
type Slack struct {
	botToken        string
	signingSecret   string
	sourceChannelID string
	reviewChannelID string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Category:    "Slack",
			Sources:     cli.EnvVars("CREATIVE_RELAY_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack Signing Secret (for webhook verification)",
			Category:    "Slack",
			Sources:     cli.EnvVars("CREATIVE_RELAY_SLACK_SIGNING_SECRET"),
			Destination: &x.signingSecret,
		},
		&cli.StringFlag{
			Name:        "source-channel-id",
			Usage:       "Channel ID where buyers post creatives",
			Category:    "Slack",
			Sources:     cli.EnvVars("CREATIVE_RELAY_SOURCE_CHANNEL_ID"),
			Destination: &x.sourceChannelID,
		},
		&cli.StringFlag{
			Name:        "review-channel-id",
			Usage:       "Channel ID where reviewers approve or reject creatives",
			Category:    "Slack",
			Sources:     cli.EnvVars("CREATIVE_RELAY_REVIEW_CHANNEL_ID"),
			Destination: &x.reviewChannelID,
		},
	}
}

// Secrets are logged by length only
func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.Int("signing-secret.len", len(x.signingSecret)),
		slog.String("source-channel-id", x.sourceChannelID),
		slog.String("review-channel-id", x.reviewChannelID),
	)
}

// Validate checks that all required Slack settings are present
func (x *Slack) Validate() error {
	if x.botToken == "" {
		return goerr.New("--slack-bot-token is required")
	}
	if x.signingSecret == "" {
		return goerr.New("--slack-signing-secret is required")
	}
	if x.sourceChannelID == "" {
		return goerr.New("--source-channel-id is required")
	}
	if x.reviewChannelID == "" {
		return goerr.New("--review-channel-id is required")
	}
	if x.sourceChannelID == x.reviewChannelID {
		return goerr.New("source and review channels must differ",
			goerr.V("channel_id", x.sourceChannelID))
	}
	return nil
}

// Configure validates the settings and builds the Slack service
func (x *Slack) Configure() (slacksvc.Service, error) {
	if err := x.Validate(); err != nil {
		return nil, err
	}
	return slacksvc.New(x.botToken)
}

// SigningSecret returns the Slack signing secret
func (x *Slack) SigningSecret() string {
	return x.signingSecret
}

// SourceChannelID returns the buyers channel ID
func (x *Slack) SourceChannelID() string {
	return x.sourceChannelID
}

// ReviewChannelID returns the reviewers channel ID
func (x *Slack) ReviewChannelID() string {
	return x.reviewChannelID
}
