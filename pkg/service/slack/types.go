package slack

import (
	"context"

	"github.com/slack-go/slack"
)

// Service provides the interface to the Slack API used by the relay
type Service interface {
	// BotUserID returns the authenticated bot's own user ID, used to
	// ignore the bot's own messages. The value is cached after the first
	// auth.test call.
	BotUserID(ctx context.Context) (string, error)

	// GetUserInfo retrieves user information for the given user ID
	GetUserInfo(ctx context.Context, userID string) (*User, error)

	// PostMessage posts Block Kit blocks to a channel and returns the
	// message timestamp
	PostMessage(ctx context.Context, channelID string, blocks []slack.Block, fallbackText string) (string, error)

	// PostText posts a plain text message to a channel
	PostText(ctx context.Context, channelID, text string) error

	// PostThreadReply posts a plain text reply threaded under parentTS
	PostThreadReply(ctx context.Context, channelID, parentTS, text string) (string, error)

	// PostEphemeral posts a message visible only to the given user
	PostEphemeral(ctx context.Context, channelID, userID, text string) error

	// DownloadFile fetches a Slack private file URL with bot credentials
	DownloadFile(ctx context.Context, downloadURL string) ([]byte, error)

	// UploadImage uploads binary image data into a channel, threaded
	// under threadTS when it is non-empty
	UploadImage(ctx context.Context, channelID, threadTS, filename string, data []byte) error
}

// User is the subset of Slack user info the relay needs
type User struct {
	ID       string
	Name     string
	RealName string
}

// DisplayName returns the best human-readable name for the user
func (u *User) DisplayName() string {
	if u.RealName != "" {
		return u.RealName
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
