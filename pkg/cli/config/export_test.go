package config

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, signingSecret, sourceChannelID, reviewChannelID string) *Slack {
	return &Slack{
		botToken:        botToken,
		signingSecret:   signingSecret,
		sourceChannelID: sourceChannelID,
		reviewChannelID: reviewChannelID,
	}
}

// NewAppConfigForTest creates an AppConfig pointing at the given file
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}
