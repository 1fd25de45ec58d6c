package config

import "github.com/m-mizutani/goerr/v2"

// Messages holds the user-visible texts posted by the relay. All fields
// are optional in the TOML file; empty fields fall back to the defaults.
type Messages struct {
	// PlaceholderDescription substitutes an empty submission text
	PlaceholderDescription string `toml:"placeholder_description"`
	// SubmissionConfirmation is the threaded reply on a forwarded submission
	SubmissionConfirmation string `toml:"submission_confirmation"`
	// SubmissionStoreFailure is the threaded reply when persisting fails
	SubmissionStoreFailure string `toml:"submission_store_failure"`
	// SubmissionDeliveryFailure is the threaded reply when forwarding fails
	SubmissionDeliveryFailure string `toml:"submission_delivery_failure"`
}

// DefaultMessages returns the built-in message texts
func DefaultMessages() *Messages {
	return &Messages{
		PlaceholderDescription:    "No description",
		SubmissionConfirmation:    "Your creative has been forwarded for review.",
		SubmissionStoreFailure:    "Failed to save your creative. Please try again.",
		SubmissionDeliveryFailure: "Your creative was saved but could not be forwarded for review. Please try again.",
	}
}

// Normalize fills empty fields from the defaults
func (m *Messages) Normalize() {
	defaults := DefaultMessages()
	if m.PlaceholderDescription == "" {
		m.PlaceholderDescription = defaults.PlaceholderDescription
	}
	if m.SubmissionConfirmation == "" {
		m.SubmissionConfirmation = defaults.SubmissionConfirmation
	}
	if m.SubmissionStoreFailure == "" {
		m.SubmissionStoreFailure = defaults.SubmissionStoreFailure
	}
	if m.SubmissionDeliveryFailure == "" {
		m.SubmissionDeliveryFailure = defaults.SubmissionDeliveryFailure
	}
}

// Validate checks the messages after normalization
func (m *Messages) Validate() error {
	if m.PlaceholderDescription == "" {
		return goerr.New("placeholder_description must not be empty")
	}
	if m.SubmissionConfirmation == "" {
		return goerr.New("submission_confirmation must not be empty")
	}
	return nil
}
