package types

import "github.com/m-mizutani/goerr/v2"

// CreativeStatus represents the review status of a creative
type CreativeStatus string

const (
	CreativeStatusPending  CreativeStatus = "pending"
	CreativeStatusApproved CreativeStatus = "approved"
	CreativeStatusRejected CreativeStatus = "rejected"
)

// AllCreativeStatuses returns all valid creative statuses
func AllCreativeStatuses() []CreativeStatus {
	return []CreativeStatus{
		CreativeStatusPending,
		CreativeStatusApproved,
		CreativeStatusRejected,
	}
}

// IsValid checks if the creative status is valid
func (s CreativeStatus) IsValid() bool {
	switch s {
	case CreativeStatusPending,
		CreativeStatusApproved,
		CreativeStatusRejected:
		return true
	default:
		return false
	}
}

// Decided reports whether the status is final. The status is monotone:
// once a creative leaves pending it never goes back.
func (s CreativeStatus) Decided() bool {
	return s == CreativeStatusApproved || s == CreativeStatusRejected
}

// Normalize returns the status, treating empty as pending for records
// written before the field existed.
func (s CreativeStatus) Normalize() CreativeStatus {
	if s == "" {
		return CreativeStatusPending
	}
	return s
}

// Emoji returns the emoji shown in outcome notifications
func (s CreativeStatus) Emoji() string {
	switch s {
	case CreativeStatusApproved:
		return "✅"
	case CreativeStatusRejected:
		return "❌"
	default:
		return "⏳"
	}
}

// String returns the string representation of the creative status
func (s CreativeStatus) String() string {
	return string(s)
}

// ParseCreativeStatus parses a string into a CreativeStatus
func ParseCreativeStatus(s string) (CreativeStatus, error) {
	status := CreativeStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid creative status", goerr.V("status", s))
	}
	return status, nil
}
