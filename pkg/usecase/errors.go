package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	ErrCreativeNotFound = errors.New("creative not found")
	ErrAlreadyDecided   = errors.New("creative is already decided")
	ErrUnknownAction    = errors.New("unknown decision action")
)

// Context keys for error values
const (
	CreativeIDKey = "creative_id"
	ChannelIDKey  = "channel_id"
)
