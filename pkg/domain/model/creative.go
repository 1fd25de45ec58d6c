package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/buyops-dev/creative-relay/pkg/domain/types"
)

// Creative represents one buyer's image submission under review.
// All fields except Status and UpdatedAt are set once at creation.
type Creative struct {
	ID              types.CreativeID
	SubmitterID     string // Slack user ID of the buyer
	SubmitterName   string
	ReviewChannelID string
	Images          []string // ordered Slack private URLs, non-empty
	Description     string
	SourceMessageTS string // message timestamp in the source channel, used for reply threading
	Status          types.CreativeStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCreative constructs a pending creative for a new submission
func NewCreative(submitterID, submitterName, reviewChannelID string, images []string, description, sourceMessageTS string) *Creative {
	return &Creative{
		ID:              types.NewCreativeID(),
		SubmitterID:     submitterID,
		SubmitterName:   submitterName,
		ReviewChannelID: reviewChannelID,
		Images:          images,
		Description:     description,
		SourceMessageTS: sourceMessageTS,
		Status:          types.CreativeStatusPending,
	}
}

// Validate checks the invariants of a creative record
func (x *Creative) Validate() error {
	if err := x.ID.Validate(); err != nil {
		return goerr.Wrap(err, "invalid creative ID")
	}
	if x.SubmitterID == "" {
		return goerr.New("submitter ID is required", goerr.V("id", x.ID))
	}
	if x.ReviewChannelID == "" {
		return goerr.New("review channel ID is required", goerr.V("id", x.ID))
	}
	if len(x.Images) == 0 {
		return goerr.New("creative must have at least one image", goerr.V("id", x.ID))
	}
	if x.SourceMessageTS == "" {
		return goerr.New("source message timestamp is required", goerr.V("id", x.ID))
	}
	if !x.Status.Normalize().IsValid() {
		return goerr.New("invalid creative status", goerr.V("id", x.ID), goerr.V("status", x.Status))
	}
	return nil
}
