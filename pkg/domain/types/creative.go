package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// CreativeID represents a unique identifier for a creative
type CreativeID string

// NewCreativeID generates a new random CreativeID
func NewCreativeID() CreativeID {
	return CreativeID(uuid.New().String())
}

// Validate checks if the CreativeID is valid. IDs must not contain an
// underscore: the decision button value is "<action>_<id>" and is split
// once on the first underscore.
func (x CreativeID) Validate() error {
	if x == "" {
		return goerr.New("creative ID cannot be empty")
	}
	if strings.Contains(string(x), "_") {
		return goerr.New("creative ID must not contain underscore", goerr.V("id", x))
	}
	return nil
}

// String returns the string representation of CreativeID
func (x CreativeID) String() string {
	return string(x)
}
