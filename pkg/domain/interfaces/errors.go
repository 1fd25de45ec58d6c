package interfaces

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by all repository backends. Callers match them
// with errors.Is regardless of which backend produced them.
var (
	ErrNotFound       = goerr.New("record not found")
	ErrAlreadyDecided = goerr.New("creative is already decided")
)
