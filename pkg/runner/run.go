package runner

import (
	// Packages
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Run is one invocation of the loop for one user message. It owns its
// conversation for its lifetime and terminates in StateDone with a
// single text answer, or in StateFailed.
type Run struct {
	ID           string              `json:"id"`
	State        State               `json:"state"`
	Conversation schema.Conversation `json:"conversation"`

	answer string
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Answer returns the final text answer, which is empty unless the run
// terminated in StateDone
func (r *Run) Answer() string {
	return r.answer
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r *Run) String() string {
	return types.Stringify(r)
}
