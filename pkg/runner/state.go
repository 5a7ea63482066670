package runner

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The state of a run
type State uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	StateAwaitingModel State = iota // Waiting for the next model response
	StateExecutingTool              // Executing a requested tool call
	StateDone                       // Final answer produced
	StateFailed                     // Run terminated with an error
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s State) String() string {
	switch s {
	case StateAwaitingModel:
		return "awaiting_model"
	case StateExecutingTool:
		return "executing_tool"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
