package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Represents a model offered by a provider
type Model struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	OwnedBy     string   `json:"owned_by,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	return types.Stringify(m)
}
