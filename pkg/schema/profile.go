package schema

import (
	"fmt"
	"os"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Profile describes an agent configuration which can be loaded from a
// YAML file: the model to use, the system prompt, sampling and loop
// parameters, and the tools the agent is allowed to use.
type Profile struct {
	Name          string   `json:"name" yaml:"name"`
	Model         string   `json:"model" yaml:"model"`
	SystemPrompt  string   `json:"system,omitempty" yaml:"system"`
	Temperature   *float64 `json:"temperature,omitempty" yaml:"temperature"`
	MaxIterations uint     `json:"max_iterations,omitempty" yaml:"max_iterations"`
	Tools         []string `json:"tools,omitempty" yaml:"tools"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadProfile reads and validates an agent profile from a YAML file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate checks the profile fields
func (p Profile) Validate() error {
	if !types.IsIdentifier(p.Name) {
		return fmt.Errorf("invalid profile name: %q", p.Name)
	}
	if p.Model == "" {
		return fmt.Errorf("profile %q: model is required", p.Name)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p Profile) String() string {
	return types.Stringify(p)
}
