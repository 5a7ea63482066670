package tool

import (
	"context"
	"encoding/json"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is a catalog of tools with unique names. Registration
// happens at startup; after that the toolkit is read-only and safe for
// concurrent dispatch across runs. Tools are presented in registration
// order, since some models are sensitive to tool ordering.
type Toolkit struct {
	tools map[string]Tool
	names []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Register adds one or more tools to the toolkit. Returns an error if
// any tool is nil or has an invalid or duplicate name; tools registered
// before the failing one are retained.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		if t == nil {
			return agent.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return agent.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return agent.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
		tk.names = append(tk.names, name)
	}
	return nil
}

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.names))
	for _, name := range tk.names {
		result = append(result, tk.tools[name])
	}
	return result
}

// Definitions returns the definitions sent to the model alongside the
// conversation, in registration order
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	result := make([]schema.ToolDefinition, 0, len(tk.names))
	for _, name := range tk.names {
		t := tk.tools[name]
		s, err := t.Schema()
		if err != nil {
			return nil, agent.ErrBadParameter.Withf("tool %q: schema generation failed: %v", name, err)
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input. Returns an error
// if the tool is not found, the input does not match the schema, or
// the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, agent.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Validate input against the schema, if the tool declares one. An
	// absent input is validated as an empty argument set, so missing
	// required arguments are still caught.
	s, err := tool.Schema()
	if err != nil {
		return nil, agent.ErrBadParameter.Withf("schema generation failed: %v", err)
	}
	if s != nil {
		mapInput := make(map[string]any)
		if len(input) > 0 {
			if err := json.Unmarshal(input, &mapInput); err != nil {
				return nil, agent.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
			}
		}

		resolved, err := s.Resolve(nil)
		if err != nil {
			return nil, agent.ErrBadParameter.Withf("schema resolution failed: %v", err)
		}
		if err := resolved.Validate(mapInput); err != nil {
			return nil, agent.ErrBadParameter.Withf("input validation failed: %v", err)
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, input)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return types.Stringify(tk.Tools())
}
