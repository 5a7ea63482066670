package tool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	agent "github.com/mutablelogic/go-agent"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Func adapts a plain function into a Tool. The name, description and
// input schema are declared explicitly at registration time; no
// runtime introspection of the function signature takes place.
type Func struct {
	name        string
	description string
	schema      *jsonschema.Schema
	fn          func(ctx context.Context, input json.RawMessage) (any, error)
}

var _ Tool = (*Func)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFunc creates a tool from a name, description, input schema and
// handler. The schema may be nil for tools which take no arguments.
func NewFunc(name, description string, schema *jsonschema.Schema, fn func(ctx context.Context, input json.RawMessage) (any, error)) (*Func, error) {
	if fn == nil {
		return nil, agent.ErrBadParameter.Withf("tool %q: handler cannot be nil", name)
	}
	return &Func{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}, nil
}

// NewFuncFor creates a tool whose input schema is derived from the
// request type T, and whose handler receives the decoded request.
func NewFuncFor[T any](name, description string, fn func(ctx context.Context, req T) (any, error)) (*Func, error) {
	schema, err := jsonschema.For[T](nil)
	if err != nil {
		return nil, agent.ErrBadParameter.Withf("tool %q: %v", name, err)
	}
	return NewFunc(name, description, schema, func(ctx context.Context, input json.RawMessage) (any, error) {
		var req T
		if len(input) > 0 {
			if err := json.Unmarshal(input, &req); err != nil {
				return nil, agent.ErrBadParameter.Withf("tool %q: %v", name, err)
			}
		}
		return fn(ctx, req)
	})
}

///////////////////////////////////////////////////////////////////////////////
// TOOL INTERFACE

func (t *Func) Name() string {
	return t.name
}

func (t *Func) Description() string {
	return t.description
}

func (t *Func) Schema() (*jsonschema.Schema, error) {
	return t.schema, nil
}

func (t *Func) Run(ctx context.Context, input json.RawMessage) (any, error) {
	return t.fn(ctx, input)
}
