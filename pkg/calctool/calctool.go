/*
calctool provides arithmetic tools for the model to call. The tools are
self-contained and useful for exercising the loop without network access.
*/
package calctool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	tool "github.com/mutablelogic/go-agent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type add struct{}

type multiply struct{}

// AddRequest is the input for the add tool
type AddRequest struct {
	A float64 `json:"a" jsonschema:"the first number"`
	B float64 `json:"b" jsonschema:"the second number"`
}

// MultiplyRequest is the input for the multiply tool
type MultiplyRequest struct {
	A float64 `json:"a" jsonschema:"the first number"`
	B float64 `json:"b" jsonschema:"the second number"`
}

var _ tool.Tool = (*add)(nil)
var _ tool.Tool = (*multiply)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewTools() []tool.Tool {
	return []tool.Tool{
		&add{},
		&multiply{},
	}
}

///////////////////////////////////////////////////////////////////////////////
// ADD

func (*add) Name() string {
	return "calc_add"
}

func (*add) Description() string {
	return "Add two numbers together and return the sum."
}

func (*add) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[AddRequest](nil)
}

func (*add) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req AddRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	return req.A + req.B, nil
}

///////////////////////////////////////////////////////////////////////////////
// MULTIPLY

func (*multiply) Name() string {
	return "calc_multiply"
}

func (*multiply) Description() string {
	return "Multiply two numbers together and return the product."
}

func (*multiply) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[MultiplyRequest](nil)
}

func (*multiply) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req MultiplyRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	return req.A * req.B, nil
}
