/*
agent provides the building blocks for a tool-calling agent loop: a
catalog of schema-described tools (pkg/tool), a runner which alternates
between asking a model for the next action and executing the tool it
requested (pkg/runner), and clients for model providers (pkg/provider).
The root package defines the interfaces which tie these together.
*/
package agent

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Completer is the model call boundary. It receives a snapshot of the
// conversation and returns the next assistant message, which either
// carries the final text or one or more tool call requests. Tool
// definitions, the model name and sampling parameters are passed
// through options.
type Completer interface {
	Complete(context.Context, schema.Conversation, ...opt.Opt) (*schema.Message, error)
}

// Client is a connection to a model provider
type Client interface {
	// Return the name of the provider
	Name() string

	// Return the models offered by the provider
	ListModels(context.Context) ([]schema.Model, error)
}
