package runner

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-agent/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Hook observes tool execution within a run. Hooks cannot alter the
// call or its result; they are invoked synchronously, before and after
// each tool call, in the order they were registered.
type Hook interface {
	OnBeforeCall(ctx context.Context, call schema.ToolCall)
	OnAfterCall(ctx context.Context, call schema.ToolCall, result *schema.ToolResult)
}

// Hooks is a helper slice that invokes hooks sequentially
type Hooks []Hook

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (hooks Hooks) RunBefore(ctx context.Context, call schema.ToolCall) {
	for _, hook := range hooks {
		hook.OnBeforeCall(ctx, call)
	}
}

func (hooks Hooks) RunAfter(ctx context.Context, call schema.ToolCall, result *schema.ToolResult) {
	for _, hook := range hooks {
		hook.OnAfterCall(ctx, call, result)
	}
}
