package runner

import (
	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	tool "github.com/mutablelogic/go-agent/pkg/tool"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a runner, or a single run
type Opt func(*options) error

type options struct {
	toolkit       *tool.Toolkit
	hooks         Hooks
	model         string
	systemPrompt  string
	temperature   *float64
	maxIterations uint
	conversation  schema.Conversation
	tracer        trace.Tracer
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultMaxIterations is the default cap on tool-call round trips
	// within a single run
	DefaultMaxIterations = 10
)

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithToolkit sets the toolkit used to execute tool calls
func WithToolkit(toolkit *tool.Toolkit) Opt {
	return func(o *options) error {
		if toolkit == nil {
			return agent.ErrBadParameter.With("toolkit is required")
		}
		o.toolkit = toolkit
		return nil
	}
}

// WithHook appends a tool execution observer
func WithHook(hook Hook) Opt {
	return func(o *options) error {
		if hook == nil {
			return agent.ErrBadParameter.With("hook is required")
		}
		o.hooks = append(o.hooks, hook)
		return nil
	}
}

// WithModel sets the model name passed to the completer
func WithModel(model string) Opt {
	return func(o *options) error {
		o.model = model
		return nil
	}
}

// WithSystemPrompt seeds new conversations with a system message
func WithSystemPrompt(prompt string) Opt {
	return func(o *options) error {
		o.systemPrompt = prompt
		return nil
	}
}

// WithTemperature sets the sampling temperature passed to the completer
func WithTemperature(temperature float64) Opt {
	return func(o *options) error {
		if temperature < 0 {
			return agent.ErrBadParameter.Withf("invalid temperature: %v", temperature)
		}
		o.temperature = &temperature
		return nil
	}
}

// WithMaxIterations caps the number of tool-call round trips in a run
func WithMaxIterations(n uint) Opt {
	return func(o *options) error {
		if n == 0 {
			return agent.ErrBadParameter.With("max iterations cannot be zero")
		}
		o.maxIterations = n
		return nil
	}
}

// WithConversation continues a prior conversation instead of starting
// a new one. The run appends to its own copy; the prior conversation
// is not modified.
func WithConversation(conversation schema.Conversation) Opt {
	return func(o *options) error {
		o.conversation = conversation
		return nil
	}
}

// WithTracer enables tracing spans around model calls and tool execution
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}
