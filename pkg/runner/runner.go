package runner

import (
	"context"
	"errors"

	// Packages
	uuid "github.com/google/uuid"
	agent "github.com/mutablelogic/go-agent"
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Runner drives the tool-calling loop: it sends the conversation and
// the tool definitions to the completer, executes any tool calls the
// model requests, feeds the results back, and repeats until the model
// produces a final text answer or the iteration cap is reached.
// A runner is immutable after creation and can serve concurrent runs;
// each run owns its own conversation.
type Runner struct {
	completer agent.Completer
	options
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a runner for the given completer
func New(completer agent.Completer, opts ...Opt) (*Runner, error) {
	if completer == nil {
		return nil, agent.ErrBadParameter.With("completer is required")
	}

	r := &Runner{
		completer: completer,
	}
	r.maxIterations = DefaultMaxIterations
	for _, opt := range opts {
		if err := opt(&r.options); err != nil {
			return nil, err
		}
	}

	// Return success
	return r, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run processes one user message and returns the completed run. The
// returned run is also populated when an error is returned, with its
// state set to StateFailed and its conversation as it stood.
func (r *Runner) Run(ctx context.Context, text string, opts ...Opt) (*Run, error) {
	// Overlay per-run options onto the runner configuration
	o := r.options
	o.hooks = append(Hooks(nil), o.hooks...)
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	// Create the run, seeding the conversation with the prior
	// conversation or an optional system message, then the user message
	run := &Run{
		ID:    uuid.New().String(),
		State: StateAwaitingModel,
	}
	if o.conversation != nil {
		run.Conversation = o.conversation.Copy()
	} else if o.systemPrompt != "" {
		run.Conversation.Append(schema.NewMessage(schema.RoleSystem, o.systemPrompt))
	}
	run.Conversation.Append(schema.NewMessage(schema.RoleUser, text))

	// Assemble the completion options
	copts, err := o.completionOpts()
	if err != nil {
		run.State = StateFailed
		return run, err
	}

	// The loop: one model response per cycle, at most maxIterations
	// tool-call round trips
	for iter := uint(0); iter < o.maxIterations; iter++ {
		// The caller may abandon the run between cycles
		if err := ctx.Err(); err != nil {
			run.State = StateFailed
			return run, agent.ErrCancelled.Withf("%v", err)
		}

		// Ask the model for the next action
		response, err := r.complete(ctx, run.Conversation.Copy(), copts...)
		if err != nil {
			run.State = StateFailed
			return run, err
		}
		run.Conversation.Append(response)

		// A response without tool calls is the final answer
		calls := response.ToolCalls()
		if len(calls) == 0 {
			run.State = StateDone
			run.answer = response.Text()
			return run, nil
		}

		// Execute the requested tools in order, appending one result
		// message per call before the next model call
		run.State = StateExecutingTool
		for _, call := range calls {
			result, err := r.execute(ctx, &o, call)
			if err != nil {
				run.State = StateFailed
				return run, err
			}
			run.Conversation.Append(result)
		}
		run.State = StateAwaitingModel
	}

	// The model requested tools on every cycle
	run.State = StateFailed
	return run, agent.ErrMaxIterations.Withf("exceeded %d iterations", o.maxIterations)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// completionOpts converts the run configuration into options for the completer
func (o *options) completionOpts() ([]opt.Opt, error) {
	var copts []opt.Opt
	if o.model != "" {
		copts = append(copts, opt.Set(opt.ModelKey, o.model))
	}
	if o.temperature != nil {
		copts = append(copts, opt.SetFloat64(opt.TemperatureKey, *o.temperature))
	}
	if o.toolkit != nil {
		definitions, err := o.toolkit.Definitions()
		if err != nil {
			return nil, err
		}
		copts = append(copts, opt.SetAny(opt.ToolsKey, definitions))
	}
	return copts, nil
}

// complete invokes the model call boundary with a conversation snapshot
func (r *Runner) complete(ctx context.Context, conversation schema.Conversation, copts ...opt.Opt) (response *schema.Message, err error) {
	ctx, endSpan := otel.StartSpan(r.tracer, ctx, "Complete",
		attribute.Int("messages", len(conversation)),
	)
	defer func() { endSpan(err) }()

	response, err = r.completer.Complete(ctx, conversation, copts...)
	if err == nil {
		return response, nil
	}

	// Failures of the boundary are opaque; a cancellation mid-call is
	// reported as such
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, agent.ErrCancelled.Withf("%v", err)
	case errors.Is(err, agent.ErrProvider):
		return nil, err
	default:
		return nil, agent.ErrProvider.Withf("%v", err)
	}
}

// execute runs one tool call and returns the tool_result message to
// append. A handler failure is fed back to the model as an error
// result; an unknown tool or invalid arguments fail the run, since
// they indicate a contract mismatch between the catalog and the model.
func (r *Runner) execute(ctx context.Context, o *options, call schema.ToolCall) (message *schema.Message, err error) {
	ctx, endSpan := otel.StartSpan(r.tracer, ctx, "RunTool",
		attribute.String("tool", call.Name),
	)
	defer func() { endSpan(err) }()

	if o.toolkit == nil {
		return nil, agent.ErrNotFound.Withf("tool not found: %q", call.Name)
	}

	o.hooks.RunBefore(ctx, call)
	value, err := o.toolkit.Run(ctx, call.Name, call.Input)
	if err != nil {
		if errors.Is(err, agent.ErrNotFound) || errors.Is(err, agent.ErrBadParameter) {
			return nil, err
		}
		message = schema.NewToolError(call.ID, call.Name, err)
		err = nil
	} else {
		message = schema.NewToolResult(call.ID, call.Name, value)
	}

	results := message.ToolResults()
	o.hooks.RunAfter(ctx, call, &results[0])
	return message, nil
}
