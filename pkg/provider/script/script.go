// Package script implements a completer which replays a fixed sequence
// of responses. It has no network dependencies, which makes it useful
// for demonstrations and for driving the loop in tests.
package script

import (
	"context"
	"encoding/json"
	"sync"

	// Packages
	uuid "github.com/google/uuid"
	agent "github.com/mutablelogic/go-agent"
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Provider replays scripted responses in order, one per Complete call
type Provider struct {
	sync.Mutex
	responses []*schema.Message
	repeat    bool
	calls     int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultName = "script"
)

// Ensure the interfaces are satisfied
var _ agent.Completer = (*Provider)(nil)
var _ agent.Client = (*Provider)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a provider which replays the given responses in order
func New(responses ...*schema.Message) *Provider {
	return &Provider{
		responses: responses,
	}
}

// Repeat makes the provider replay its last response forever instead
// of running out
func (p *Provider) Repeat() *Provider {
	p.Lock()
	defer p.Unlock()
	p.repeat = true
	return p
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns a scripted assistant text response
func Text(text string) *schema.Message {
	return schema.NewMessage(schema.RoleAssistant, text)
}

// Call returns a scripted response requesting a single tool call, with
// the arguments marshalled to JSON and a generated call identifier
func Call(name string, args any) *schema.Message {
	input, err := json.Marshal(args)
	if err != nil {
		input = json.RawMessage(`{}`)
	}
	return schema.NewToolCallMessage(schema.ToolCall{
		ID:    uuid.New().String(),
		Name:  name,
		Input: input,
	})
}

// Calls returns the number of times Complete has been invoked
func (p *Provider) Calls() int {
	p.Lock()
	defer p.Unlock()
	return p.calls
}

func (p *Provider) Name() string {
	return defaultName
}

// ListModels returns the single scripted model
func (p *Provider) ListModels(ctx context.Context) ([]schema.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []schema.Model{
		{Name: defaultName, Description: "Replays scripted responses", OwnedBy: "local"},
	}, nil
}

// Complete returns the next scripted response. The conversation and
// options are accepted and ignored.
func (p *Provider) Complete(ctx context.Context, _ schema.Conversation, _ ...opt.Opt) (*schema.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.Lock()
	defer p.Unlock()
	p.calls++
	if len(p.responses) == 0 {
		return nil, agent.ErrProvider.With("script exhausted")
	}
	response := p.responses[0]
	if !p.repeat || len(p.responses) > 1 {
		p.responses = p.responses[1:]
	}
	return response, nil
}
