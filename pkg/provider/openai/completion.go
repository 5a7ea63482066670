package openai

import (
	"context"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Complete sends the conversation to the chat completions endpoint and
// returns the assistant response. The model option is required.
func (c *Client) Complete(ctx context.Context, conversation schema.Conversation, opts ...opt.Opt) (*schema.Message, error) {
	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build request
	request, err := completionRequestFromOpts(conversation, options)
	if err != nil {
		return nil, err
	}
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Response
	var response chatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, agent.ErrProvider.Withf("%v", err)
	}

	// Return the first choice
	return messageFromResponse(&response)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// completionRequestFromOpts builds a chat completion request from the
// conversation and applied options
func completionRequestFromOpts(conversation schema.Conversation, options *opt.Opts) (*chatCompletionRequest, error) {
	model := options.GetString(opt.ModelKey)
	if model == "" {
		return nil, agent.ErrBadParameter.With("model is required")
	}

	messages, err := messagesFromConversation(conversation)
	if err != nil {
		return nil, err
	}

	request := &chatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	// Temperature
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}

	// Tool definitions
	if v := options.GetAny(opt.ToolsKey); v != nil {
		if definitions, ok := v.([]schema.ToolDefinition); ok && len(definitions) > 0 {
			tools, err := toolsFromDefinitions(definitions)
			if err != nil {
				return nil, err
			}
			request.Tools = tools
		}
	}

	return request, nil
}
