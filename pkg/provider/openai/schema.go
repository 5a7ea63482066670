package openai

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - OpenAI REST API wire format
//
// Reference: https://platform.openai.com/docs/api-reference/chat/create
//            https://platform.openai.com/docs/api-reference/models

///////////////////////////////////////////////////////////////////////////////
// CHAT COMPLETIONS — REQUEST

// chatCompletionRequest is the request body for POST /v1/chat/completions.
type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []openaiMessage  `json:"messages"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   *int             `json:"max_completion_tokens,omitempty"`
	Stop        []string         `json:"stop,omitempty"`
	Seed        *uint            `json:"seed,omitempty"`
	Tools       []toolDefinition `json:"tools,omitempty"`
	ToolChoice  any              `json:"tool_choice,omitempty"`
	User        string           `json:"user,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// CHAT COMPLETIONS — RESPONSE

// chatCompletionResponse is the response body from POST /v1/chat/completions
// (non-streaming).
type chatCompletionResponse struct {
	Id      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

// chatChoice is one element of the choices array.
type chatChoice struct {
	Index        int           `json:"index"`
	Message      openaiMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// chatUsage reports token counts for a chat completion request.
type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

///////////////////////////////////////////////////////////////////////////////
// MESSAGES

// openaiMessage represents a single turn in a conversation. For
// user/system roles the Content field is a plain string; for assistant
// roles it may include ToolCalls. Tool-result messages carry the
// ToolCallID to correlate with the original call.
type openaiMessage struct {
	Role       string           `json:"role"`
	Content    any              `json:"content,omitempty"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`   // assistant only
	ToolCallID string           `json:"tool_call_id,omitempty"` // tool role only
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CALLS

// openaiToolCall represents a tool invocation in an assistant message.
type openaiToolCall struct {
	Id       string         `json:"id"`
	Type     string         `json:"type"` // always "function"
	Function openaiFunction `json:"function"`
}

// openaiFunction carries the function name and JSON-encoded arguments
// within a tool call.
type openaiFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

///////////////////////////////////////////////////////////////////////////////
// TOOL DEFINITIONS

// toolDefinition describes a tool the model may call.
type toolDefinition struct {
	Type     string          `json:"type"` // always "function"
	Function toolFunctionDef `json:"function"`
}

// toolFunctionDef describes the function signature for a tool definition.
type toolFunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"` // JSON Schema
}

///////////////////////////////////////////////////////////////////////////////
// MODELS

// model represents a model from GET /v1/models
type model struct {
	Id      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// listModelsResponse is the response from GET /v1/models
type listModelsResponse struct {
	Object string  `json:"object"`
	Data   []model `json:"data"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
	roleTool      = "tool"
)

const (
	typeFunction = "function"
)

const (
	finishReasonStop          = "stop"
	finishReasonToolCalls     = "tool_calls"
	finishReasonLength        = "length"
	finishReasonContentFilter = "content_filter"
)
