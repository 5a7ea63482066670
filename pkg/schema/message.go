package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message represents a single entry in a conversation. Messages are
// immutable once appended to a conversation.
type Message struct {
	Role    string         `json:"role"`             // "system", "user", "assistant", "tool_result"
	Content []ContentBlock `json:"content"`          // Array of content blocks
	Result  ResultType     `json:"result,omitempty"` // How the message was produced
	Meta    map[string]any `json:"meta,omitempty"`   // Provider-specific metadata
}

// ContentBlock represents a single piece of content within a message.
// Exactly one of the fields should be non-nil.
type ContentBlock struct {
	Text       *string     `json:"text,omitempty"`        // Text content
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`   // Tool invocation (assistant → user)
	ToolResult *ToolResult `json:"tool_result,omitempty"` // Tool response (user → assistant)
}

// ToolCall represents a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id,omitempty"`    // Provider-assigned call ID
	Name  string          `json:"name"`            // Tool name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolResult represents the result of running a tool
type ToolResult struct {
	ID      string          `json:"id,omitempty"`      // Matches the ToolCall ID
	Name    string          `json:"name,omitempty"`    // Tool name
	Content json.RawMessage `json:"content,omitempty"` // JSON-encoded result
	IsError bool            `json:"is_error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleSystem     = "system"
	RoleUser       = "user"
	RoleAssistant  = "assistant"
	RoleToolResult = "tool_result"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage creates a message with the given role and text content
func NewMessage(role, text string) *Message {
	return &Message{
		Role: role,
		Content: []ContentBlock{
			{Text: types.Ptr(text)},
		},
	}
}

// NewToolCallMessage creates an assistant message recording one or more
// tool call requests
func NewToolCallMessage(calls ...ToolCall) *Message {
	blocks := make([]ContentBlock, 0, len(calls))
	for i := range calls {
		blocks = append(blocks, ContentBlock{ToolCall: &calls[i]})
	}
	return &Message{
		Role:    RoleAssistant,
		Content: blocks,
		Result:  ResultToolCall,
	}
}

// NewToolResult creates a tool_result message containing a successful
// tool result. The value is JSON-encoded.
func NewToolResult(id, name string, v any) *Message {
	data, err := json.Marshal(v)
	if err != nil {
		return NewToolError(id, name, err)
	}
	return &Message{
		Role: RoleToolResult,
		Content: []ContentBlock{
			{ToolResult: &ToolResult{ID: id, Name: name, Content: json.RawMessage(data)}},
		},
	}
}

// NewToolError creates a tool_result message containing a tool error
func NewToolError(id, name string, err error) *Message {
	return &Message{
		Role: RoleToolResult,
		Content: []ContentBlock{
			{ToolResult: &ToolResult{
				ID:      id,
				Name:    name,
				Content: json.RawMessage(fmt.Sprintf("%q", err.Error())),
				IsError: true,
			}},
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the concatenated text content from all text blocks in the message
func (m Message) Text() string {
	var result []string
	for _, block := range m.Content {
		if block.Text != nil {
			result = append(result, *block.Text)
		}
	}
	return strings.Join(result, "\n")
}

// ToolCalls returns all tool call blocks in the message, in order
func (m Message) ToolCalls() []ToolCall {
	var result []ToolCall
	for _, block := range m.Content {
		if block.ToolCall != nil {
			result = append(result, *block.ToolCall)
		}
	}
	return result
}

// ToolResults returns all tool result blocks in the message, in order
func (m Message) ToolResults() []ToolResult {
	var result []ToolResult
	for _, block := range m.Content {
		if block.ToolResult != nil {
			result = append(result, *block.ToolResult)
		}
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}

func (c ToolCall) String() string {
	return types.Stringify(c)
}

func (r ToolResult) String() string {
	return types.Stringify(r)
}
