package openai

import (
	"encoding/json"
	"testing"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	assert "github.com/stretchr/testify/assert"
)

func Test_marshal_001(t *testing.T) {
	assert := assert.New(t)

	// System, user and assistant text messages map onto the wire roles
	conversation := schema.Conversation{
		schema.NewMessage(schema.RoleSystem, "be brief"),
		schema.NewMessage(schema.RoleUser, "hello"),
		schema.NewMessage(schema.RoleAssistant, "hi"),
	}
	messages, err := messagesFromConversation(conversation)
	assert.NoError(err)
	if !assert.Len(messages, 3) {
		t.FailNow()
	}
	assert.Equal(roleSystem, messages[0].Role)
	assert.Equal("be brief", messages[0].Content)
	assert.Equal(roleUser, messages[1].Role)
	assert.Equal(roleAssistant, messages[2].Role)
}

func Test_marshal_002(t *testing.T) {
	assert := assert.New(t)

	// An assistant tool call message carries the call id, name and
	// arguments as a JSON string
	conversation := schema.Conversation{
		schema.NewToolCallMessage(schema.ToolCall{
			ID:    "call_1",
			Name:  "weather",
			Input: json.RawMessage(`{"city":"Berlin"}`),
		}),
	}
	messages, err := messagesFromConversation(conversation)
	assert.NoError(err)
	if !assert.Len(messages, 1) {
		t.FailNow()
	}
	assert.Equal(roleAssistant, messages[0].Role)
	if assert.Len(messages[0].ToolCalls, 1) {
		assert.Equal("call_1", messages[0].ToolCalls[0].Id)
		assert.Equal(typeFunction, messages[0].ToolCalls[0].Type)
		assert.Equal("weather", messages[0].ToolCalls[0].Function.Name)
		assert.JSONEq(`{"city":"Berlin"}`, messages[0].ToolCalls[0].Function.Arguments)
	}
}

func Test_marshal_003(t *testing.T) {
	assert := assert.New(t)

	// A message with several tool results is split into one wire
	// message per tool_call_id
	message := schema.NewToolResult("call_1", "weather", "sunny")
	second := schema.NewToolResult("call_2", "weather", "rainy")
	message.Content = append(message.Content, second.Content...)

	messages, err := messagesFromConversation(schema.Conversation{message})
	assert.NoError(err)
	if !assert.Len(messages, 2) {
		t.FailNow()
	}
	assert.Equal(roleTool, messages[0].Role)
	assert.Equal("call_1", messages[0].ToolCallID)
	assert.Equal(`"sunny"`, messages[0].Content)
	assert.Equal("call_2", messages[1].ToolCallID)
}

func Test_marshal_004(t *testing.T) {
	assert := assert.New(t)

	// An unsupported role is rejected
	_, err := messagesFromConversation(schema.Conversation{
		{Role: "narrator"},
	})
	assert.ErrorIs(err, agent.ErrBadParameter)
}

func Test_marshal_005(t *testing.T) {
	assert := assert.New(t)

	// Tool definitions carry the JSON schema as raw parameters
	definitions := []schema.ToolDefinition{
		{
			Name:        "weather",
			Description: "Current weather for a city",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"city": {Type: "string"},
				},
				Required: []string{"city"},
			},
		},
	}
	tools, err := toolsFromDefinitions(definitions)
	assert.NoError(err)
	if !assert.Len(tools, 1) {
		t.FailNow()
	}
	assert.Equal(typeFunction, tools[0].Type)
	assert.Equal("weather", tools[0].Function.Name)
	assert.Contains(string(tools[0].Function.Parameters), `"city"`)
	assert.Contains(string(tools[0].Function.Parameters), `"required"`)
}

func Test_marshal_006(t *testing.T) {
	assert := assert.New(t)

	// A text response maps to an assistant message with a stop result
	response := &chatCompletionResponse{
		Choices: []chatChoice{{
			Message:      openaiMessage{Role: roleAssistant, Content: "hello"},
			FinishReason: finishReasonStop,
		}},
	}
	message, err := messageFromResponse(response)
	assert.NoError(err)
	assert.Equal(schema.RoleAssistant, message.Role)
	assert.Equal("hello", message.Text())
	assert.Equal(schema.ResultStop, message.Result)
}

func Test_marshal_007(t *testing.T) {
	assert := assert.New(t)

	// A tool call response preserves the call order and arguments
	response := &chatCompletionResponse{
		Choices: []chatChoice{{
			Message: openaiMessage{
				Role: roleAssistant,
				ToolCalls: []openaiToolCall{
					{Id: "call_1", Type: typeFunction, Function: openaiFunction{Name: "first", Arguments: `{"a":1}`}},
					{Id: "call_2", Type: typeFunction, Function: openaiFunction{Name: "second"}},
				},
			},
			FinishReason: finishReasonToolCalls,
		}},
	}
	message, err := messageFromResponse(response)
	assert.NoError(err)
	assert.Equal(schema.ResultToolCall, message.Result)

	calls := message.ToolCalls()
	if assert.Len(calls, 2) {
		assert.Equal("first", calls[0].Name)
		assert.JSONEq(`{"a":1}`, string(calls[0].Input))
		assert.Equal("second", calls[1].Name)
		assert.JSONEq(`{}`, string(calls[1].Input))
	}
}

func Test_marshal_008(t *testing.T) {
	assert := assert.New(t)

	// An empty choices array is a provider failure
	_, err := messageFromResponse(&chatCompletionResponse{})
	assert.ErrorIs(err, agent.ErrProvider)
}
