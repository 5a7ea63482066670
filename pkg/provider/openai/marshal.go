package openai

import (
	"encoding/json"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → OPENAI MESSAGES (OUTBOUND)

// messagesFromConversation converts a conversation to the OpenAI
// message format. Tool result messages are split so each carries
// exactly one tool_call_id.
func messagesFromConversation(conversation schema.Conversation) ([]openaiMessage, error) {
	messages := make([]openaiMessage, 0, len(conversation))
	for _, message := range conversation {
		if message == nil {
			continue
		}
		switch message.Role {
		case schema.RoleSystem:
			messages = append(messages, openaiMessage{
				Role:    roleSystem,
				Content: message.Text(),
			})
		case schema.RoleUser:
			messages = append(messages, openaiMessage{
				Role:    roleUser,
				Content: message.Text(),
			})
		case schema.RoleAssistant:
			messages = append(messages, assistantMessage(message))
		case schema.RoleToolResult:
			for _, result := range message.ToolResults() {
				messages = append(messages, openaiMessage{
					Role:       roleTool,
					Content:    string(result.Content),
					ToolCallID: result.ID,
				})
			}
		default:
			return nil, agent.ErrBadParameter.Withf("unsupported role: %q", message.Role)
		}
	}
	return messages, nil
}

// assistantMessage converts an assistant message, which may carry text,
// tool calls, or both
func assistantMessage(message *schema.Message) openaiMessage {
	result := openaiMessage{
		Role: roleAssistant,
	}
	if text := message.Text(); text != "" {
		result.Content = text
	}
	for _, call := range message.ToolCalls() {
		arguments := string(call.Input)
		if arguments == "" {
			arguments = "{}"
		}
		result.ToolCalls = append(result.ToolCalls, openaiToolCall{
			Id:   call.ID,
			Type: typeFunction,
			Function: openaiFunction{
				Name:      call.Name,
				Arguments: arguments,
			},
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// TOOL DEFINITIONS (OUTBOUND)

// toolsFromDefinitions converts tool definitions to the OpenAI format,
// with the input schema marshalled to raw JSON
func toolsFromDefinitions(definitions []schema.ToolDefinition) ([]toolDefinition, error) {
	tools := make([]toolDefinition, 0, len(definitions))
	for _, definition := range definitions {
		var parameters json.RawMessage
		if definition.InputSchema != nil {
			data, err := json.Marshal(definition.InputSchema)
			if err != nil {
				return nil, agent.ErrBadParameter.Withf("tool %q: %v", definition.Name, err)
			}
			parameters = data
		}
		tools = append(tools, toolDefinition{
			Type: typeFunction,
			Function: toolFunctionDef{
				Name:        definition.Name,
				Description: definition.Description,
				Parameters:  parameters,
			},
		})
	}
	return tools, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPENAI RESPONSE → MESSAGE (INBOUND)

// messageFromResponse converts the first choice of a chat completion
// response to an assistant message
func messageFromResponse(response *chatCompletionResponse) (*schema.Message, error) {
	if len(response.Choices) == 0 {
		return nil, agent.ErrProvider.With("response contains no choices")
	}
	choice := response.Choices[0]

	message := &schema.Message{
		Role: schema.RoleAssistant,
	}
	if text, ok := choice.Message.Content.(string); ok && text != "" {
		message.Content = append(message.Content, schema.ContentBlock{
			Text: types.Ptr(text),
		})
	}
	for _, call := range choice.Message.ToolCalls {
		input := json.RawMessage(call.Function.Arguments)
		if len(input) == 0 {
			input = json.RawMessage(`{}`)
		}
		message.Content = append(message.Content, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    call.Id,
				Name:  call.Function.Name,
				Input: input,
			},
		})
	}

	// Map the finish reason onto the result type
	switch {
	case len(choice.Message.ToolCalls) > 0:
		message.Result = schema.ResultToolCall
	case choice.FinishReason == finishReasonStop, choice.FinishReason == "":
		message.Result = schema.ResultStop
	default:
		message.Result = schema.ResultOther
	}

	return message, nil
}
