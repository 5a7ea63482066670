package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is an ordered sequence of messages exchanged with a
// model. It is append-only: messages are never removed or reordered,
// and a leading system message stays in place for the life of the
// conversation.
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds messages to the end of the conversation
func (c *Conversation) Append(messages ...*Message) {
	*c = append(*c, messages...)
}

// Copy returns a snapshot of the conversation which can be extended
// without affecting the original
func (c Conversation) Copy() Conversation {
	result := make(Conversation, len(c))
	copy(result, c)
	return result
}

// System returns the leading system message, or nil if the
// conversation does not start with one
func (c Conversation) System() *Message {
	if len(c) > 0 && c[0].Role == RoleSystem {
		return c[0]
	}
	return nil
}

// Last returns the most recent message, or nil if the conversation is empty
func (c Conversation) Last() *Message {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conversation) String() string {
	return types.Stringify(c)
}
