package schema_test

import (
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func Test_conversation_001(t *testing.T) {
	assert := assert.New(t)

	var conv schema.Conversation
	assert.Nil(conv.System())
	assert.Nil(conv.Last())

	conv.Append(schema.NewMessage(schema.RoleSystem, "be terse"))
	conv.Append(schema.NewMessage(schema.RoleUser, "hello"))

	assert.Len(conv, 2)
	assert.NotNil(conv.System())
	assert.Equal("be terse", conv.System().Text())
	assert.Equal(schema.RoleUser, conv.Last().Role)
}

func Test_conversation_002(t *testing.T) {
	assert := assert.New(t)

	// No leading system message
	var conv schema.Conversation
	conv.Append(schema.NewMessage(schema.RoleUser, "hello"))
	assert.Nil(conv.System())
}

func Test_conversation_003(t *testing.T) {
	assert := assert.New(t)

	// Appending to a copy does not affect the original
	var conv schema.Conversation
	conv.Append(schema.NewMessage(schema.RoleUser, "one"))

	snapshot := conv.Copy()
	snapshot.Append(schema.NewMessage(schema.RoleAssistant, "two"))

	assert.Len(conv, 1)
	assert.Len(snapshot, 2)
	assert.Same(conv[0], snapshot[0])
}
