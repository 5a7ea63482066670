package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	openai "github.com/mutablelogic/go-agent/pkg/provider/openai"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	client "github.com/mutablelogic/go-client"
	assert "github.com/stretchr/testify/assert"
)

func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	c, err := openai.New("test-key")
	assert.NoError(err)
	assert.NotNil(c)
	assert.Equal("openai", c.Name())
}

func Test_client_002(t *testing.T) {
	assert := assert.New(t)

	// A completion round trip against a compatible server
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/chat/completions", r.URL.Path)
		assert.Equal("Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": "it is sunny"},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
		}`))
	}))
	defer server.Close()

	c, err := openai.New("test-key", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	conversation := schema.Conversation{
		schema.NewMessage(schema.RoleUser, "what is the weather?"),
	}
	response, err := c.Complete(context.Background(), conversation,
		opt.Set(opt.ModelKey, "gpt-4o-mini"),
		opt.SetFloat64(opt.TemperatureKey, 0.5),
	)
	assert.NoError(err)
	assert.Equal("it is sunny", response.Text())
	assert.Equal(schema.ResultStop, response.Result)

	// The request carried the model, temperature and messages
	assert.Equal("gpt-4o-mini", received["model"])
	assert.Equal(0.5, received["temperature"])
	if messages, ok := received["messages"].([]any); assert.True(ok) {
		assert.Len(messages, 1)
	}
}

func Test_client_003(t *testing.T) {
	assert := assert.New(t)

	// The model option is required
	c, err := openai.New("test-key")
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = c.Complete(context.Background(), schema.Conversation{
		schema.NewMessage(schema.RoleUser, "hello"),
	})
	assert.ErrorIs(err, agent.ErrBadParameter)
}

func Test_client_004(t *testing.T) {
	assert := assert.New(t)

	// A server failure surfaces as a provider error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "model overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c, err := openai.New("test-key", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = c.Complete(context.Background(), schema.Conversation{
		schema.NewMessage(schema.RoleUser, "hello"),
	}, opt.Set(opt.ModelKey, "gpt-4o-mini"))
	assert.ErrorIs(err, agent.ErrProvider)
}

func Test_client_005(t *testing.T) {
	assert := assert.New(t)

	// Models are listed from the models endpoint
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"object": "list",
			"data": [
				{"id": "gpt-4o-mini", "object": "model", "owned_by": "openai"},
				{"id": "gpt-4o", "object": "model", "owned_by": "openai"}
			]
		}`))
	}))
	defer server.Close()

	c, err := openai.New("test-key", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}

	models, err := c.ListModels(context.Background())
	assert.NoError(err)
	if assert.Len(models, 2) {
		assert.Equal("gpt-4o-mini", models[0].Name)
		assert.Equal("openai", models[0].OwnedBy)
	}

	model, err := c.GetModel(context.Background(), "gpt-4o")
	assert.NoError(err)
	assert.Equal("gpt-4o", model.Name)

	_, err = c.GetModel(context.Background(), "missing")
	assert.ErrorIs(err, agent.ErrNotFound)
}
