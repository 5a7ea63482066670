package script_test

import (
	"context"
	"testing"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	script "github.com/mutablelogic/go-agent/pkg/provider/script"
	runner "github.com/mutablelogic/go-agent/pkg/runner"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	tool "github.com/mutablelogic/go-agent/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

func Test_script_001(t *testing.T) {
	assert := assert.New(t)

	// Responses are replayed in order, then the script is exhausted
	provider := script.New(
		script.Text("first"),
		script.Text("second"),
	)

	response, err := provider.Complete(context.Background(), nil)
	assert.NoError(err)
	assert.Equal("first", response.Text())

	response, err = provider.Complete(context.Background(), nil)
	assert.NoError(err)
	assert.Equal("second", response.Text())

	_, err = provider.Complete(context.Background(), nil)
	assert.ErrorIs(err, agent.ErrProvider)
	assert.Equal(3, provider.Calls())
}

func Test_script_002(t *testing.T) {
	assert := assert.New(t)

	// With repeat the last response is replayed forever
	provider := script.New(script.Text("again")).Repeat()
	for i := 0; i < 5; i++ {
		response, err := provider.Complete(context.Background(), nil)
		assert.NoError(err)
		assert.Equal("again", response.Text())
	}
	assert.Equal(5, provider.Calls())
}

func Test_script_003(t *testing.T) {
	assert := assert.New(t)

	// A scripted tool call carries a generated call identifier
	message := script.Call("lookup", map[string]any{"city": "Berlin"})
	calls := message.ToolCalls()
	if assert.Len(calls, 1) {
		assert.NotEmpty(calls[0].ID)
		assert.Equal("lookup", calls[0].Name)
		assert.JSONEq(`{"city":"Berlin"}`, string(calls[0].Input))
	}
}

func Test_script_004(t *testing.T) {
	assert := assert.New(t)

	// The provider lists a single model
	models, err := script.New().ListModels(context.Background())
	assert.NoError(err)
	if assert.Len(models, 1) {
		assert.Equal("script", models[0].Name)
	}
	assert.Equal("script", script.New().Name())
}

func Test_script_005(t *testing.T) {
	assert := assert.New(t)

	// A scripted provider drives the loop end to end
	type echoRequest struct {
		Text string `json:"text"`
	}
	echo, err := tool.NewFuncFor("echo", "Echo the text back", func(_ context.Context, req echoRequest) (any, error) {
		return "done: " + req.Text, nil
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	toolkit, err := tool.NewToolkit(echo)
	if !assert.NoError(err) {
		t.FailNow()
	}

	provider := script.New(
		script.Call("echo", echoRequest{Text: "hi"}),
		script.Text("done: hi"),
	)
	r, err := runner.New(provider, runner.WithToolkit(toolkit))
	if !assert.NoError(err) {
		t.FailNow()
	}

	run, err := r.Run(context.Background(), "echo hi")
	assert.NoError(err)
	assert.Equal(runner.StateDone, run.State)
	assert.Equal("done: hi", run.Answer())
	if assert.Len(run.Conversation, 4) {
		assert.Equal(schema.RoleToolResult, run.Conversation[2].Role)
	}
}
