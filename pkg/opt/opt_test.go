package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-agent/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.AddString("key", "value1", "value2"))
	assert.NoError(err)
	assert.Equal([]string{"value1", "value2"}, opts.GetStringArray("key"))
	assert.Equal("value1", opts.GetString("key"))
	query := opts.Query("key")
	assert.Equal([]string{"value1", "value2"}, query["key"])
}

func TestUintOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetUint("limit", 10))
	assert.NoError(err)
	assert.Equal(uint(10), opts.GetUint("limit"))
	assert.Equal("10", opts.Query("limit").Get("limit"))
}

func TestFloatOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetFloat64(opt.TemperatureKey, 1.5))
	assert.NoError(err)
	assert.InDelta(1.5, opts.GetFloat64(opt.TemperatureKey), 1e-9)
}

func TestBoolOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.SetBool("flag", true))
	assert.NoError(err)
	assert.True(opts.GetBool("flag"))
}

func TestAnyStoredAndRetrieved(t *testing.T) {
	assert := assert.New(t)
	value := struct{ Name string }{"toolkit"}
	opts, err := opt.Apply(opt.SetAny(opt.ToolsKey, value))
	assert.NoError(err)
	assert.Equal(value, opts.GetAny(opt.ToolsKey))
	assert.True(opts.Has(opt.ToolsKey))
	// arbitrary values should not appear in string queries
	assert.Empty(opts.Query(opt.ToolsKey).Get(opt.ToolsKey))
}

func TestErrorOption(t *testing.T) {
	assert := assert.New(t)
	boom := errors.New("boom")
	_, err := opt.Apply(opt.NoOp(), opt.Error(boom))
	assert.ErrorIs(err, boom)
}
