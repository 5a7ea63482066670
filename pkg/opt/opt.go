package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set options on a completion request
type Opt func(*Opts) error

// set of options: string values plus arbitrary typed values
type Opts struct {
	url.Values
	any map[string]any
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys
const (
	// Model name for a completion request (string)
	ModelKey = "model"

	// Sampling temperature for a completion request (float64)
	TemperatureKey = "temperature"

	// Tool definitions for a completion request ([]schema.ToolDefinition)
	ToolsKey = "tools"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*Opts, error) {
	opts := &Opts{Values: make(url.Values), any: make(map[string]any)}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (o *Opts) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *Opts) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetStringArray returns all values for key, each trimmed
func (o *Opts) GetStringArray(key string) []string {
	values, ok := o.Values[key]
	if !ok {
		return nil
	}
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = strings.TrimSpace(v)
	}
	return result
}

// GetBool returns true if key is present, false if absent
func (o *Opts) GetBool(key string) bool {
	_, ok := o.Values[key]
	return ok
}

// GetFloat64 returns the float64 value for key, or 0 if not set or invalid
func (o *Opts) GetFloat64(key string) float64 {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseFloat(strings.TrimSpace(values[0]), 64); err == nil {
			return v
		}
	}
	return 0
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *Opts) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// GetAny returns the arbitrary typed value for key, or nil if not set
func (o *Opts) GetAny(key string) any {
	return o.any[key]
}

// Has returns true if the key exists
func (o *Opts) Has(key string) bool {
	if _, ok := o.Values[key]; ok {
		return true
	}
	_, ok := o.any[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *Opts) error {
		return err
	}
}

// NoOp returns an option which does nothing
func NoOp() Opt {
	return func(o *Opts) error {
		return nil
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *Opts) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// Set replaces the value for key
func Set(key, value string) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, value)
		return nil
	}
}

// AddString appends one or more values for key
func AddString(key string, value ...string) Opt {
	return func(o *Opts) error {
		for _, v := range value {
			o.Values.Add(key, v)
		}
		return nil
	}
}

// SetUint sets the value for key from a uint
func SetUint(key string, value uint) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, fmt.Sprintf("%d", value))
		return nil
	}
}

// SetFloat64 sets the value for key from a float64
func SetFloat64(key string, value float64) Opt {
	return func(o *Opts) error {
		o.Values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}
}

// SetBool sets or clears a boolean flag for key
func SetBool(key string, value bool) Opt {
	return func(o *Opts) error {
		if value {
			o.Values.Set(key, "true")
		} else {
			o.Values.Del(key)
		}
		return nil
	}
}

// SetAny stores an arbitrary typed value for key
func SetAny(key string, value any) Opt {
	return func(o *Opts) error {
		o.any[key] = value
		return nil
	}
}
