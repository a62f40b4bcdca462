package opt

import (
	"strconv"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt sets an option for a single run of an agent
type Opt func(*opts) error

// set of options, keyed by name
type opts struct {
	values map[string][]string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SessionKey      = "session"
	MaxToolCallsKey = "max_tool_calls"
	VerbosityKey    = "verbosity"
	TraceLevelKey   = "trace_level"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{values: make(map[string][]string)}
	for _, opt := range o {
		if opt == nil {
			continue
		}
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	if values, ok := o.values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[len(values)-1])
	}
	return ""
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *opts) GetUint(key string) uint {
	if v, err := strconv.ParseUint(o.GetString(key), 10, 64); err == nil {
		return uint(v)
	}
	return 0
}

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Session returns the session identifier, or empty string
func (o *opts) Session() string {
	return o.GetString(SessionKey)
}

// MaxToolCalls returns the call budget and whether it was set
func (o *opts) MaxToolCalls() (uint, bool) {
	return o.GetUint(MaxToolCallsKey), o.Has(MaxToolCallsKey)
}

// Verbosity returns the verbosity and whether it was set
func (o *opts) Verbosity() (schema.Verbosity, bool) {
	if !o.Has(VerbosityKey) {
		return 0, false
	}
	v, err := schema.ParseVerbosity(o.GetString(VerbosityKey))
	return v, err == nil
}

// TraceLevel returns the trace level and whether it was set
func (o *opts) TraceLevel() (schema.TraceLevel, bool) {
	if !o.Has(TraceLevelKey) {
		return 0, false
	}
	l, err := schema.ParseTraceLevel(o.GetString(TraceLevelKey))
	return l, err == nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *opts) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *opts) error {
		for _, opt := range options {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithString sets a string value. A later value overrides an earlier one.
func WithString(key string, value string) Opt {
	return func(o *opts) error {
		o.values[key] = append(o.values[key], value)
		return nil
	}
}

// WithUint sets an unsigned value
func WithUint(key string, value uint) Opt {
	return WithString(key, strconv.FormatUint(uint64(value), 10))
}

// WithSession continues or creates the named session
func WithSession(session string) Opt {
	session = strings.TrimSpace(session)
	if session == "" {
		return Error(agentkit.ErrBadParameter.With("session is required"))
	}
	return WithString(SessionKey, session)
}

// WithMaxToolCalls sets the maximum number of local function calls in a run
func WithMaxToolCalls(n uint) Opt {
	return WithUint(MaxToolCallsKey, n)
}

// WithVerbosity sets the logging verbosity for a run
func WithVerbosity(v schema.Verbosity) Opt {
	return WithString(VerbosityKey, v.String())
}

// WithTraceLevel sets how much of the remote reasoning trace is shown
func WithTraceLevel(l schema.TraceLevel) Opt {
	return WithString(TraceLevelKey, l.String())
}
