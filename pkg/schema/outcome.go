package schema

import (
	"fmt"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Outcome is a decoded response of the remote agent. Exactly one of Text,
// Call or Err is meaningful, according to Stop.
type Outcome struct {
	Stop   StopReason    `json:"stop"`
	Text   string        `json:"text,omitempty"`
	Files  []*OutputFile `json:"files,omitempty"`
	Call   *FunctionCall `json:"call,omitempty"`
	Err    *RemoteError  `json:"error,omitempty"`
	Traces []*Trace      `json:"traces,omitempty"`
}

// FunctionCall is a request from the remote agent to run a local function.
// Arguments are the raw values as received.
type FunctionCall struct {
	InvocationId string         `json:"invocationId"`
	ActionGroup  string         `json:"actionGroup"`
	Function     string         `json:"function"`
	Arguments    map[string]any `json:"arguments"`
}

// RemoteError is a failure reported by, or decoding, the remote agent
type RemoteError struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrKindMalformed = "malformed"
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o Outcome) String() string {
	return types.Stringify(o)
}

func (c FunctionCall) String() string {
	return types.Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e *RemoteError) Error() string {
	switch {
	case e.Kind != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Kind != "":
		return e.Kind
	case e.Message != "":
		return e.Message
	default:
		return "unknown remote error"
	}
}
