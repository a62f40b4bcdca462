package schema

import (
	"encoding/json"
	"maps"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// InvokeRequest is one call to the remote agent orchestrator
type InvokeRequest struct {
	SessionId                string                  `json:"sessionId"`
	InputText                string                  `json:"inputText,omitempty"`
	Instruction              string                  `json:"instruction,omitempty"`
	FoundationModel          string                  `json:"foundationModel,omitempty"`
	EnableTrace              bool                    `json:"enableTrace"`
	ActionGroups             []ActionGroup           `json:"actionGroups,omitempty"`
	InlineSessionState       *SessionState           `json:"inlineSessionState,omitempty"`
	KnowledgeBases           []KnowledgeBase         `json:"knowledgeBases,omitempty"`
	GuardrailConfiguration   *GuardrailConfiguration `json:"guardrailConfiguration,omitempty"`
	CustomerEncryptionKeyArn string                  `json:"customerEncryptionKeyArn,omitempty"`

	// Opaque keys merged into the top level of the request body, overriding
	// keys already present
	AdvancedConfig map[string]any `json:"-"`
}

// SessionState carries results of local calls and uploaded files
type SessionState struct {
	InvocationId                   string             `json:"invocationId,omitempty"`
	ReturnControlInvocationResults []InvocationResult `json:"returnControlInvocationResults,omitempty"`
	Files                          []InputFile        `json:"files,omitempty"`
}

// InvocationResult wraps the result of one local call
type InvocationResult struct {
	FunctionResult *FunctionResult `json:"functionResult,omitempty"`
}

// FunctionResult is the serialized outcome of a local function
type FunctionResult struct {
	ActionGroup   string                 `json:"actionGroup"`
	Function      string                 `json:"function"`
	ResponseBody  map[string]ContentBody `json:"responseBody"`
	ResponseState string                 `json:"responseState,omitempty"`
}

// ContentBody holds a serialized body for one content type
type ContentBody struct {
	Body string `json:"body"`
}

// KnowledgeBase attaches a retrieval source to a request
type KnowledgeBase struct {
	KnowledgeBaseId        string         `json:"knowledgeBaseId"`
	Description            string         `json:"description,omitempty"`
	RetrievalConfiguration map[string]any `json:"retrievalConfiguration,omitempty"`
}

// GuardrailConfiguration attaches a guardrail to a request
type GuardrailConfiguration struct {
	GuardrailIdentifier string `json:"guardrailIdentifier"`
	GuardrailVersion    string `json:"guardrailVersion"`
}

// InvokeResponse is the undecoded reply of the remote agent orchestrator
type InvokeResponse struct {
	StopReason    StopReason     `json:"stopReason,omitempty"`
	Completion    string         `json:"completion,omitempty"`
	ReturnControl *ReturnControl `json:"returnControl,omitempty"`
	Files         []*OutputFile  `json:"files,omitempty"`
	Traces        []*Trace       `json:"traces,omitempty"`
	Error         *RemoteError   `json:"error,omitempty"`
}

// ReturnControl asks the client to run a local function
type ReturnControl struct {
	InvocationId     string            `json:"invocationId"`
	InvocationInputs []InvocationInput `json:"invocationInputs"`
}

// InvocationInput is one requested local call
type InvocationInput struct {
	FunctionInvocationInput *FunctionInvocationInput `json:"functionInvocationInput,omitempty"`
}

// FunctionInvocationInput names the function and its raw arguments
type FunctionInvocationInput struct {
	ActionGroup string          `json:"actionGroup"`
	Function    string          `json:"function"`
	Parameters  []FunctionParam `json:"parameters,omitempty"`
}

// FunctionParam is a raw argument as sent by the remote agent
type FunctionParam struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ContentTypeJSON = "application/json"
	StateFailure    = "FAILURE"
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r InvokeRequest) String() string {
	return types.Stringify(r)
}

func (r InvokeResponse) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r InvokeRequest) MarshalJSON() ([]byte, error) {
	type alias InvokeRequest
	data, err := json.Marshal(alias(r))
	if err != nil || len(r.AdvancedConfig) == 0 {
		return data, err
	}

	// Merge advanced configuration over the top level keys
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	maps.Copy(body, r.AdvancedConfig)
	return json.Marshal(body)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Args returns the raw arguments keyed by name
func (f *FunctionInvocationInput) Args() map[string]any {
	args := make(map[string]any, len(f.Parameters))
	for _, p := range f.Parameters {
		args[p.Name] = p.Value
	}
	return args
}

// NewFunctionResult returns a JSON body result. When failed is true the
// response state is set to FAILURE.
func NewFunctionResult(group, function, body string, failed bool) *FunctionResult {
	result := &FunctionResult{
		ActionGroup: group,
		Function:    function,
		ResponseBody: map[string]ContentBody{
			ContentTypeJSON: {Body: body},
		},
	}
	if failed {
		result.ResponseState = StateFailure
	}
	return result
}
