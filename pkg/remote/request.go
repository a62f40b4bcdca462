package remote

import (
	"maps"

	// Packages
	agent "github.com/mutablelogic/go-agentkit/pkg/agent"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewInputRequest returns the first request of a run, carrying the user
// text, the function catalog and any attached files
func NewInputRequest(a *agent.Agent, session, text string, trace bool) *schema.InvokeRequest {
	req := newRequest(a, session, trace)
	req.InputText = text
	if files := a.Files(); len(files) > 0 {
		req.InlineSessionState = &schema.SessionState{Files: files}
	}
	return req
}

// NewResultRequest returns a follow-up request carrying the result of a
// local function call
func NewResultRequest(a *agent.Agent, session, invocationId string, result *schema.FunctionResult, trace bool) *schema.InvokeRequest {
	req := newRequest(a, session, trace)
	req.InlineSessionState = &schema.SessionState{
		InvocationId: invocationId,
		ReturnControlInvocationResults: []schema.InvocationResult{
			{FunctionResult: result},
		},
		Files: a.Files(),
	}
	return req
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newRequest(a *agent.Agent, session string, trace bool) *schema.InvokeRequest {
	req := &schema.InvokeRequest{
		SessionId:       session,
		Instruction:     a.Instructions,
		FoundationModel: a.Model,
		EnableTrace:     trace,
		ActionGroups:    a.ActionGroups(),
	}
	if len(a.AdvancedConfig) > 0 {
		req.AdvancedConfig = maps.Clone(a.AdvancedConfig)
	}
	return req
}
