package manager

import (
	"context"
	"encoding/json"
	"log/slog"

	// Packages
	agent "github.com/mutablelogic/go-agentkit/pkg/agent"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// dispatch runs one local function and returns the result to send back,
// together with any files the function produced. Failures are returned as
// a result with an error body.
func (m *Manager) dispatch(ctx context.Context, logger *slog.Logger, a *agent.Agent, call *schema.FunctionCall) (*schema.FunctionResult, []*schema.OutputFile) {
	logger.Info("call", "group", call.ActionGroup, "function", call.Function)
	logger.Debug("arguments", "function", call.Function, "arguments", call.Arguments)

	value, err := a.Toolkit().Run(ctx, call.ActionGroup, call.Function, call.Arguments)
	if err != nil {
		logger.Warn("call failed", "function", call.Function, "error", err)
		return failure(call, err), nil
	}

	body, err := json.Marshal(value)
	if err != nil {
		logger.Warn("call result", "function", call.Function, "error", err)
		return failure(call, err), nil
	}
	logger.Debug("result", "function", call.Function, "body", string(body))

	var files []*schema.OutputFile
	if provider, ok := value.(schema.FileProvider); ok {
		files = provider.Files()
	}
	return schema.NewFunctionResult(call.ActionGroup, call.Function, string(body), false), files
}

func failure(call *schema.FunctionCall, err error) *schema.FunctionResult {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return schema.NewFunctionResult(call.ActionGroup, call.Function, string(body), true)
}
