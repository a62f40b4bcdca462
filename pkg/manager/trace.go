package manager

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// reportTraces logs the remote reasoning steps. Higher levels include
// everything reported at lower levels.
func reportTraces(ctx context.Context, logger *slog.Logger, level schema.TraceLevel, traces []*schema.Trace) {
	if level == schema.TraceNone {
		return
	}
	for _, t := range traces {
		if t == nil {
			continue
		}
		if level == schema.TraceRaw {
			logger.InfoContext(ctx, "trace", "raw", t.String())
			continue
		}
		if text := t.Reasoning(); text != "" {
			logger.InfoContext(ctx, "reasoning", "text", text)
		}
		if text := t.Rationale(); text != "" {
			logger.InfoContext(ctx, "rationale", "text", text)
		}
		if level >= schema.TraceStandard {
			if input := t.Invocation(); input != nil {
				logInvocation(ctx, logger, input)
			}
		}
		if level >= schema.TraceDetailed {
			if text := t.PreProcessingRationale(); text != "" {
				logger.InfoContext(ctx, "pre-processing", "rationale", text)
			}
			if text := t.PostProcessingReasoning(); text != "" {
				logger.InfoContext(ctx, "post-processing", "reasoning", text)
			}
		}
	}
}

func logInvocation(ctx context.Context, logger *slog.Logger, input *schema.TraceInvocationInput) {
	args := []any{"type", input.InvocationType}
	if group := input.ActionGroupInvocationInput; group != nil {
		args = append(args, "group", group.ActionGroupName, "function", group.Function)
		if len(group.Parameters) > 0 {
			args = append(args, "parameters", formatParams(group.Parameters))
		}
	}
	logger.InfoContext(ctx, "invocation", args...)
}

// formatParams renders parameters as "name: value (type)"
func formatParams(params []schema.FunctionParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Type != "" {
			parts = append(parts, fmt.Sprintf("%s: %s (%s)", p.Name, p.Value, p.Type))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Value))
		}
	}
	return strings.Join(parts, ", ")
}
