package manager

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	agent "github.com/mutablelogic/go-agentkit/pkg/agent"
	opt "github.com/mutablelogic/go-agentkit/pkg/opt"
	remote "github.com/mutablelogic/go-agentkit/pkg/remote"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	session "github.com/mutablelogic/go-agentkit/pkg/session"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// loopState is owned by a single run
type loopState struct {
	session   string
	remaining uint
	calls     uint
	text      []string
	files     []*schema.OutputFile
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run sends the last user turn of the conversation to the agent and
// executes local functions until the agent answers. The remote orchestrator
// keeps the history of the session, so earlier turns are not sent.
//
// Unknown functions and function errors are reported back to the agent.
// The run fails with ErrMaxToolCalls when the agent asks for more calls
// than allowed, and with ErrRemote when the orchestrator reports an error.
func (m *Manager) Run(ctx context.Context, a *agent.Agent, conversation schema.Conversation, opts ...opt.Opt) (result *schema.Result, err error) {
	if a == nil {
		return nil, agentkit.ErrBadParameter.With("agent is required")
	}
	last := conversation.Last()
	if last == nil {
		return nil, agentkit.ErrBadParameter.With("conversation is empty")
	} else if !last.IsUser() {
		return nil, agentkit.ErrBadParameter.Withf("last turn has role %q, expected %q", last.Role, schema.RoleUser)
	}

	// Resolve the options for this run
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}
	state := &loopState{session: o.Session(), remaining: m.maxToolCalls}
	if state.session == "" {
		state.session = session.NewID()
	}
	if n, ok := o.MaxToolCalls(); ok {
		state.remaining = n
	}
	verbosity, ok := o.Verbosity()
	if !ok {
		verbosity = m.verbosity
	}
	level, ok := o.TraceLevel()
	if !ok {
		level = m.traceLevel
	}
	logger := m.runLogger(verbosity).With("agent", a.Name, "session", state.session)

	// Span for the whole run
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "Run",
		attribute.String("agent", a.Name),
		attribute.String("session", state.session),
		attribute.Int64("max_tool_calls", int64(min(state.remaining, math.MaxInt64))),
	)
	defer func() { endSpan(err) }()

	adapter, err := remote.NewAdapter(m.invoker, remote.WithTracer(m.tracer), remote.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	chain := a.Plugins()
	traced := level != schema.TraceNone

	// Exchange with the agent until it answers
	logger.Info("run", "model", a.Model, "functions", a.Toolkit().Len())
	req := remote.NewInputRequest(a, state.session, last.Content, traced)
	for {
		outcome, err := adapter.Exchange(ctx, chain, req)
		if err != nil {
			logger.Error("exchange failed", "error", err)
			return nil, err
		}
		reportTraces(ctx, logger, level, outcome.Traces)

		switch outcome.Stop {
		case schema.StopComplete:
			state.collect(outcome)
			return m.finish(ctx, logger, a, last, state)
		case schema.StopReturnControl:
			state.collect(outcome)
			if state.remaining == 0 {
				logger.Error("call budget exhausted", "calls", state.calls)
				return nil, agentkit.ErrMaxToolCalls.Withf("after %d calls", state.calls)
			}
			state.remaining--
			body, files := m.dispatch(ctx, logger, a, outcome.Call)
			state.calls++
			state.files = append(state.files, files...)
			req = remote.NewResultRequest(a, state.session, outcome.Call.InvocationId, body, traced)
		default:
			logger.Error("remote error", "error", outcome.Err)
			return nil, fmt.Errorf("%w: %w", agentkit.ErrRemote, outcome.Err)
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// collect accumulates the text and files of an outcome
func (s *loopState) collect(outcome *schema.Outcome) {
	if text := strings.TrimSpace(outcome.Text); text != "" {
		s.text = append(s.text, text)
	}
	s.files = append(s.files, outcome.Files...)
}

// finish runs the post-process hooks and records the transcript
func (m *Manager) finish(ctx context.Context, logger *slog.Logger, a *agent.Agent, input *schema.Turn, state *loopState) (*schema.Result, error) {
	result, err := a.Plugins().PostProcess(ctx, &schema.Result{
		Session:  state.session,
		Response: strings.Join(state.text, "\n"),
		Files:    state.files,
		Calls:    state.calls,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("complete", "calls", result.Calls, "files", len(result.Files))

	if m.store != nil {
		if _, err := m.store.Append(ctx, state.session, a.Name, input, schema.AssistantTurn(result.Response)); err != nil {
			logger.Warn("transcript not recorded", "error", err)
		}
	}
	return result, nil
}
