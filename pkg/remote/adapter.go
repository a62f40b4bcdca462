package remote

import (
	"context"
	"fmt"
	"log/slog"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Adapter performs one exchange with the remote agent, running the plugin
// hooks around the transport and decoding the response
type Adapter struct {
	invoker agentkit.Invoker
	tracer  trace.Tracer
	logger  *slog.Logger
}

// Opt is a functional option for configuring an adapter
type Opt func(*Adapter) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewAdapter returns an adapter over the given transport
func NewAdapter(invoker agentkit.Invoker, opts ...Opt) (*Adapter, error) {
	if invoker == nil {
		return nil, agentkit.ErrBadParameter.With("invoker is required")
	}
	a := &Adapter{
		invoker: invoker,
		tracer:  noop.NewTracerProvider().Tracer(""),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// WithTracer sets the tracer for exchange spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(a *Adapter) error {
		if tracer == nil {
			return agentkit.ErrBadParameter.With("tracer is required")
		}
		a.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger for request and response payloads
func WithLogger(logger *slog.Logger) Opt {
	return func(a *Adapter) error {
		if logger == nil {
			return agentkit.ErrBadParameter.With("logger is required")
		}
		a.logger = logger
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Exchange sends one request and returns the decoded outcome. Hook errors
// are returned as-is. Transport errors are returned wrapped in ErrRemote.
// Errors reported by the remote agent are returned in the outcome.
func (a *Adapter) Exchange(ctx context.Context, chain plugin.Chain, req *schema.InvokeRequest) (outcome *schema.Outcome, err error) {
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "Exchange",
		attribute.String("session", req.SessionId),
		attribute.Bool("result", req.InlineSessionState != nil && req.InlineSessionState.InvocationId != ""),
	)
	defer func() { endSpan(err) }()

	// Rewrite the request
	req, err = chain.PreInvoke(ctx, req)
	if err != nil {
		return nil, err
	}
	a.logger.Log(ctx, schema.LevelTrace, "request", "body", req.String())

	// Send the request
	resp, err := a.invoker.Invoke(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", agentkit.ErrRemote, err)
	} else if resp == nil {
		return nil, agentkit.ErrRemote.With("empty response")
	}

	// Rewrite the response
	resp, err = chain.PostInvoke(ctx, resp)
	if err != nil {
		return nil, err
	}
	a.logger.Log(ctx, schema.LevelTrace, "response", "body", resp.String())

	// Decode the response
	return Decode(resp), nil
}
