package manager

import (
	"log/slog"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring a manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// MANAGER OPTIONS

// WithTracer sets the tracer for run and exchange spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		if tracer == nil {
			return agentkit.ErrBadParameter.With("tracer is required")
		}
		m.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger. Each run filters it by verbosity.
func WithLogger(logger *slog.Logger) Opt {
	return func(m *Manager) error {
		if logger == nil {
			return agentkit.ErrBadParameter.With("logger is required")
		}
		m.logger = logger
		return nil
	}
}

// WithMaxToolCalls sets the default number of local function calls
// allowed in one run
func WithMaxToolCalls(n uint) Opt {
	return func(m *Manager) error {
		m.maxToolCalls = n
		return nil
	}
}

// WithVerbosity sets the default logging verbosity
func WithVerbosity(v schema.Verbosity) Opt {
	return func(m *Manager) error {
		m.verbosity = v
		return nil
	}
}

// WithTraceLevel sets the default trace level. Traces are not requested
// from the orchestrator at TraceNone.
func WithTraceLevel(l schema.TraceLevel) Opt {
	return func(m *Manager) error {
		m.traceLevel = l
		return nil
	}
}

// WithSessionStore records the turns of each run under its session.
func WithSessionStore(store schema.TranscriptStore) Opt {
	return func(m *Manager) error {
		if store == nil {
			return agentkit.ErrBadParameter.With("session store is required")
		}
		m.store = store
		return nil
	}
}
