package manager

import (
	"log/slog"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Manager runs agents against a remote orchestrator, executing local
// functions when the orchestrator returns control
type Manager struct {
	invoker      agentkit.Invoker
	tracer       trace.Tracer
	logger       *slog.Logger
	maxToolCalls uint
	verbosity    schema.Verbosity
	traceLevel   schema.TraceLevel
	store        schema.TranscriptStore
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultMaxToolCalls is the number of local function calls allowed in
	// one run when no other limit is set
	DefaultMaxToolCalls = 10
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a manager which sends requests through the given transport
func New(invoker agentkit.Invoker, opts ...Opt) (*Manager, error) {
	if invoker == nil {
		return nil, agentkit.ErrBadParameter.With("invoker is required")
	}
	m := &Manager{
		invoker:      invoker,
		tracer:       noop.NewTracerProvider().Tracer(""),
		logger:       slog.Default(),
		maxToolCalls: DefaultMaxToolCalls,
		verbosity:    schema.VerbosityNormal,
		traceLevel:   schema.TraceNone,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Store returns the transcript store, or nil if transcripts are not recorded
func (m *Manager) Store() schema.TranscriptStore {
	return m.store
}
