package manager

import (
	"context"
	"log/slog"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// levelHandler drops records below a minimum level
type levelHandler struct {
	slog.Handler
	level slog.Level
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level && h.Handler.Enabled(ctx, level)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runLogger returns the manager logger filtered for a verbosity
func (m *Manager) runLogger(v schema.Verbosity) *slog.Logger {
	level, ok := v.Level()
	if !ok {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(&levelHandler{Handler: m.logger.Handler(), level: level})
}
