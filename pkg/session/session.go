package session

import (
	"slices"
	"strings"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// NewID returns a new random session identifier
func NewID() string {
	return uuid.New().String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func validID(id string) error {
	if id == "" {
		return agentkit.ErrBadParameter.With("session is required")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return agentkit.ErrBadParameter.Withf("invalid session %q", id)
	}
	return nil
}

// appendTurns adds non-nil turns to the transcript and bumps its
// modification time
func appendTurns(t *schema.Transcript, turns []*schema.Turn) {
	for _, turn := range turns {
		if turn != nil {
			t.Turns.Append(turn)
		}
	}
	t.Modified = time.Now()
}

// paginate sorts transcripts by most recent first and returns one page
func paginate(result []*schema.Transcript, req schema.ListTranscriptRequest) *schema.ListTranscriptResponse {
	slices.SortFunc(result, func(a, b *schema.Transcript) int {
		return b.Modified.Compare(a.Modified)
	})

	total := uint(len(result))
	start := min(req.Offset, total)
	end := total
	if req.Limit != nil {
		end = start + min(types.Value(req.Limit), total-start)
	}

	return &schema.ListTranscriptResponse{
		Count:  total,
		Offset: req.Offset,
		Limit:  req.Limit,
		Body:   result[start:end],
	}
}
