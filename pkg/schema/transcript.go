package schema

import (
	"context"
	"time"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Transcript is the local record of the turns exchanged in one session
type Transcript struct {
	ID       string       `json:"id"`
	Agent    string       `json:"agent,omitempty"`
	Turns    Conversation `json:"turns"`
	Created  time.Time    `json:"created"`
	Modified time.Time    `json:"modified"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Transcript) String() string {
	return types.Stringify(t)
}

// ListTranscriptRequest pages through stored transcripts, most recently
// modified first
type ListTranscriptRequest struct {
	Offset uint  `json:"offset,omitempty"`
	Limit  *uint `json:"limit,omitempty"`
}

// ListTranscriptResponse is one page of stored transcripts
type ListTranscriptResponse struct {
	Count  uint          `json:"count"`
	Offset uint          `json:"offset,omitempty"`
	Limit  *uint         `json:"limit,omitempty"`
	Body   []*Transcript `json:"body"`
}

// TranscriptStore records the turns of each session. Append creates the
// transcript when it does not yet exist.
type TranscriptStore interface {
	// Get returns a transcript by identifier
	Get(ctx context.Context, id string) (*Transcript, error)

	// Append adds turns to a transcript, creating it if necessary
	Append(ctx context.Context, id, agent string, turns ...*Turn) (*Transcript, error)

	// List returns a page of transcripts
	List(ctx context.Context, req ListTranscriptRequest) (*ListTranscriptResponse, error)

	// Delete removes a transcript
	Delete(ctx context.Context, id string) error
}

func (r ListTranscriptResponse) String() string {
	return types.Stringify(r)
}
