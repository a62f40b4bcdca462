package session

import (
	"context"
	"sync"
	"time"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// MemoryStore is an in-memory transcript store.
// It is safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string]*schema.Transcript
}

var _ schema.TranscriptStore = (*MemoryStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMemoryStore creates a new empty in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transcripts: make(map[string]*schema.Transcript),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns a copy of the transcript with the given identifier.
func (m *MemoryStore) Get(_ context.Context, id string) (*schema.Transcript, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.transcripts[id]
	if !ok {
		return nil, agentkit.ErrNotFound.Withf("session %q", id)
	}
	return clone(t), nil
}

// Append adds turns to a transcript, creating it if necessary.
func (m *MemoryStore) Append(_ context.Context, id, agent string, turns ...*schema.Turn) (*schema.Transcript, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transcripts[id]
	if !ok {
		now := time.Now()
		t = &schema.Transcript{
			ID:       id,
			Agent:    agent,
			Turns:    make(schema.Conversation, 0, len(turns)),
			Created:  now,
			Modified: now,
		}
		m.transcripts[id] = t
	}
	appendTurns(t, turns)
	return clone(t), nil
}

// List returns transcripts ordered by last modified time (most recent first).
func (m *MemoryStore) List(_ context.Context, req schema.ListTranscriptRequest) (*schema.ListTranscriptResponse, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*schema.Transcript, 0, len(m.transcripts))
	for _, t := range m.transcripts {
		result = append(result, clone(t))
	}
	return paginate(result, req), nil
}

// Delete removes a transcript by identifier.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transcripts[id]; !ok {
		return agentkit.ErrNotFound.Withf("session %q", id)
	}
	delete(m.transcripts, id)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func clone(t *schema.Transcript) *schema.Transcript {
	c := *t
	c.Turns = make(schema.Conversation, len(t.Turns))
	for i, turn := range t.Turns {
		turn := *turn
		c.Turns[i] = &turn
	}
	return &c
}
