package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	jsonExt              = ".json"
	readLimit            = 8     // Files read in parallel when listing
	DirPerm  os.FileMode = 0o700 // Directory permission for transcript store
	FilePerm os.FileMode = 0o600 // File permission for transcript files
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FileStore is a file-backed transcript store.
// Each transcript is stored as {id}.json in a directory.
// It is safe for concurrent use.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

var _ schema.TranscriptStore = (*FileStore)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFileStore creates a new file-backed transcript store in the given
// directory. The directory is created if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, agentkit.ErrBadParameter.With("directory is required")
	}
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return nil, agentkit.ErrInternalServerError.Withf("mkdir: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get reads a transcript from disk.
func (f *FileStore) Get(_ context.Context, id string) (*schema.Transcript, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.read(id)
}

// Append adds turns to a transcript on disk, creating it if necessary.
func (f *FileStore) Append(_ context.Context, id, agent string, turns ...*schema.Turn) (*schema.Transcript, error) {
	if err := validID(id); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.read(id)
	if errors.Is(err, agentkit.ErrNotFound) {
		now := time.Now()
		t = &schema.Transcript{
			ID:       id,
			Agent:    agent,
			Turns:    make(schema.Conversation, 0, len(turns)),
			Created:  now,
			Modified: now,
		}
	} else if err != nil {
		return nil, err
	}

	appendTurns(t, turns)
	if err := f.write(t); err != nil {
		return nil, err
	}
	return t, nil
}

// List returns transcripts from disk, ordered by last modified time
// (most recent first), with pagination support.
func (f *FileStore) List(ctx context.Context, req schema.ListTranscriptRequest) (*schema.ListTranscriptResponse, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, agentkit.ErrInternalServerError.Withf("readdir: %v", err)
	}

	// Each goroutine writes only its own slot
	loaded := make([]*schema.Transcript, len(entries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readLimit)
	for i, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), jsonExt) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if t, err := f.read(strings.TrimSuffix(entry.Name(), jsonExt)); err == nil {
				loaded[i] = t
			}
			return nil // skip corrupt files
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*schema.Transcript, 0, len(loaded))
	for _, t := range loaded {
		if t != nil {
			result = append(result, t)
		}
	}
	return paginate(result, req), nil
}

// Delete removes a transcript file by identifier.
func (f *FileStore) Delete(_ context.Context, id string) error {
	if err := validID(id); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(id)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return agentkit.ErrNotFound.Withf("session %q", id)
	}
	if err := os.Remove(path); err != nil {
		return agentkit.ErrInternalServerError.Withf("remove: %v", err)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+jsonExt)
}

func (f *FileStore) write(t *schema.Transcript) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return agentkit.ErrInternalServerError.Withf("marshal: %v", err)
	}
	if err := os.WriteFile(f.path(t.ID), data, FilePerm); err != nil {
		return agentkit.ErrInternalServerError.Withf("write: %v", err)
	}
	return nil
}

func (f *FileStore) read(id string) (*schema.Transcript, error) {
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, agentkit.ErrNotFound.Withf("session %q", id)
		}
		return nil, agentkit.ErrInternalServerError.Withf("read: %v", err)
	}
	var t schema.Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, agentkit.ErrInternalServerError.Withf("unmarshal: %v", err)
	}
	return &t, nil
}
