package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	session "github.com/mutablelogic/go-agentkit/pkg/session"
	assert "github.com/stretchr/testify/assert"
)

// File store
func Test_file_001(t *testing.T) {
	store, err := session.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	testStore(t, store)
}

// A directory is required
func Test_file_002(t *testing.T) {
	assert := assert.New(t)
	_, err := session.NewFileStore("")
	assert.ErrorIs(err, agentkit.ErrBadParameter)
}

// Transcripts survive reopening the store, and corrupt files are skipped
func Test_file_003(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	store, err := session.NewFileStore(dir)
	assert.NoError(err)
	_, err = store.Append(context.TODO(), "s1", "math", schema.AssistantTurn("7"))
	assert.NoError(err)
	assert.NoError(os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), session.FilePerm))

	store, err = session.NewFileStore(dir)
	assert.NoError(err)
	tr, err := store.Get(context.TODO(), "s1")
	if assert.NoError(err) {
		assert.Equal("7", tr.Turns[0].Content)
	}
	list, err := store.List(context.TODO(), schema.ListTranscriptRequest{})
	assert.NoError(err)
	assert.Equal(uint(1), list.Count)
}
