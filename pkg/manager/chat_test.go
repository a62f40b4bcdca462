package manager_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

// Chat runs each line in one session until exit
func Test_chat_001(t *testing.T) {
	assert := assert.New(t)
	last := complete("second answer")
	last.Files = []*schema.OutputFile{{Name: "out.csv", Type: "text/csv", Bytes: []byte("a,b")}}
	s := &script{responses: []*schema.InvokeResponse{complete("first answer"), last}}
	m := newManager(t, s)

	var out bytes.Buffer
	in := strings.NewReader("hello\n\nagain\nexit\nnever sent\n")
	assert.NoError(m.Chat(context.TODO(), newAgent(t, new(counter)), "s1", in, &out, nil))
	assert.Contains(out.String(), "first answer")
	assert.Contains(out.String(), "second answer")
	assert.Contains(out.String(), "Generated out.csv (text/csv, 3 bytes)")
	if assert.Len(s.requests, 2) {
		assert.Equal("s1", s.requests[0].SessionId)
		assert.Equal("s1", s.requests[1].SessionId)
		assert.Equal("again", s.requests[1].InputText)
	}
}

// Files are attached and cleared, and errors do not end the chat
func Test_chat_002(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "data.csv")
	assert.NoError(os.WriteFile(path, []byte("a,b\n1,2\n"), 0o600))

	s := &script{responses: []*schema.InvokeResponse{
		complete("with file"),
		{StopReason: schema.StopError, Error: &schema.RemoteError{Kind: "validation", Message: "bad"}},
		complete("without file"),
	}}
	m := newManager(t, s)
	a := newAgent(t, new(counter))

	var out bytes.Buffer
	in := strings.NewReader(fmt.Sprintf("file:%s\nfile:/does/not/exist\nanalyse\nfail\nclear files\nagain\n", path))
	var rendered []string
	fn := func(w io.Writer, result *schema.Result) error {
		rendered = append(rendered, result.Response)
		return nil
	}
	assert.NoError(m.Chat(context.TODO(), a, "", in, &out, fn))
	assert.Equal([]string{"with file", "without file"}, rendered)
	assert.Contains(out.String(), "Attached")
	assert.Contains(out.String(), "Error:")
	assert.Contains(out.String(), "validation: bad")
	assert.Contains(out.String(), "Files cleared")

	if assert.Len(s.requests, 3) {
		assert.NotNil(s.requests[0].InlineSessionState)
		assert.Len(s.requests[0].InlineSessionState.Files, 1)
		assert.Nil(s.requests[2].InlineSessionState)
		assert.NotEmpty(s.requests[0].SessionId)
		assert.Equal(s.requests[0].SessionId, s.requests[2].SessionId)
	}
}
