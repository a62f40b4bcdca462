package terminal_test

import (
	"bytes"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	terminal "github.com/mutablelogic/go-agentkit/pkg/ui/terminal"
	assert "github.com/stretchr/testify/assert"
)

// Output which is not a terminal is written as plain text
func Test_terminal_001(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	term := terminal.New(&buf)
	assert.False(term.IsTerminal())
	assert.Equal("**bold**", term.Markdown("**bold**"))

	assert.NoError(term.Write(&buf, &schema.Result{
		Response: "The answer is 7",
		Files:    []*schema.OutputFile{{Name: "chart.png", Type: "image/png", Bytes: []byte{1, 2, 3}}},
	}))
	assert.Contains(buf.String(), "The answer is 7\n")
	assert.Contains(buf.String(), "Generated chart.png (image/png, 3 bytes)")
}
