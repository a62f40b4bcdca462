package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	assert "github.com/stretchr/testify/assert"
)

const testAgentFile = `
name: calculator
model: model-1
instructions: Add numbers
functions: [MathActions]
code_interpreter: true
advanced_config:
  idleSessionTTLInSeconds: 600
guardrail:
  id: gr-1
  version: "2"
knowledge_bases:
  - id: kb-1
    description: Product manuals
`

// The default agent has every builtin group
func Test_agentfile_001(t *testing.T) {
	assert := assert.New(t)
	def, err := readAgentFile("")
	assert.NoError(err)
	a, err := def.Agent()
	if assert.NoError(err) {
		assert.Equal("assistant", a.Name)
		assert.Len(a.Toolkit().Groups(), len(builtins))
		assert.Empty(a.Plugins())
	}
}

// Agent files select groups and plugins
func Test_agentfile_002(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	assert.NoError(os.WriteFile(path, []byte(testAgentFile), 0o600))

	def, err := readAgentFile(path)
	if !assert.NoError(err) {
		t.FailNow()
	}
	a, err := def.Agent()
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("calculator", a.Name)
	assert.True(a.CodeInterpreter)
	assert.Len(a.Toolkit().Groups(), 1)
	assert.Equal([]string{"guardrail", "knowledge_base"}, a.Plugins().Names())
	assert.Len(a.ActionGroups(), 2)
	assert.Equal(600, a.AdvancedConfig["idleSessionTTLInSeconds"])
}

// Unknown groups are rejected
func Test_agentfile_003(t *testing.T) {
	assert := assert.New(t)
	_, err := builtinGroups("NoSuchActions")
	assert.ErrorIs(err, agentkit.ErrNotFound)
}

// Builtin functions run through the catalog
func Test_agentfile_004(t *testing.T) {
	assert := assert.New(t)
	def, err := readAgentFile("")
	assert.NoError(err)
	a, err := def.Agent()
	assert.NoError(err)

	result, err := a.Toolkit().Run(context.TODO(), "MathActions", "add", map[string]any{"a": "3", "b": "4.5"})
	assert.NoError(err)
	assert.Equal(map[string]any{"result": 7.5}, result)

	_, err = a.Toolkit().Run(context.TODO(), "MathActions", "divide", map[string]any{"a": "1", "b": "0"})
	assert.ErrorIs(err, agentkit.ErrBadParameter)

	result, err = a.Toolkit().Run(context.TODO(), "", "word_count", map[string]any{"text": "one two three"})
	assert.NoError(err)
	assert.Equal(map[string]any{"words": 3, "characters": 13}, result)

	result, err = a.Toolkit().Run(context.TODO(), "TimeActions", "current_time", nil)
	assert.NoError(err)
	assert.Contains(result, "time")
}
