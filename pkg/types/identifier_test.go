package types_test

import (
	"strings"
	"testing"

	// Packages
	types "github.com/mutablelogic/go-agentkit/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

// Valid and invalid identifiers
func Test_identifier_001(t *testing.T) {
	assert := assert.New(t)
	assert.True(types.IsIdentifier("add"))
	assert.True(types.IsIdentifier("get_time"))
	assert.True(types.IsIdentifier("_private"))
	assert.True(types.IsIdentifier("MathActions"))
	assert.True(types.IsIdentifier("roll-dice"))
	assert.False(types.IsIdentifier(""))
	assert.False(types.IsIdentifier("1add"))
	assert.False(types.IsIdentifier("-add"))
	assert.False(types.IsIdentifier("add numbers"))
	assert.False(types.IsIdentifier("add.numbers"))
}

// Identifiers are bounded in length
func Test_identifier_002(t *testing.T) {
	assert := assert.New(t)
	assert.True(types.IsIdentifier(strings.Repeat("a", types.MaxIdentifierLen)))
	assert.False(types.IsIdentifier(strings.Repeat("a", types.MaxIdentifierLen+1)))
}
