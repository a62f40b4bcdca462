package tool_test

import (
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

var coerceParams = []schema.Parameter{
	{Name: "n", Type: schema.TypeNumber, Required: true},
	{Name: "flag", Type: schema.TypeBoolean, Required: true},
	{Name: "s", Type: schema.TypeString, Required: true},
	{Name: "d", Type: schema.TypeNumber, Default: types.Ptr("3")},
}

// Numeric strings become numbers
func Test_coerce_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(int64(3), tool.Coerce(coerceParams, map[string]any{"n": "3"})["n"])
	assert.Equal(int64(-4), tool.Coerce(coerceParams, map[string]any{"n": " -4.0 "})["n"])
	assert.Equal(2.5, tool.Coerce(coerceParams, map[string]any{"n": "2.5"})["n"])
	assert.Equal(int64(1000), tool.Coerce(coerceParams, map[string]any{"n": "1e3"})["n"])
}

// Unparseable numbers are kept as received
func Test_coerce_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("three", tool.Coerce(coerceParams, map[string]any{"n": "three"})["n"])
	assert.Equal("NaN", tool.Coerce(coerceParams, map[string]any{"n": "NaN"})["n"])
	assert.Equal("", tool.Coerce(coerceParams, map[string]any{"n": ""})["n"])
}

// Booleans accept the enumerated tokens in any case
func Test_coerce_003(t *testing.T) {
	assert := assert.New(t)
	for _, v := range []string{"true", "TRUE", "yes", "Yes", "1"} {
		assert.Equal(true, tool.Coerce(coerceParams, map[string]any{"flag": v})["flag"], v)
	}
	for _, v := range []string{"false", "False", "no", "NO", "0"} {
		assert.Equal(false, tool.Coerce(coerceParams, map[string]any{"flag": v})["flag"], v)
	}
	for _, v := range []string{"on", "off", "y", "n", "maybe"} {
		assert.Equal(v, tool.Coerce(coerceParams, map[string]any{"flag": v})["flag"], v)
	}
}

// Strings, typed values and unknown names pass through
func Test_coerce_004(t *testing.T) {
	assert := assert.New(t)
	result := tool.Coerce(coerceParams, map[string]any{
		"s":     "42",
		"n":     7,
		"extra": "yes",
	})
	assert.Equal("42", result["s"])
	assert.Equal(7, result["n"])
	assert.Equal("yes", result["extra"])
}

// Absent arguments take their default, absent required arguments stay absent
func Test_coerce_005(t *testing.T) {
	assert := assert.New(t)
	result := tool.Coerce(coerceParams, map[string]any{})
	assert.Equal(int64(3), result["d"])
	assert.NotContains(result, "n")
	assert.NotContains(result, "flag")
	assert.Len(result, 1)

	// The input is not modified
	raw := map[string]any{"n": "1"}
	tool.Coerce(coerceParams, raw)
	assert.Equal("1", raw["n"])
}
