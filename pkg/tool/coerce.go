package tool

import (
	"math"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	trueValues  = []string{"true", "yes", "1"}
	falseValues = []string{"false", "no", "0"}
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Coerce converts raw string arguments into typed values according to the
// declared parameters. Absent arguments take their default. Values which
// cannot be converted are kept as received, and names which are not
// declared pass through unchanged.
func Coerce(params []schema.Parameter, raw map[string]any) map[string]any {
	result := make(map[string]any, len(raw)+len(params))
	for name, value := range raw {
		result[name] = value
	}
	for _, param := range params {
		value, exists := result[param.Name]
		if !exists {
			if param.Default == nil {
				continue
			}
			value = *param.Default
		}
		if str, ok := value.(string); ok {
			result[param.Name] = coerceValue(param.Type, str)
		} else {
			result[param.Name] = value
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func coerceValue(t schema.ParameterType, value string) any {
	switch t {
	case schema.TypeNumber:
		if v, ok := parseNumber(value); ok {
			return v
		}
	case schema.TypeBoolean:
		if v, ok := parseBool(value); ok {
			return v
		}
	}
	return value
}

// Return an int64 for integral values, or a float64
func parseNumber(value string) (any, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f), true
	}
	return f, true
}

func parseBool(value string) (bool, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, v := range trueValues {
		if value == v {
			return true, true
		}
	}
	for _, v := range falseValues {
		if value == v {
			return false, true
		}
	}
	return false, false
}
