package schema

import (
	"encoding/json"
	"fmt"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ParameterType is the type tag presented to the remote agent for a
// function parameter
type ParameterType uint

// Parameter describes one declared parameter of a local function
type Parameter struct {
	Name        string        `json:"name"`
	Type        ParameterType `json:"type"`
	Required    bool          `json:"required"`
	Description string        `json:"description,omitempty"`
	Default     *string       `json:"default,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	TypeString ParameterType = iota
	TypeNumber
	TypeBoolean
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ParameterType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

func (p Parameter) String() string {
	return types.Stringify(p)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (t ParameterType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ParameterType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "string":
		*t = TypeString
	case "number":
		*t = TypeNumber
	case "boolean":
		*t = TypeBoolean
	default:
		return fmt.Errorf("unknown parameter type: %q", s)
	}
	return nil
}
