package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ActionGroup is one group of functions presented to the remote agent
type ActionGroup struct {
	Name            string          `json:"actionGroupName"`
	Description     string          `json:"description,omitempty"`
	Executor        *GroupExecutor  `json:"actionGroupExecutor,omitempty"`
	FunctionSchema  *FunctionSchema `json:"functionSchema,omitempty"`
	ParentSignature string          `json:"parentActionGroupSignature,omitempty"`
}

// GroupExecutor selects who runs the functions of a group
type GroupExecutor struct {
	CustomControl string `json:"customControl"`
}

// FunctionSchema lists the functions of a group
type FunctionSchema struct {
	Functions []FunctionDefinition `json:"functions"`
}

// FunctionDefinition is the wire form of a function descriptor
type FunctionDefinition struct {
	Name                string                     `json:"name"`
	Description         string                     `json:"description,omitempty"`
	Parameters          map[string]ParameterDetail `json:"parameters"`
	RequireConfirmation string                     `json:"requireConfirmation,omitempty"`
}

// ParameterDetail is the wire form of a parameter descriptor
type ParameterDetail struct {
	Type        ParameterType `json:"type"`
	Description string        `json:"description,omitempty"`
	Required    bool          `json:"required"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	CustomControlReturn = "RETURN_CONTROL"
	ConfirmationOff     = "DISABLED"

	CodeInterpreterGroup     = "CodeInterpreterAction"
	CodeInterpreterSignature = "AMAZON.CodeInterpreter"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewActionGroup returns a group whose functions are executed locally
func NewActionGroup(name, description string, fns ...FunctionDefinition) ActionGroup {
	if fns == nil {
		fns = []FunctionDefinition{}
	}
	return ActionGroup{
		Name:           name,
		Description:    description,
		Executor:       &GroupExecutor{CustomControl: CustomControlReturn},
		FunctionSchema: &FunctionSchema{Functions: fns},
	}
}

// NewFunctionDefinition converts parameter descriptors into the wire form,
// keyed by parameter name
func NewFunctionDefinition(name, description string, params []Parameter) FunctionDefinition {
	details := make(map[string]ParameterDetail, len(params))
	for _, p := range params {
		details[p.Name] = ParameterDetail{
			Type:        p.Type,
			Description: p.Description,
			Required:    p.Required,
		}
	}
	return FunctionDefinition{
		Name:                name,
		Description:         description,
		Parameters:          details,
		RequireConfirmation: ConfirmationOff,
	}
}

// CodeInterpreter returns the built-in code interpreter group
func CodeInterpreter() ActionGroup {
	return ActionGroup{
		Name:            CodeInterpreterGroup,
		ParentSignature: CodeInterpreterSignature,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (g ActionGroup) String() string {
	return types.Stringify(g)
}

func (d FunctionDefinition) String() string {
	return types.Stringify(d)
}
