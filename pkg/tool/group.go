package tool

import (
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	types "github.com/mutablelogic/go-agentkit/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Group is a named, ordered collection of functions
type Group struct {
	name        string
	description string
	fns         []Function
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultGroup holds functions registered without a group
	DefaultGroup = "DefaultActions"

	groupSuffix = "Actions"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewGroup returns an empty group. When the description is empty it is
// derived from the name.
func NewGroup(name, description string, fns ...Function) (*Group, error) {
	if !types.IsIdentifier(name) {
		return nil, agentkit.ErrBadParameter.Withf("invalid group name: %q", name)
	}
	if description == "" {
		description = GroupDescription(name)
	}
	g := &Group{
		name:        name,
		description: description,
		fns:         make([]Function, 0, len(fns)),
	}
	if err := g.Add(fns...); err != nil {
		return nil, err
	}
	return g, nil
}

// GroupDescription returns the derived description for a group name
func GroupDescription(name string) string {
	return "Actions related to " + strings.TrimSuffix(name, groupSuffix)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (g *Group) String() string {
	return g.ActionGroup().String()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the group name
func (g *Group) Name() string {
	return g.name
}

// Description returns the group description
func (g *Group) Description() string {
	return g.description
}

// Functions returns the functions in registration order
func (g *Group) Functions() []Function {
	return g.fns
}

// Add appends functions to the group. A function with the same name as one
// already in the group replaces it in place.
func (g *Group) Add(fns ...Function) error {
	for _, fn := range fns {
		if fn == nil {
			return agentkit.ErrBadParameter.With("function cannot be nil")
		}
		name := fn.Name()
		if !types.IsIdentifier(name) {
			return agentkit.ErrBadParameter.Withf("invalid function name: %q", name)
		}
		if i := g.index(name); i >= 0 {
			g.fns[i] = fn
		} else {
			g.fns = append(g.fns, fn)
		}
	}
	return nil
}

// Lookup returns a function by name, or nil if not found
func (g *Group) Lookup(name string) Function {
	if i := g.index(name); i >= 0 {
		return g.fns[i]
	}
	return nil
}

// ActionGroup returns the wire form of the group
func (g *Group) ActionGroup() schema.ActionGroup {
	defs := make([]schema.FunctionDefinition, 0, len(g.fns))
	for _, fn := range g.fns {
		defs = append(defs, Definition(fn))
	}
	return schema.NewActionGroup(g.name, g.description, defs...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Group) index(name string) int {
	for i, fn := range g.fns {
		if fn.Name() == name {
			return i
		}
	}
	return -1
}
