package tool

import (
	"context"
	"slices"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is the function catalog: a collection of groups with unique names
type Toolkit struct {
	groups map[string]*Group
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given functions in the
// default group
func NewToolkit(fns ...Function) (*Toolkit, error) {
	tk := &Toolkit{
		groups: make(map[string]*Group),
	}
	if len(fns) > 0 {
		if err := tk.Register(DefaultGroup, fns...); err != nil {
			return nil, err
		}
	}
	return tk, nil
}

// NewToolkitFromGroups creates a new toolkit from a mapping of group name
// to functions. Group descriptions are derived from the names.
func NewToolkitFromGroups(groups map[string][]Function) (*Toolkit, error) {
	tk, err := NewToolkit()
	if err != nil {
		return nil, err
	}
	for name, fns := range groups {
		if err := tk.Register(name, fns...); err != nil {
			return nil, err
		}
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return types.Stringify(tk.ActionGroups())
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Register adds functions to a group, creating the group if needed.
// An empty group name means the default group.
func (tk *Toolkit) Register(group string, fns ...Function) error {
	if group = strings.TrimSpace(group); group == "" {
		group = DefaultGroup
	}
	g, exists := tk.groups[group]
	if !exists {
		var err error
		if g, err = NewGroup(group, ""); err != nil {
			return err
		}
	}
	if err := g.Add(fns...); err != nil {
		return err
	}
	tk.groups[group] = g
	return nil
}

// AddGroup adds a group with an explicit description. Returns an error if
// a group with the same name exists.
func (tk *Toolkit) AddGroup(g *Group) error {
	if g == nil {
		return agentkit.ErrBadParameter.With("group cannot be nil")
	}
	if _, exists := tk.groups[g.Name()]; exists {
		return agentkit.ErrConflict.Withf("duplicate group name: %q", g.Name())
	}
	tk.groups[g.Name()] = g
	return nil
}

// Groups returns all groups sorted by name
func (tk *Toolkit) Groups() []*Group {
	result := make([]*Group, 0, len(tk.groups))
	for _, g := range tk.groups {
		result = append(result, g)
	}
	slices.SortFunc(result, func(a, b *Group) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// Len returns the number of functions across all groups
func (tk *Toolkit) Len() int {
	n := 0
	for _, g := range tk.groups {
		n += len(g.fns)
	}
	return n
}

// ActionGroups returns the wire form of every group, sorted by name
func (tk *Toolkit) ActionGroups() []schema.ActionGroup {
	groups := tk.Groups()
	result := make([]schema.ActionGroup, 0, len(groups))
	for _, g := range groups {
		result = append(result, g.ActionGroup())
	}
	return result
}

// Lookup returns a function by group and name. The named group is searched
// first, then every group in name order. Returns ErrNotFound if there is
// no such function.
func (tk *Toolkit) Lookup(group, name string) (Function, error) {
	if g, exists := tk.groups[group]; exists {
		if fn := g.Lookup(name); fn != nil {
			return fn, nil
		}
	}
	for _, g := range tk.Groups() {
		if fn := g.Lookup(name); fn != nil {
			return fn, nil
		}
	}
	return nil, agentkit.ErrNotFound.Withf("function %q not found", name)
}

// Run looks up a function and invokes it with raw arguments
func (tk *Toolkit) Run(ctx context.Context, group, name string, raw map[string]any) (any, error) {
	fn, err := tk.Lookup(group, name)
	if err != nil {
		return nil, err
	}
	return Invoke(ctx, fn, raw)
}
