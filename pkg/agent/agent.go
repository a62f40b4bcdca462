package agent

import (
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent is the local definition of a remote agent: the model and
// instructions it runs with, the functions it may call, and the files and
// plugins attached to every request
type Agent struct {
	Name            string         `json:"name"`
	Model           string         `json:"model"`
	Instructions    string         `json:"instructions"`
	CodeInterpreter bool           `json:"code_interpreter,omitempty"`
	AdvancedConfig  map[string]any `json:"advanced_config,omitempty"`

	toolkit *tool.Toolkit
	files   []schema.InputFile
	plugins plugin.Chain
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an agent with an empty function catalog
func New(name, model, instructions string, opts ...Opt) (*Agent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, agentkit.ErrBadParameter.With("agent name is required")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, agentkit.ErrBadParameter.With("model is required")
	}
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return nil, agentkit.ErrBadParameter.With("instructions are required")
	}

	toolkit, err := tool.NewToolkit()
	if err != nil {
		return nil, err
	}
	a := &Agent{
		Name:         name,
		Model:        model,
		Instructions: instructions,
		toolkit:      toolkit,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a *Agent) String() string {
	type j struct {
		*Agent
		Groups  []schema.ActionGroup `json:"action_groups,omitempty"`
		Files   []string             `json:"files,omitempty"`
		Plugins []string             `json:"plugins,omitempty"`
	}
	files := make([]string, 0, len(a.files))
	for _, f := range a.files {
		files = append(files, f.Name)
	}
	return types.Stringify(j{a, a.ActionGroups(), files, a.plugins.Names()})
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns the function catalog
func (a *Agent) Toolkit() *tool.Toolkit {
	return a.toolkit
}

// Plugins returns the plugin chain
func (a *Agent) Plugins() plugin.Chain {
	return a.plugins
}

// AddFunction registers a function in a group. An empty group name means
// the default group.
func (a *Agent) AddFunction(group string, fn tool.Function) error {
	return a.toolkit.Register(group, fn)
}

// AddPlugin appends a plugin to the chain
func (a *Agent) AddPlugin(p plugin.Plugin) error {
	if p == nil {
		return agentkit.ErrBadParameter.With("plugin cannot be nil")
	}
	a.plugins = append(a.plugins, p)
	return nil
}

// ActionGroups returns the groups presented to the remote agent, including
// the code interpreter when enabled
func (a *Agent) ActionGroups() []schema.ActionGroup {
	groups := a.toolkit.ActionGroups()
	if a.CodeInterpreter {
		groups = append(groups, schema.CodeInterpreter())
	}
	return groups
}
