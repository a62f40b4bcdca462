package agent

import (
	"maps"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring an agent
type Opt func(*Agent) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithFunctions registers functions in the default group
func WithFunctions(fns ...tool.Function) Opt {
	return func(a *Agent) error {
		return a.toolkit.Register(tool.DefaultGroup, fns...)
	}
}

// WithGroups registers functions from a mapping of group name to functions
func WithGroups(groups map[string][]tool.Function) Opt {
	return func(a *Agent) error {
		for name, fns := range groups {
			if err := a.toolkit.Register(name, fns...); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithGroup adds a group with an explicit description
func WithGroup(g *tool.Group) Opt {
	return func(a *Agent) error {
		return a.toolkit.AddGroup(g)
	}
}

// WithCodeInterpreter enables the built-in code interpreter
func WithCodeInterpreter(enable bool) Opt {
	return func(a *Agent) error {
		a.CodeInterpreter = enable
		return nil
	}
}

// WithFile attaches a file to every request
func WithFile(name string, data []byte, mediaType string) Opt {
	return func(a *Agent) error {
		return a.AddFile(name, data, mediaType)
	}
}

// WithAdvancedConfig merges opaque keys into every request body
func WithAdvancedConfig(config map[string]any) Opt {
	return func(a *Agent) error {
		if a.AdvancedConfig == nil {
			a.AdvancedConfig = make(map[string]any, len(config))
		}
		maps.Copy(a.AdvancedConfig, config)
		return nil
	}
}

// WithPlugin appends plugins to the chain, in order
func WithPlugin(plugins ...plugin.Plugin) Opt {
	return func(a *Agent) error {
		for _, p := range plugins {
			if err := a.AddPlugin(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithToolkit replaces the function catalog
func WithToolkit(toolkit *tool.Toolkit) Opt {
	return func(a *Agent) error {
		if toolkit == nil {
			return agentkit.ErrBadParameter.With("toolkit is required")
		}
		a.toolkit = toolkit
		return nil
	}
}
