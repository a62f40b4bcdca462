package main

import (
	"os"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	agent "github.com/mutablelogic/go-agentkit/pkg/agent"
	fstool "github.com/mutablelogic/go-agentkit/pkg/fstool"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// AgentFile is the YAML definition of an agent
type AgentFile struct {
	Name            string                  `yaml:"name"`
	Model           string                  `yaml:"model"`
	Instructions    string                  `yaml:"instructions"`
	Groups          []string                `yaml:"functions"`
	CodeInterpreter bool                    `yaml:"code_interpreter"`
	AdvancedConfig  map[string]any          `yaml:"advanced_config"`
	Security        *plugin.Security        `yaml:"security"`
	Guardrail       *plugin.Guardrail       `yaml:"guardrail"`
	KnowledgeBases  []*plugin.KnowledgeBase `yaml:"knowledge_bases"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var defaultAgent = AgentFile{
	Name:         "assistant",
	Model:        "anthropic.claude-3-5-sonnet-20241022-v2:0",
	Instructions: "You are a helpful assistant. Use the available functions to answer questions about arithmetic, time and text.",
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readAgentFile parses an agent definition. An empty path returns the
// default agent.
func readAgentFile(path string) (*AgentFile, error) {
	def := defaultAgent
	if path == "" {
		return &def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, agentkit.ErrBadParameter.Withf("%s: %v", path, err)
	}
	return &def, nil
}

// Agent returns the agent for the definition, with the named builtin
// function groups. All groups are used when none are named.
func (f *AgentFile) Agent() (*agent.Agent, error) {
	groups, err := builtinGroups(f.Groups...)
	if err != nil {
		return nil, err
	}
	opts := []agent.Opt{
		agent.WithGroups(groups),
		agent.WithCodeInterpreter(f.CodeInterpreter),
	}
	if len(f.AdvancedConfig) > 0 {
		opts = append(opts, agent.WithAdvancedConfig(f.AdvancedConfig))
	}
	if f.Security != nil {
		if p, err := plugin.NewSecurity(f.Security.KeyArn); err != nil {
			return nil, err
		} else {
			opts = append(opts, agent.WithPlugin(p))
		}
	}
	if f.Guardrail != nil {
		if p, err := plugin.NewGuardrail(f.Guardrail.Id, f.Guardrail.Version); err != nil {
			return nil, err
		} else {
			opts = append(opts, agent.WithPlugin(p))
		}
	}
	for _, kb := range f.KnowledgeBases {
		if p, err := plugin.NewKnowledgeBase(kb.Id, kb.Description, kb.RetrievalConfig); err != nil {
			return nil, err
		} else {
			opts = append(opts, agent.WithPlugin(p))
		}
	}
	return agent.New(f.Name, f.Model, f.Instructions, opts...)
}

// agent reads the agent definition named on the command line, adding the
// file functions when a project root is set
func (g *Globals) agent() (*agent.Agent, error) {
	def, err := readAgentFile(g.File)
	if err != nil {
		return nil, err
	}
	a, err := def.Agent()
	if err != nil {
		return nil, err
	}
	if g.Root != "" {
		fs, err := fstool.New(g.Root)
		if err != nil {
			return nil, err
		}
		group, err := fs.Group()
		if err != nil {
			return nil, err
		}
		if err := a.Toolkit().AddGroup(group); err != nil {
			return nil, err
		}
	}
	return a, nil
}
