package plugin

import (
	"context"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Guardrail applies a content guardrail to every request
type Guardrail struct {
	Id      string `json:"guardrailIdentifier" yaml:"id"`
	Version string `json:"guardrailVersion,omitempty" yaml:"version"`
}

var _ PreInvoker = (*Guardrail)(nil)
var _ PreDeployer = (*Guardrail)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewGuardrail returns a guardrail plugin. The version is optional.
func NewGuardrail(id, version string) (*Guardrail, error) {
	if id == "" {
		return nil, agentkit.ErrBadParameter.With("guardrail identifier is required")
	}
	return &Guardrail{Id: id, Version: version}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*Guardrail) Name() string {
	return "guardrail"
}

// PreInvoke sets the guardrail unless one is already set
func (g *Guardrail) PreInvoke(_ context.Context, req *schema.InvokeRequest) (*schema.InvokeRequest, error) {
	if req.GuardrailConfiguration == nil {
		req.GuardrailConfiguration = &schema.GuardrailConfiguration{
			GuardrailIdentifier: g.Id,
			GuardrailVersion:    g.Version,
		}
	}
	return req, nil
}

// PreDeploy sets the guardrail on the agent and allows the agent role to
// apply it
func (g *Guardrail) PreDeploy(_ context.Context, t Template) (Template, error) {
	props := t.AgentProperties()
	if props == nil {
		return t, nil
	}
	if _, exists := props["guardrailConfiguration"]; !exists {
		config := map[string]any{"guardrailIdentifier": g.Id}
		if g.Version != "" {
			config["guardrailVersion"] = g.Version
		}
		props["guardrailConfiguration"] = config
	}
	t.AddStatement(map[string]any{
		"Effect":   "Allow",
		"Action":   []any{"bedrock:ApplyGuardrail"},
		"Resource": regionalArn("guardrail/" + g.Id),
	}, resourceSuffix("guardrail/"+g.Id))
	return t, nil
}
