package plugin

import (
	"context"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Security encrypts agent data with a customer managed key
type Security struct {
	KeyArn string `json:"customerEncryptionKeyArn" yaml:"kms_key_arn"`
}

var _ PreInvoker = (*Security)(nil)
var _ PreDeployer = (*Security)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSecurity returns a plugin which sets the encryption key on requests
func NewSecurity(keyArn string) (*Security, error) {
	if keyArn == "" {
		return nil, agentkit.ErrBadParameter.With("encryption key ARN is required")
	}
	return &Security{KeyArn: keyArn}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*Security) Name() string {
	return "security"
}

// PreInvoke sets the encryption key unless one is already set
func (s *Security) PreInvoke(_ context.Context, req *schema.InvokeRequest) (*schema.InvokeRequest, error) {
	if req.CustomerEncryptionKeyArn == "" {
		req.CustomerEncryptionKeyArn = s.KeyArn
	}
	return req, nil
}

// PreDeploy sets the encryption key on the agent and allows the agent role
// to use it
func (s *Security) PreDeploy(_ context.Context, t Template) (Template, error) {
	props := t.AgentProperties()
	if props == nil {
		return t, nil
	}
	if _, exists := props["customerEncryptionKeyArn"]; !exists {
		props["customerEncryptionKeyArn"] = s.KeyArn
	}
	t.AddStatement(map[string]any{
		"Effect":   "Allow",
		"Action":   []any{"kms:Decrypt", "kms:GenerateDataKey"},
		"Resource": s.KeyArn,
	}, func(resource any) bool {
		return resource == s.KeyArn
	})
	return t, nil
}
