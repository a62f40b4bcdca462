package plugin

import (
	"context"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// KnowledgeBase attaches a retrieval source to every request
type KnowledgeBase struct {
	Id              string         `json:"knowledgeBaseId" yaml:"id"`
	Description     string         `json:"description,omitempty" yaml:"description"`
	RetrievalConfig map[string]any `json:"retrievalConfiguration,omitempty" yaml:"retrieval"`
}

var _ PreInvoker = (*KnowledgeBase)(nil)
var _ PreDeployer = (*KnowledgeBase)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewKnowledgeBase returns a knowledge base plugin. The description and
// retrieval configuration are optional.
func NewKnowledgeBase(id, description string, retrieval map[string]any) (*KnowledgeBase, error) {
	if id == "" {
		return nil, agentkit.ErrBadParameter.With("knowledge base identifier is required")
	}
	return &KnowledgeBase{Id: id, Description: description, RetrievalConfig: retrieval}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*KnowledgeBase) Name() string {
	return "knowledge_base"
}

// PreInvoke appends the knowledge base to the request
func (kb *KnowledgeBase) PreInvoke(_ context.Context, req *schema.InvokeRequest) (*schema.InvokeRequest, error) {
	req.KnowledgeBases = append(req.KnowledgeBases, schema.KnowledgeBase{
		KnowledgeBaseId:        kb.Id,
		Description:            kb.Description,
		RetrievalConfiguration: kb.RetrievalConfig,
	})
	return req, nil
}

// PreDeploy adds the knowledge base to the agent and allows the agent role
// to retrieve from it
func (kb *KnowledgeBase) PreDeploy(_ context.Context, t Template) (Template, error) {
	props := t.AgentProperties()
	if props == nil {
		return t, nil
	}

	config := map[string]any{"KnowledgeBaseId": kb.Id}
	if kb.Description != "" {
		config["Description"] = kb.Description
	}
	if len(kb.RetrievalConfig) > 0 {
		retrieval := make(map[string]any, len(kb.RetrievalConfig))
		for key, value := range kb.RetrievalConfig {
			retrieval[pascalCase(key)] = value
		}
		config["RetrievalConfiguration"] = retrieval
	}
	bases, _ := props["KnowledgeBases"].([]any)
	props["KnowledgeBases"] = append(bases, config)

	t.AddStatement(map[string]any{
		"Effect":   "Allow",
		"Action":   []any{"bedrock:RetrieveAndGenerate", "bedrock:Retrieve"},
		"Resource": regionalArn("knowledge-base/" + kb.Id),
	}, resourceSuffix("knowledge-base/"+kb.Id))
	return t, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func pascalCase(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
