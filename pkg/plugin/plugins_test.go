package plugin_test

import (
	"context"
	"testing"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	yaml "gopkg.in/yaml.v3"
)

const templateYAML = `
AWSTemplateFormatVersion: "2010-09-09"
Resources:
  BedrockAgent:
    Type: AWS::Bedrock::Agent
    Properties:
      AgentName: demo
  BedrockAgentRole:
    Type: AWS::IAM::Role
    Properties:
      Policies:
        - PolicyName: BedrockAgentPolicy
          PolicyDocument:
            Version: "2012-10-17"
            Statement:
              - Effect: Allow
                Action:
                  - bedrock:InvokeModel
                Resource: "*"
`

func loadTemplate(t *testing.T) plugin.Template {
	t.Helper()
	var template plugin.Template
	if err := yaml.Unmarshal([]byte(templateYAML), &template); err != nil {
		t.Fatal(err)
	}
	return template
}

func statements(template plugin.Template) []any {
	resources := template["Resources"].(map[string]any)
	role := resources["BedrockAgentRole"].(map[string]any)
	policies := role["Properties"].(map[string]any)["Policies"].([]any)
	doc := policies[0].(map[string]any)["PolicyDocument"].(map[string]any)
	return doc["Statement"].([]any)
}

// Security sets the key on requests without overriding an existing key
func Test_security_001(t *testing.T) {
	assert := assert.New(t)
	p, err := plugin.NewSecurity("arn:kms:key")
	assert.NoError(err)

	req, err := p.PreInvoke(context.TODO(), &schema.InvokeRequest{})
	assert.NoError(err)
	assert.Equal("arn:kms:key", req.CustomerEncryptionKeyArn)

	req, err = p.PreInvoke(context.TODO(), &schema.InvokeRequest{CustomerEncryptionKeyArn: "other"})
	assert.NoError(err)
	assert.Equal("other", req.CustomerEncryptionKeyArn)

	_, err = plugin.NewSecurity("")
	assert.ErrorIs(err, agentkit.ErrBadParameter)
}

// Security adds key permissions to the template once
func Test_security_002(t *testing.T) {
	assert := assert.New(t)
	p, _ := plugin.NewSecurity("arn:kms:key")
	template := loadTemplate(t)
	template, err := p.PreDeploy(context.TODO(), template)
	assert.NoError(err)
	template, err = p.PreDeploy(context.TODO(), template)
	assert.NoError(err)

	assert.Equal("arn:kms:key", template.AgentProperties()["customerEncryptionKeyArn"])
	stmts := statements(template)
	assert.Len(stmts, 2)
	assert.Equal("arn:kms:key", stmts[1].(map[string]any)["Resource"])
}

// Guardrail sets the configuration once with an optional version
func Test_guardrail_001(t *testing.T) {
	assert := assert.New(t)
	p, err := plugin.NewGuardrail("gr-1", "2")
	assert.NoError(err)
	req, err := p.PreInvoke(context.TODO(), &schema.InvokeRequest{})
	assert.NoError(err)
	assert.Equal(&schema.GuardrailConfiguration{GuardrailIdentifier: "gr-1", GuardrailVersion: "2"}, req.GuardrailConfiguration)

	existing := &schema.GuardrailConfiguration{GuardrailIdentifier: "other"}
	req, err = p.PreInvoke(context.TODO(), &schema.InvokeRequest{GuardrailConfiguration: existing})
	assert.NoError(err)
	assert.Same(existing, req.GuardrailConfiguration)
}

// Guardrail adds the apply permission to the template once
func Test_guardrail_002(t *testing.T) {
	assert := assert.New(t)
	p, _ := plugin.NewGuardrail("gr-1", "")
	template, err := plugin.NewChain(p, p).PreDeploy(context.TODO(), loadTemplate(t))
	assert.NoError(err)

	config := template.AgentProperties()["guardrailConfiguration"].(map[string]any)
	assert.Equal("gr-1", config["guardrailIdentifier"])
	assert.NotContains(config, "guardrailVersion")
	stmts := statements(template)
	assert.Len(stmts, 2)
	resource := stmts[1].(map[string]any)["Resource"].(map[string]any)
	assert.Equal("arn:aws:bedrock:${AWS::Region}:${AWS::AccountId}:guardrail/gr-1", resource["Fn::Sub"])
}

// Knowledge bases append to requests
func Test_knowledgebase_001(t *testing.T) {
	assert := assert.New(t)
	a, _ := plugin.NewKnowledgeBase("kb-a", "Product docs", nil)
	b, _ := plugin.NewKnowledgeBase("kb-b", "", map[string]any{"vectorSearchConfiguration": map[string]any{"numberOfResults": 5}})
	req, err := plugin.NewChain(a, b).PreInvoke(context.TODO(), &schema.InvokeRequest{})
	assert.NoError(err)
	assert.Len(req.KnowledgeBases, 2)
	assert.Equal("kb-a", req.KnowledgeBases[0].KnowledgeBaseId)
	assert.Equal("Product docs", req.KnowledgeBases[0].Description)
	assert.Equal("kb-b", req.KnowledgeBases[1].KnowledgeBaseId)
	assert.NotNil(req.KnowledgeBases[1].RetrievalConfiguration)

	_, err = plugin.NewKnowledgeBase("", "", nil)
	assert.ErrorIs(err, agentkit.ErrBadParameter)
}

// Knowledge bases add configuration and permissions to the template
func Test_knowledgebase_002(t *testing.T) {
	assert := assert.New(t)
	p, _ := plugin.NewKnowledgeBase("kb-a", "Docs", map[string]any{"vectorSearchConfiguration": 1})
	template, err := p.PreDeploy(context.TODO(), loadTemplate(t))
	assert.NoError(err)

	bases := template.AgentProperties()["KnowledgeBases"].([]any)
	assert.Len(bases, 1)
	config := bases[0].(map[string]any)
	assert.Equal("kb-a", config["KnowledgeBaseId"])
	assert.Equal("Docs", config["Description"])
	assert.Equal(map[string]any{"VectorSearchConfiguration": 1}, config["RetrievalConfiguration"])
	assert.Len(statements(template), 2)
}

// Templates without an agent resource are returned unchanged
func Test_template_001(t *testing.T) {
	assert := assert.New(t)
	p, _ := plugin.NewSecurity("arn:kms:key")
	template := plugin.Template{"Resources": map[string]any{}}
	got, err := p.PreDeploy(context.TODO(), template)
	assert.NoError(err)
	assert.Equal(plugin.Template{"Resources": map[string]any{}}, got)
}

// Templates decoded from YAML expose the agent properties
func Test_template_002(t *testing.T) {
	assert := assert.New(t)
	var template plugin.Template
	assert.NoError(yaml.Unmarshal([]byte(templateYAML), &template))

	props := template.AgentProperties()
	assert.NotNil(props)
	assert.Equal("demo", props["AgentName"])
	_, ok := template["Resources"].(map[string]any)
	assert.True(ok)

	p, _ := plugin.NewGuardrail("gr-1", "")
	template, err := p.PreDeploy(context.TODO(), template)
	assert.NoError(err)
	assert.Contains(template.AgentProperties(), "guardrailConfiguration")
}

// Each policy document gets its own copy of a statement
func Test_template_003(t *testing.T) {
	assert := assert.New(t)
	doc := func() map[string]any {
		return map[string]any{
			"PolicyDocument": map[string]any{"Statement": []any{}},
		}
	}
	template := plugin.Template{
		"Resources": map[string]any{
			"BedrockAgent": map[string]any{"Properties": map[string]any{}},
			"BedrockAgentRole": map[string]any{
				"Properties": map[string]any{"Policies": []any{doc(), doc()}},
			},
		},
	}
	p, _ := plugin.NewSecurity("arn:kms:key")
	template, err := p.PreDeploy(context.TODO(), template)
	assert.NoError(err)

	policies := template["Resources"].(map[string]any)["BedrockAgentRole"].(map[string]any)["Properties"].(map[string]any)["Policies"].([]any)
	first := policies[0].(map[string]any)["PolicyDocument"].(map[string]any)["Statement"].([]any)
	second := policies[1].(map[string]any)["PolicyDocument"].(map[string]any)["Statement"].([]any)
	assert.Len(first, 1)
	assert.Len(second, 1)

	first[0].(map[string]any)["Effect"] = "Deny"
	assert.Equal("Allow", second[0].(map[string]any)["Effect"])
}
