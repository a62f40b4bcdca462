package plugin

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Template is a generic deployment template, as decoded from YAML or JSON
type Template map[string]any

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	resourceAgent = "BedrockAgent"
	resourceRole  = "BedrockAgentRole"
	fnSub         = "Fn::Sub"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// AgentProperties returns the properties of the agent resource, or nil if
// the template has no agent resource
func (t Template) AgentProperties() map[string]any {
	t.normalize()
	return t.properties(resourceAgent)
}

// AddStatement appends a copy of the statement to every policy document of
// the agent role, unless a statement for the same resource is already present
func (t Template) AddStatement(statement map[string]any, same func(resource any) bool) {
	t.normalize()
	props := t.properties(resourceRole)
	if props == nil {
		return
	}
	policies, _ := props["Policies"].([]any)
	for _, policy := range policies {
		policy, ok := policy.(map[string]any)
		if !ok {
			continue
		}
		doc, ok := policy["PolicyDocument"].(map[string]any)
		if !ok {
			continue
		}
		statements, ok := doc["Statement"].([]any)
		if !ok {
			continue
		}
		exists := false
		for _, stmt := range statements {
			if stmt, ok := stmt.(map[string]any); ok && same(stmt["Resource"]) {
				exists = true
				break
			}
		}
		if !exists {
			doc["Statement"] = append(statements, cloneValue(statement))
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// normalize replaces nested Template values with plain maps. A decoder which
// is given a Template uses the same type for every nested mapping.
func (t Template) normalize() {
	for k, v := range t {
		t[k] = normalizeValue(v)
	}
}

func normalizeValue(v any) any {
	switch v := v.(type) {
	case Template:
		v.normalize()
		return map[string]any(v)
	case map[string]any:
		Template(v).normalize()
		return v
	case []any:
		for i := range v {
			v[i] = normalizeValue(v[i])
		}
		return v
	default:
		return v
	}
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, e := range v {
			result[k] = cloneValue(e)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, e := range v {
			result[i] = cloneValue(e)
		}
		return result
	default:
		return v
	}
}

func (t Template) properties(name string) map[string]any {
	resources, ok := t["Resources"].(map[string]any)
	if !ok {
		return nil
	}
	resource, ok := resources[name].(map[string]any)
	if !ok {
		return nil
	}
	props, ok := resource["Properties"].(map[string]any)
	if !ok {
		props = make(map[string]any)
		resource["Properties"] = props
	}
	return props
}

// Return a matcher for resources which end with suffix, either as a plain
// string or as the argument of a substitution
func resourceSuffix(suffix string) func(any) bool {
	return func(resource any) bool {
		switch r := resource.(type) {
		case string:
			return strings.HasSuffix(r, suffix)
		case map[string]any:
			if sub, ok := r[fnSub].(string); ok {
				return strings.HasSuffix(sub, suffix)
			}
		}
		return false
	}
}

// Return a substituted ARN for a resource in the current region and account
func regionalArn(resource string) map[string]any {
	return map[string]any{
		fnSub: "arn:aws:bedrock:${AWS::Region}:${AWS::AccountId}:" + resource,
	}
}
