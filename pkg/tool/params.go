package tool

import (
	"fmt"
	"reflect"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tagName    = "json"
	tagHelp    = "help"
	tagDefault = "default"
	docParam   = ":param "
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ParametersFor returns the parameter descriptors for a struct value or
// pointer to a struct. Each exported field is one parameter, in declaration
// order. A parameter is required unless the field has a default tag.
// Descriptions are taken from ":param name: text" lines in the doc text,
// then the help tag. A value which is not a struct has no parameters.
func ParametersFor(v any, doc string) []schema.Parameter {
	if v == nil {
		return []schema.Parameter{}
	}
	return parametersForType(reflect.TypeOf(v), doc)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parametersForType(rt reflect.Type, doc string) []schema.Parameter {
	for rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return []schema.Parameter{}
	}

	// Iterate over fields
	docs := docParams(doc)
	fields := reflect.VisibleFields(rt)
	result := make([]schema.Parameter, 0, len(fields))
	for _, field := range fields {
		if param, ok := paramFor(field, docs); ok {
			result = append(result, param)
		}
	}

	// Return success
	return result
}

// Return a parameter from a struct field, or false if the field is skipped
func paramFor(field reflect.StructField, docs map[string]string) (schema.Parameter, bool) {
	if !field.IsExported() || field.Anonymous {
		return schema.Parameter{}, false
	}

	// Name
	name := field.Name
	if tag := field.Tag.Get(tagName); tag == "-" {
		return schema.Parameter{}, false
	} else if tag, _, _ := strings.Cut(tag, ","); tag != "" {
		name = tag
	}

	// Description
	description := docs[name]
	if description == "" {
		description = strings.TrimSpace(field.Tag.Get(tagHelp))
	}
	if description == "" {
		description = fmt.Sprintf("The %s parameter", name)
	}

	// Required and default
	param := schema.Parameter{
		Name:        name,
		Type:        paramType(field.Type),
		Required:    true,
		Description: description,
	}
	if value, exists := field.Tag.Lookup(tagDefault); exists {
		param.Required = false
		param.Default = types.Ptr(value)
	}

	// Return success
	return param, true
}

// Return the parameter type tag for a field type
func paramType(rt reflect.Type) schema.ParameterType {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return schema.TypeNumber
	case reflect.Bool:
		return schema.TypeBoolean
	default:
		return schema.TypeString
	}
}

// Return the JSON schema type for a field type, or empty string if the
// value is not constrained
func jsonType(rt reflect.Type) string {
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return ""
	}
}

// Return an object schema for a struct type
func schemaForType(rt reflect.Type, params []schema.Parameter) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(params)),
		Required:   []string{},
	}
	for rt != nil && rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return s
	}

	// Map field names onto their types
	fields := make(map[string]reflect.Type, len(params))
	for _, field := range reflect.VisibleFields(rt) {
		name := field.Name
		if tag, _, _ := strings.Cut(field.Tag.Get(tagName), ","); tag != "" {
			name = tag
		}
		fields[name] = field.Type
	}

	for _, param := range params {
		property := &jsonschema.Schema{Description: param.Description}
		if rt, exists := fields[param.Name]; exists {
			property.Type = jsonType(rt)
		}
		s.Properties[param.Name] = property
		if param.Required {
			s.Required = append(s.Required, param.Name)
		}
	}
	return s
}

// Return parameter descriptions from ":param name: text" lines
func docParams(doc string) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, docParam) {
			continue
		}
		name, text, ok := strings.Cut(strings.TrimPrefix(line, docParam), ":")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			result[name] = strings.TrimSpace(text)
		}
	}
	return result
}

// Return the first doc line which is not a parameter description
func docSummary(doc string) string {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, docParam) {
			continue
		}
		return line
	}
	return ""
}
