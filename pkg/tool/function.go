package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	types "github.com/mutablelogic/go-agentkit/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Function is a local function which can be called by the remote agent
type Function interface {
	// Return the name of the function
	Name() string

	// Return the description of the function
	Description() string

	// Return the declared parameters, in declaration order
	Parameters() []schema.Parameter

	// Return the JSON schema for the function input
	Schema() (*jsonschema.Schema, error)

	// Run the function with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

type function[P, R any] struct {
	name        string
	description string
	params      []schema.Parameter
	schema      *jsonschema.Schema
	fn          func(context.Context, P) (R, error)
}

type described struct {
	Function
	description string
}

var _ Function = (*function[struct{}, any])(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewFunction wraps fn as a callable function. The fields of P are the
// declared parameters. The first line of doc which is not a parameter
// description becomes the function description.
func NewFunction[P, R any](name, doc string, fn func(context.Context, P) (R, error)) (Function, error) {
	if !types.IsIdentifier(name) {
		return nil, agentkit.ErrBadParameter.Withf("invalid function name: %q", name)
	}
	if fn == nil {
		return nil, agentkit.ErrBadParameter.Withf("function %q is nil", name)
	}

	description := docSummary(doc)
	if description == "" {
		description = fmt.Sprintf("Execute the %s function", name)
	}

	rt := reflect.TypeFor[P]()
	params := parametersForType(rt, doc)
	return &function[P, R]{
		name:        name,
		description: description,
		params:      params,
		schema:      schemaForType(rt, params),
		fn:          fn,
	}, nil
}

// MustFunction is like NewFunction but panics on error
func MustFunction[P, R any](name, doc string, fn func(context.Context, P) (R, error)) Function {
	f, err := NewFunction(name, doc, fn)
	if err != nil {
		panic(err)
	}
	return f
}

// Describe returns fn with its description replaced
func Describe(fn Function, description string) Function {
	if description == "" {
		return fn
	}
	return &described{Function: fn, description: description}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f *function[P, R]) String() string {
	return Definition(f).String()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (f *function[P, R]) Name() string {
	return f.name
}

func (f *function[P, R]) Description() string {
	return f.description
}

func (f *function[P, R]) Parameters() []schema.Parameter {
	return f.params
}

func (f *function[P, R]) Schema() (*jsonschema.Schema, error) {
	return f.schema, nil
}

func (f *function[P, R]) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var params P
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return nil, agentkit.ErrBadParameter.Withf("%s: %v", f.name, err)
		}
	}
	return f.fn(ctx, params)
}

func (d *described) Description() string {
	return d.description
}

// Definition returns the wire form of a function
func Definition(fn Function) schema.FunctionDefinition {
	return schema.NewFunctionDefinition(fn.Name(), fn.Description(), fn.Parameters())
}

// Invoke coerces the raw arguments, validates them against the function
// schema and runs the function. A panic in the function is returned as an
// error.
func Invoke(ctx context.Context, fn Function, raw map[string]any) (result any, err error) {
	// Recover from panics in the function
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, agentkit.ErrInternalServerError.Withf("%s: panic: %v", fn.Name(), r)
		}
	}()

	args := Coerce(fn.Parameters(), raw)
	input, err := json.Marshal(args)
	if err != nil {
		return nil, agentkit.ErrBadParameter.Withf("%s: %v", fn.Name(), err)
	}

	// Validate input against schema if provided
	if s, err := fn.Schema(); err != nil {
		return nil, agentkit.ErrBadParameter.Withf("%s: schema: %v", fn.Name(), err)
	} else if s != nil {
		var mapInput map[string]any
		if err := json.Unmarshal(input, &mapInput); err != nil {
			return nil, agentkit.ErrBadParameter.Withf("%s: %v", fn.Name(), err)
		}
		resolved, err := s.Resolve(nil)
		if err != nil {
			return nil, agentkit.ErrBadParameter.Withf("%s: schema resolution failed: %v", fn.Name(), err)
		}
		if err := resolved.Validate(mapInput); err != nil {
			return nil, agentkit.ErrBadParameter.Withf("%s: %v", fn.Name(), err)
		}
	}

	// Run the function
	return fn.Run(ctx, input)
}
