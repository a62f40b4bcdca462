package plugin

import (
	"context"
	"fmt"
	"reflect"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Chain runs plugin hooks in registration order. The output of each hook is
// the input of the next, and the first error stops the chain.
type Chain []Plugin

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewChain returns a chain of the given plugins, skipping nil values
func NewChain(plugins ...Plugin) Chain {
	chain := make(Chain, 0, len(plugins))
	for _, p := range plugins {
		if p != nil {
			chain = append(chain, p)
		}
	}
	return chain
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// PreInvoke folds the request through every PreInvoker
func (c Chain) PreInvoke(ctx context.Context, req *schema.InvokeRequest) (*schema.InvokeRequest, error) {
	return fold(ctx, c, req, func(p PreInvoker, ctx context.Context, v *schema.InvokeRequest) (*schema.InvokeRequest, error) {
		return p.PreInvoke(ctx, v)
	})
}

// PostInvoke folds the response through every PostInvoker
func (c Chain) PostInvoke(ctx context.Context, resp *schema.InvokeResponse) (*schema.InvokeResponse, error) {
	return fold(ctx, c, resp, func(p PostInvoker, ctx context.Context, v *schema.InvokeResponse) (*schema.InvokeResponse, error) {
		return p.PostInvoke(ctx, v)
	})
}

// PostProcess folds the final result through every PostProcessor
func (c Chain) PostProcess(ctx context.Context, result *schema.Result) (*schema.Result, error) {
	return fold(ctx, c, result, func(p PostProcessor, ctx context.Context, v *schema.Result) (*schema.Result, error) {
		return p.PostProcess(ctx, v)
	})
}

// PreDeploy folds the template through every PreDeployer
func (c Chain) PreDeploy(ctx context.Context, template Template) (Template, error) {
	return fold(ctx, c, template, func(p PreDeployer, ctx context.Context, v Template) (Template, error) {
		return p.PreDeploy(ctx, v)
	})
}

// Names returns the plugin names in order
func (c Chain) Names() []string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return names
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fold[H, T any](ctx context.Context, c Chain, v T, fn func(H, context.Context, T) (T, error)) (T, error) {
	var zero T
	for _, p := range c {
		hook, ok := p.(H)
		if !ok {
			continue
		}
		result, err := fn(hook, ctx, v)
		if err != nil {
			return zero, fmt.Errorf("plugin %q: %w", p.Name(), err)
		} else if isNil(result) {
			return zero, agentkit.ErrInternalServerError.Withf("plugin %q returned nil", p.Name())
		}
		v = result
	}
	return v, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
