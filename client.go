package agentkit

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Invoker is the transport to the remote agent orchestrator. One call is one
// loop iteration: the request carries the current turn and the function
// catalog, and the response carries the stop reason.
type Invoker interface {
	// Invoke sends the request and returns the undecoded response
	Invoke(ctx context.Context, req *schema.InvokeRequest) (*schema.InvokeResponse, error)
}

// InvokerFunc adapts a function to the Invoker interface
type InvokerFunc func(context.Context, *schema.InvokeRequest) (*schema.InvokeResponse, error)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (fn InvokerFunc) Invoke(ctx context.Context, req *schema.InvokeRequest) (*schema.InvokeResponse, error) {
	return fn(ctx, req)
}
