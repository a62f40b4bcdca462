package plugin

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Plugin is an extension registered with an agent. A plugin implements any
// of the hook interfaces below; hooks it does not implement are skipped.
type Plugin interface {
	// Return the name of the plugin
	Name() string
}

// PreInvoker rewrites a request before it is sent to the remote agent
type PreInvoker interface {
	PreInvoke(context.Context, *schema.InvokeRequest) (*schema.InvokeRequest, error)
}

// PostInvoker rewrites a response as soon as it is received
type PostInvoker interface {
	PostInvoke(context.Context, *schema.InvokeResponse) (*schema.InvokeResponse, error)
}

// PostProcessor rewrites the final result of a run
type PostProcessor interface {
	PostProcess(context.Context, *schema.Result) (*schema.Result, error)
}

// PreDeployer rewrites a deployment template
type PreDeployer interface {
	PreDeploy(context.Context, Template) (Template, error)
}
