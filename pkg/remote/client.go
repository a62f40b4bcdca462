package remote

import (
	"context"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is an HTTP transport to a remote agent orchestrator
type Client struct {
	*client.Client
}

var _ agentkit.Invoker = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	invokePath = "invoke"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client with the given endpoint and options. The endpoint
// should point to the orchestrator API, e.g. "http://localhost:8080/api".
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	if client, err := client.New(append(opts, client.OptEndpoint(endpoint))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}

// OptToken returns a client option which sends a bearer token with every
// request
func OptToken(token string) client.ClientOpt {
	return client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token})
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Invoke sends one request and returns the undecoded response
func (c *Client) Invoke(ctx context.Context, req *schema.InvokeRequest) (*schema.InvokeResponse, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.InvokeResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath(invokePath)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
