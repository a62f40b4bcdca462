package plugin_test

import (
	"context"
	"errors"
	"testing"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK TYPES

type appender struct {
	name      string
	err       error
	returnNil bool
}

func (a *appender) Name() string { return a.name }

func (a *appender) PreInvoke(_ context.Context, req *schema.InvokeRequest) (*schema.InvokeRequest, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.returnNil {
		return nil, nil
	}
	req.InputText += a.name
	return req, nil
}

func (a *appender) PostProcess(_ context.Context, result *schema.Result) (*schema.Result, error) {
	result.Response += a.name
	return result, nil
}

type named string

func (n named) Name() string { return string(n) }

///////////////////////////////////////////////////////////////////////////////
// TESTS

// Hooks run in registration order, each seeing the previous output
func Test_chain_001(t *testing.T) {
	assert := assert.New(t)
	chain := plugin.NewChain(&appender{name: "a"}, nil, named("skip"), &appender{name: "b"})
	assert.Equal([]string{"a", "skip", "b"}, chain.Names())

	req, err := chain.PreInvoke(context.TODO(), &schema.InvokeRequest{InputText: ">"})
	assert.NoError(err)
	assert.Equal(">ab", req.InputText)

	result, err := chain.PostProcess(context.TODO(), &schema.Result{Response: "<"})
	assert.NoError(err)
	assert.Equal("<ab", result.Response)
}

// Hooks which are not implemented leave the value unchanged
func Test_chain_002(t *testing.T) {
	assert := assert.New(t)
	chain := plugin.NewChain(named("a"), &appender{name: "b"})
	resp := &schema.InvokeResponse{Completion: "x"}
	got, err := chain.PostInvoke(context.TODO(), resp)
	assert.NoError(err)
	assert.Same(resp, got)

	var empty plugin.Chain
	req := &schema.InvokeRequest{}
	gotReq, err := empty.PreInvoke(context.TODO(), req)
	assert.NoError(err)
	assert.Same(req, gotReq)
}

// A hook error stops the chain and propagates
func Test_chain_003(t *testing.T) {
	assert := assert.New(t)
	boom := errors.New("boom")
	after := &appender{name: "after"}
	chain := plugin.NewChain(&appender{name: "fail", err: boom}, after)
	req := &schema.InvokeRequest{}
	_, err := chain.PreInvoke(context.TODO(), req)
	assert.ErrorIs(err, boom)
	assert.Contains(err.Error(), "fail")
	assert.Empty(req.InputText)
}

// A hook returning nil is an error
func Test_chain_004(t *testing.T) {
	assert := assert.New(t)
	chain := plugin.NewChain(&appender{name: "nil", returnNil: true})
	_, err := chain.PreInvoke(context.TODO(), &schema.InvokeRequest{})
	assert.ErrorIs(err, agentkit.ErrInternalServerError)
}
