package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	plugin "github.com/mutablelogic/go-agentkit/pkg/plugin"
	remote "github.com/mutablelogic/go-agentkit/pkg/remote"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func newServer(t *testing.T, handler http.HandlerFunc) *remote.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/invoke", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := remote.New(srv.URL+"/api", remote.OptToken("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// The client posts the request and decodes the response
func Test_client_001(t *testing.T) {
	assert := assert.New(t)
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("Bearer secret", r.Header.Get("Authorization"))

		var req schema.InvokeRequest
		assert.NoError(json.NewDecoder(r.Body).Decode(&req))
		assert.Equal("session-1", req.SessionId)
		assert.Equal("hello", req.InputText)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"stopReason": "COMPLETE",
			"completion": "Hi there",
		})
	})

	resp, err := c.Invoke(context.Background(), &schema.InvokeRequest{SessionId: "session-1", InputText: "hello"})
	if assert.NoError(err) {
		assert.Equal(schema.StopComplete, resp.StopReason)
		assert.Equal("Hi there", resp.Completion)
	}
}

// HTTP errors are returned from the client
func Test_client_002(t *testing.T) {
	assert := assert.New(t)
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	_, err := c.Invoke(context.Background(), &schema.InvokeRequest{SessionId: "session-1"})
	assert.Error(err)
}

// The adapter decodes the outcome through the plugin chain
func Test_adapter_001(t *testing.T) {
	assert := assert.New(t)
	var seen *schema.InvokeRequest
	invoker := agentkit.InvokerFunc(func(_ context.Context, req *schema.InvokeRequest) (*schema.InvokeResponse, error) {
		seen = req
		return &schema.InvokeResponse{StopReason: schema.StopComplete, Completion: "done"}, nil
	})
	adapter, err := remote.NewAdapter(invoker)
	if !assert.NoError(err) {
		t.FailNow()
	}

	guardrail := &plugin.Guardrail{Id: "gr-1", Version: "1"}
	outcome, err := adapter.Exchange(context.Background(), plugin.NewChain(guardrail), &schema.InvokeRequest{SessionId: "session-1"})
	if assert.NoError(err) {
		assert.Equal("done", outcome.Text)
	}
	if assert.NotNil(seen) && assert.NotNil(seen.GuardrailConfiguration) {
		assert.Equal("gr-1", seen.GuardrailConfiguration.GuardrailIdentifier)
	}
}

// Transport failures are remote errors
func Test_adapter_002(t *testing.T) {
	assert := assert.New(t)
	invoker := agentkit.InvokerFunc(func(context.Context, *schema.InvokeRequest) (*schema.InvokeResponse, error) {
		return nil, errors.New("connection refused")
	})
	adapter, err := remote.NewAdapter(invoker)
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = adapter.Exchange(context.Background(), nil, &schema.InvokeRequest{SessionId: "session-1"})
	assert.ErrorIs(err, agentkit.ErrRemote)
	assert.ErrorContains(err, "connection refused")

	_, err = remote.NewAdapter(nil)
	assert.ErrorIs(err, agentkit.ErrBadParameter)
}
