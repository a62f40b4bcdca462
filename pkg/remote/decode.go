package remote

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode converts a response into an outcome. A missing stop reason is
// inferred from the presence of a return control block. Responses which
// cannot be interpreted decode to a malformed remote error. Arguments are
// returned as received.
func Decode(resp *schema.InvokeResponse) *schema.Outcome {
	if resp == nil {
		return malformed("empty response")
	}

	outcome := &schema.Outcome{
		Stop:   resp.StopReason,
		Traces: resp.Traces,
	}
	if outcome.Stop == schema.StopNone {
		switch {
		case resp.Error != nil:
			outcome.Stop = schema.StopError
		case resp.ReturnControl != nil:
			outcome.Stop = schema.StopReturnControl
		default:
			outcome.Stop = schema.StopComplete
		}
	}

	switch outcome.Stop {
	case schema.StopComplete:
		outcome.Text = resp.Completion
		outcome.Files = resp.Files
	case schema.StopReturnControl:
		call, err := decodeCall(resp.ReturnControl)
		if err != nil {
			return withTraces(malformed(err.Error()), resp.Traces)
		}
		outcome.Call = call
		outcome.Text = resp.Completion
		outcome.Files = resp.Files
	case schema.StopError:
		outcome.Err = resp.Error
		if outcome.Err == nil {
			outcome.Err = &schema.RemoteError{Kind: "unknown", Message: resp.Completion}
		}
	default:
		return withTraces(malformed(fmt.Sprintf("unknown stop reason %q", resp.StopReason)), resp.Traces)
	}
	return outcome
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeCall(rc *schema.ReturnControl) (*schema.FunctionCall, error) {
	if rc == nil {
		return nil, fmt.Errorf("missing return control")
	}
	for _, input := range rc.InvocationInputs {
		if fn := input.FunctionInvocationInput; fn != nil && fn.Function != "" {
			return &schema.FunctionCall{
				InvocationId: rc.InvocationId,
				ActionGroup:  fn.ActionGroup,
				Function:     fn.Function,
				Arguments:    fn.Args(),
			}, nil
		}
	}
	return nil, fmt.Errorf("missing function invocation input")
}

func malformed(message string) *schema.Outcome {
	return &schema.Outcome{
		Stop: schema.StopError,
		Err:  &schema.RemoteError{Kind: schema.ErrKindMalformed, Message: message},
	}
}

func withTraces(o *schema.Outcome, traces []*schema.Trace) *schema.Outcome {
	o.Traces = traces
	return o
}
