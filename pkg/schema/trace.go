package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Trace is one step of remote reasoning, reported when traces are enabled
type Trace struct {
	OrchestrationTrace  *OrchestrationTrace `json:"orchestrationTrace,omitempty"`
	PreProcessingTrace  *ProcessingTrace    `json:"preProcessingTrace,omitempty"`
	PostProcessingTrace *ProcessingTrace    `json:"postProcessingTrace,omitempty"`
}

type OrchestrationTrace struct {
	ModelInvocationOutput *ModelInvocationOutput `json:"modelInvocationOutput,omitempty"`
	Rationale             *TraceText             `json:"rationale,omitempty"`
	InvocationInput       *TraceInvocationInput  `json:"invocationInput,omitempty"`
}

type ProcessingTrace struct {
	ModelInvocationOutput *ModelInvocationOutput `json:"modelInvocationOutput,omitempty"`
}

type ModelInvocationOutput struct {
	ReasoningContent *ReasoningContent `json:"reasoningContent,omitempty"`
	ParsedResponse   *ParsedResponse   `json:"parsedResponse,omitempty"`
}

type ReasoningContent struct {
	ReasoningText *TraceText `json:"reasoningText,omitempty"`
}

type ParsedResponse struct {
	Rationale string `json:"rationale,omitempty"`
}

type TraceText struct {
	Text string `json:"text"`
}

type TraceInvocationInput struct {
	InvocationType             string                      `json:"invocationType,omitempty"`
	ActionGroupInvocationInput *ActionGroupInvocationInput `json:"actionGroupInvocationInput,omitempty"`
}

type ActionGroupInvocationInput struct {
	ActionGroupName string          `json:"actionGroupName,omitempty"`
	Function        string          `json:"function,omitempty"`
	Parameters      []FunctionParam `json:"parameters,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Trace) String() string {
	return types.Stringify(t)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Reasoning returns the orchestration reasoning text, if any
func (t *Trace) Reasoning() string {
	if t.OrchestrationTrace == nil {
		return ""
	}
	return t.OrchestrationTrace.ModelInvocationOutput.reasoning()
}

// Rationale returns the orchestration decision rationale, if any
func (t *Trace) Rationale() string {
	if t.OrchestrationTrace == nil || t.OrchestrationTrace.Rationale == nil {
		return ""
	}
	return t.OrchestrationTrace.Rationale.Text
}

// Invocation returns the orchestration invocation input, if any
func (t *Trace) Invocation() *TraceInvocationInput {
	if t.OrchestrationTrace == nil {
		return nil
	}
	return t.OrchestrationTrace.InvocationInput
}

// PreProcessingRationale returns the parsed rationale of the pre-processing step
func (t *Trace) PreProcessingRationale() string {
	if t.PreProcessingTrace == nil || t.PreProcessingTrace.ModelInvocationOutput == nil {
		return ""
	}
	if parsed := t.PreProcessingTrace.ModelInvocationOutput.ParsedResponse; parsed != nil {
		return parsed.Rationale
	}
	return ""
}

// PostProcessingReasoning returns the reasoning text of the post-processing step
func (t *Trace) PostProcessingReasoning() string {
	if t.PostProcessingTrace == nil {
		return ""
	}
	return t.PostProcessingTrace.ModelInvocationOutput.reasoning()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (o *ModelInvocationOutput) reasoning() string {
	if o == nil || o.ReasoningContent == nil || o.ReasoningContent.ReasoningText == nil {
		return ""
	}
	return o.ReasoningContent.ReasoningText.Text
}
