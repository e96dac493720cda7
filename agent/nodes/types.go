// Package nodes holds the pipeline stages as plain node functions threaded
// through a shared per-request GraphState. Control flow is strictly linear;
// each stage writes its fragment into the request trace as it completes, so a
// defect later in the pipeline still leaves a usable partial trace.
package nodes

import (
	"strings"
	"time"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type GraphInput struct {
	Utterance string
	Now       time.Time
	Trace     *contractx.Trace
}

type GraphOutput struct {
	Message string
}

type GraphState struct {
	Utterance string
	Now       time.Time
	Trace     *contractx.Trace

	Intent   contractx.Intent
	Selected []contractx.ToolName
	Evidence contractx.Evidence
	Decision *contractx.PolicyDecision
	Message  string
}

// PrepareRequest seeds the graph state. The empty utterance is legal; it
// flows through the rule paths and ends in the refusal reply.
func PrepareRequest(in GraphInput) (*GraphState, error) {
	if in.Trace == nil {
		in.Trace = contractx.NewTrace()
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	return &GraphState{
		Utterance: strings.TrimSpace(in.Utterance),
		Now:       now,
		Trace:     in.Trace,
	}, nil
}
