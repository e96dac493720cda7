package contract

import (
	"strings"

	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
)

// Intent is the closed classification of a user request's purpose.
type Intent string

const (
	IntentProductAssist Intent = "product_assist"
	IntentOrderHelp     Intent = "order_help"
	IntentOther         Intent = "other"
)

// ParseIntent normalizes a raw label and reports whether it is a known intent.
func ParseIntent(raw string) (Intent, bool) {
	switch Intent(strings.ToLower(strings.TrimSpace(raw))) {
	case IntentProductAssist:
		return IntentProductAssist, true
	case IntentOrderHelp:
		return IntentOrderHelp, true
	case IntentOther:
		return IntentOther, true
	default:
		return "", false
	}
}

// ToolName identifies one of the fixed backend tools.
type ToolName string

const (
	ToolProductSearch   ToolName = "product_search"
	ToolSizeRecommender ToolName = "size_recommender"
	ToolETA             ToolName = "eta"
	ToolOrderLookup     ToolName = "order_lookup"
	ToolOrderCancel     ToolName = "order_cancel"
)

// AllowedTools returns the fixed allow-list of legal tools for an intent.
func AllowedTools(intent Intent) []ToolName {
	switch intent {
	case IntentProductAssist:
		return []ToolName{ToolProductSearch, ToolSizeRecommender, ToolETA}
	case IntentOrderHelp:
		return []ToolName{ToolOrderLookup, ToolOrderCancel}
	default:
		return nil
	}
}

// ToolInvocation pairs a tool with its result payload.
type ToolInvocation struct {
	Tool    ToolName `json:"tool"`
	Results any      `json:"results"`
}

// Evidence is the ordered sequence of tool invocations for one request;
// order matches selection order.
type Evidence []ToolInvocation

// Find returns the first invocation of the given tool.
func (e Evidence) Find(tool ToolName) (ToolInvocation, bool) {
	for _, inv := range e {
		if inv.Tool == tool {
			return inv, true
		}
	}
	return ToolInvocation{}, false
}

// Tools returns the invoked tool names in evidence order.
func (e Evidence) Tools() []ToolName {
	out := make([]ToolName, 0, len(e))
	for _, inv := range e {
		out = append(out, inv.Tool)
	}
	return out
}

// PolicyDecision is the tagged policy outcome. CancelAllowed is set on the
// order_help path, Refuse on the other path; product_assist carries no
// decision at all.
type PolicyDecision struct {
	CancelAllowed *bool  `json:"cancel_allowed,omitempty"`
	Refuse        *bool  `json:"refuse,omitempty"`
	Reason        string `json:"reason"`
}

// Trace is the per-request audit record of every pipeline decision. A fresh
// trace is allocated per request and never shared across requests.
type Trace struct {
	Intent         Intent          `json:"intent"`
	ToolsCalled    []ToolName      `json:"tools_called"`
	Evidence       Evidence        `json:"evidence"`
	PolicyDecision *PolicyDecision `json:"policy_decision"`
	FinalMessage   string          `json:"final_message"`
}

// NewTrace returns an empty trace whose collections serialize as [] rather
// than null.
func NewTrace() *Trace {
	return &Trace{
		ToolsCalled: []ToolName{},
		Evidence:    Evidence{},
	}
}

// Result is the envelope returned to the caller for every request.
type Result struct {
	Message string `json:"message"`
	Trace   *Trace `json:"trace"`
}

// SizeAdvice is the size_recommender payload.
type SizeAdvice struct {
	Recommendation string `json:"recommendation"`
	Rationale      string `json:"rationale"`
}

// CancelResult is the order_cancel payload. A blocked cancellation carries a
// reason and the fixed alternative remedies; it is a normal result, not an
// error.
type CancelResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message,omitempty"`
	Reason       string   `json:"reason,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// ProductList is the product_search payload.
type ProductList = []catalogx.Product
