package contract

import (
	"context"
	"time"

	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
)

// IntentClassifier maps one utterance to exactly one intent. Classification
// never fails the request: model-backed implementations swallow model errors
// and fall back to deterministic rules.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string) Intent
}

// ToolSelector chooses the tools to invoke for an intent. The output is
// always a subset of AllowedTools(intent).
type ToolSelector interface {
	SelectTools(ctx context.Context, intent Intent, utterance string) []ToolName
}

// Responder composes the final reply strictly from the gathered evidence and
// the policy decision.
type Responder interface {
	Respond(ctx context.Context, intent Intent, evidence Evidence, decision *PolicyDecision, utterance string) string
}

// Registry bundles the stage strategies. There are two implementations: the
// model-backed registry and the rule-only registry.
type Registry interface {
	Classifier() IntentClassifier
	Selector() ToolSelector
	Responder() Responder
}

// ToolRegistry is the fixed registry of deterministic backend tools.
type ToolRegistry interface {
	ProductSearch(ctx context.Context, query string, maxPrice float64) ProductList
	SizeRecommender(ctx context.Context, preference string) SizeAdvice
	ETA(ctx context.Context, postalCode string) string
	OrderLookup(ctx context.Context, orderID, email string) *catalogx.Order
	OrderCancel(ctx context.Context, orderID string, now time.Time) CancelResult
}
