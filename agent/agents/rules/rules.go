// Package rules implements the deterministic stage strategies. They are the
// sole behavior in rule-only deployments and the fallback target whenever the
// model service fails or returns an unusable answer.
package rules

import (
	"context"
	"strings"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	extractx "github.com/tanpawarit/evo-commerce-agent/agent/extract"
)

// productKeywords is the fixed apparel/shopping/sizing/shipping vocabulary
// that routes to product_assist when no cancellation trigger is present.
var productKeywords = []string{
	"dress", "product", "wedding", "midi",
	"size", "sizing", "fit",
	"shipping", "delivery", "eta",
	"shop", "buy", "recommend",
}

type registryImpl struct {
	classifier *Classifier
	selector   *Selector
	responder  *Responder
}

func (r *registryImpl) Classifier() contractx.IntentClassifier { return r.classifier }
func (r *registryImpl) Selector() contractx.ToolSelector       { return r.selector }
func (r *registryImpl) Responder() contractx.Responder         { return r.responder }

// NewRegistry returns the rule-only strategy registry.
func NewRegistry() contractx.Registry {
	return &registryImpl{
		classifier: NewClassifier(),
		selector:   NewSelector(),
		responder:  NewResponder(),
	}
}

type Classifier struct{}

var _ contractx.IntentClassifier = (*Classifier)(nil)

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify routes to order_help when a cancellation verb appears together
// with the word "order" or an order-id-shaped token, to product_assist on the
// fixed keyword set, and to other for everything else.
func (c *Classifier) Classify(ctx context.Context, utterance string) contractx.Intent {
	msg := strings.ToLower(utterance)

	if strings.Contains(msg, "cancel") && (strings.Contains(msg, "order") || extractx.HasOrderToken(msg)) {
		return contractx.IntentOrderHelp
	}

	for _, kw := range productKeywords {
		if strings.Contains(msg, kw) {
			return contractx.IntentProductAssist
		}
	}

	return contractx.IntentOther
}

type Selector struct{}

var _ contractx.ToolSelector = (*Selector)(nil)

func NewSelector() *Selector {
	return &Selector{}
}

// SelectTools applies the deterministic selection rules. The output is
// always within the intent's allow-list; other selects nothing.
func (s *Selector) SelectTools(ctx context.Context, intent contractx.Intent, utterance string) []contractx.ToolName {
	msg := strings.ToLower(utterance)

	switch intent {
	case contractx.IntentProductAssist:
		tools := []contractx.ToolName{contractx.ToolProductSearch}
		if extractx.MentionsSizing(utterance) {
			tools = append(tools, contractx.ToolSizeRecommender)
		}
		if _, ok := extractx.PostalCode(utterance); ok {
			tools = append(tools, contractx.ToolETA)
		}
		return tools
	case contractx.IntentOrderHelp:
		tools := []contractx.ToolName{contractx.ToolOrderLookup}
		if strings.Contains(msg, "cancel") {
			tools = append(tools, contractx.ToolOrderCancel)
		}
		return tools
	default:
		return nil
	}
}
