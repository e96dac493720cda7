package llmagent

import (
	"context"
	"fmt"

	rulesx "github.com/tanpawarit/evo-commerce-agent/agent/agents/rules"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	llmx "github.com/tanpawarit/evo-commerce-agent/agent/llm"
	promptx "github.com/tanpawarit/evo-commerce-agent/agent/prompt"
)

type registryImpl struct {
	classifier contractx.IntentClassifier
	selector   contractx.ToolSelector
	responder  contractx.Responder
}

func (r *registryImpl) Classifier() contractx.IntentClassifier { return r.classifier }
func (r *registryImpl) Selector() contractx.ToolSelector       { return r.selector }
func (r *registryImpl) Responder() contractx.Responder         { return r.responder }

// NewRegistry builds the model-backed strategy registry: one chat model per
// stage, each wired to its rule-backed fallback.
func NewRegistry(ctx context.Context, cfg llmx.Config) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()
	if prompts.Classifier == "" || prompts.Selector == "" || prompts.Responder == "" {
		return nil, fmt.Errorf("%w: stage prompt template is empty", contractx.ErrPromptMissing)
	}

	classifierCfg := cfg.GroqFor(llmx.StageClassifier)
	classifierModel, err := classifierCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create classifier model: %v", contractx.ErrModelInvoke, err)
	}
	selectorCfg := cfg.GroqFor(llmx.StageSelector)
	selectorModel, err := selectorCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create selector model: %v", contractx.ErrModelInvoke, err)
	}
	responderCfg := cfg.GroqFor(llmx.StageResponder)
	responderModel, err := responderCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create responder model: %v", contractx.ErrModelInvoke, err)
	}

	classifier, err := newClassifier(ctx, classifierModel, prompts.Classifier, rulesx.NewClassifier())
	if err != nil {
		return nil, err
	}
	selector, err := newSelector(ctx, selectorModel, prompts.Selector, rulesx.NewSelector())
	if err != nil {
		return nil, err
	}
	responder, err := newResponder(ctx, responderModel, prompts.Responder, rulesx.NewResponder())
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		classifier: classifier,
		selector:   selector,
		responder:  responder,
	}, nil
}
