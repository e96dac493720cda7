package llmagent

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type classifierImpl struct {
	runner   completionRunner
	fallback contractx.IntentClassifier
}

var _ contractx.IntentClassifier = (*classifierImpl)(nil)

func newClassifier(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	fallback contractx.IntentClassifier,
) (*classifierImpl, error) {
	runner, err := compileCompletionGraph(ctx, chatModel, systemPrompt, "classifier.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile classifier graph: %v", contractx.ErrModelInvoke, err)
	}
	return &classifierImpl{runner: runner, fallback: fallback}, nil
}

// Classify asks the model for one of the three intent labels. The reply is
// accepted only when it normalizes to a known label; anything else, and any
// model error, routes through the deterministic rules instead.
func (c *classifierImpl) Classify(ctx context.Context, utterance string) contractx.Intent {
	out, err := completeText(ctx, c.runner, fmt.Sprintf("User message: %q", utterance))
	if err != nil {
		log.Warn().Err(err).Str("stage", "classifier").Msg("model call failed, using rule path")
		return c.fallback.Classify(ctx, utterance)
	}

	intent, ok := contractx.ParseIntent(out)
	if !ok {
		log.Warn().Str("stage", "classifier").Str("label", out).Msg("unusable intent label, using rule path")
		return c.fallback.Classify(ctx, utterance)
	}
	return intent
}
