package llmagent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type responderImpl struct {
	runner   completionRunner
	fallback contractx.Responder
}

var _ contractx.Responder = (*responderImpl)(nil)

func newResponder(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	fallback contractx.Responder,
) (*responderImpl, error) {
	runner, err := compileCompletionGraph(ctx, chatModel, systemPrompt, "responder.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile responder graph: %v", contractx.ErrModelInvoke, err)
	}
	return &responderImpl{runner: runner, fallback: fallback}, nil
}

// Respond submits the serialized evidence and policy decision to the model
// and returns the trimmed completion; any failure composes the templated
// reply instead.
func (r *responderImpl) Respond(
	ctx context.Context,
	intent contractx.Intent,
	evidence contractx.Evidence,
	decision *contractx.PolicyDecision,
	utterance string,
) string {
	input, err := responderInput(intent, evidence, decision, utterance)
	if err != nil {
		log.Warn().Err(err).Str("stage", "responder").Msg("payload marshal failed, using rule path")
		return r.fallback.Respond(ctx, intent, evidence, decision, utterance)
	}

	out, err := completeText(ctx, r.runner, input)
	if err != nil {
		log.Warn().Err(err).Str("stage", "responder").Msg("model call failed, using rule path")
		return r.fallback.Respond(ctx, intent, evidence, decision, utterance)
	}
	return out
}

func responderInput(
	intent contractx.Intent,
	evidence contractx.Evidence,
	decision *contractx.PolicyDecision,
	utterance string,
) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "User message: %q\nIntent: %s\nEvidence from tools:\n", utterance, intent)

	for _, inv := range evidence {
		raw, err := json.Marshal(inv.Results)
		if err != nil {
			return "", fmt.Errorf("%w: marshal evidence for tool=%s: %v", contractx.ErrValidation, inv.Tool, err)
		}
		fmt.Fprintf(&b, "%s: %s\n", inv.Tool, raw)
	}

	rawDecision, err := json.Marshal(decision)
	if err != nil {
		return "", fmt.Errorf("%w: marshal policy decision: %v", contractx.ErrValidation, err)
	}
	fmt.Fprintf(&b, "\nPolicy decision: %s\n\nCompose a helpful response based only on the evidence provided.", rawDecision)

	return b.String(), nil
}
