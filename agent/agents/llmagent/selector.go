package llmagent

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

type selectorImpl struct {
	runner   completionRunner
	fallback contractx.ToolSelector
}

var _ contractx.ToolSelector = (*selectorImpl)(nil)

func newSelector(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	fallback contractx.ToolSelector,
) (*selectorImpl, error) {
	runner, err := compileCompletionGraph(ctx, chatModel, systemPrompt, "selector.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile selector graph: %v", contractx.ErrModelInvoke, err)
	}
	return &selectorImpl{runner: runner, fallback: fallback}, nil
}

// SelectTools asks the model which allow-listed tools apply and intersects
// the reply with the allow-list; the model is never trusted to respect it.
// An explicit "none" is an empty selection, a failed call falls back to the
// rules, and intent=other never reaches the model at all.
func (s *selectorImpl) SelectTools(ctx context.Context, intent contractx.Intent, utterance string) []contractx.ToolName {
	allowed := contractx.AllowedTools(intent)
	if len(allowed) == 0 {
		return nil
	}

	out, err := completeText(ctx, s.runner, selectorInput(intent, allowed, utterance))
	if err != nil {
		log.Warn().Err(err).Str("stage", "selector").Msg("model call failed, using rule path")
		return s.fallback.SelectTools(ctx, intent, utterance)
	}

	return parseToolList(out, allowed)
}

func selectorInput(intent contractx.Intent, allowed []contractx.ToolName, utterance string) string {
	names := make([]string, 0, len(allowed))
	for _, t := range allowed {
		names = append(names, string(t))
	}
	return fmt.Sprintf("Intent: %s\nAvailable tools: %s\nUser message: %q",
		intent, strings.Join(names, ", "), utterance)
}

func parseToolList(reply string, allowed []contractx.ToolName) []contractx.ToolName {
	if strings.EqualFold(strings.TrimSpace(reply), "none") {
		return nil
	}

	allowedSet := make(map[contractx.ToolName]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = struct{}{}
	}

	var out []contractx.ToolName
	seen := make(map[contractx.ToolName]struct{})
	for _, part := range strings.Split(reply, ",") {
		name := contractx.ToolName(strings.ToLower(strings.TrimSpace(part)))
		if _, ok := allowedSet[name]; !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
