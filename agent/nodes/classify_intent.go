package nodes

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

func ClassifyIntent(ctx context.Context, in *GraphState, classifier contractx.IntentClassifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Intent = classifier.Classify(ctx, in.Utterance)
	in.Trace.Intent = in.Intent
	return in, nil
}
