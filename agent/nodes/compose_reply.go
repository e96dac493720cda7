package nodes

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

func ComposeReply(ctx context.Context, in *GraphState, responder contractx.Responder) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Message = responder.Respond(ctx, in.Intent, in.Evidence, in.Decision, in.Utterance)
	in.Trace.FinalMessage = in.Message
	return in, nil
}
