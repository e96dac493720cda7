package nodes

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

func SelectTools(ctx context.Context, in *GraphState, selector contractx.ToolSelector) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.Selected = selector.SelectTools(ctx, in.Intent, in.Utterance)
	in.Trace.ToolsCalled = append([]contractx.ToolName{}, in.Selected...)
	return in, nil
}
