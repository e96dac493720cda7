package nodes

import (
	"context"
	"fmt"
	"math"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
	extractx "github.com/tanpawarit/evo-commerce-agent/agent/extract"
)

// GatherEvidence extracts the entities each selected tool needs and invokes
// the tool, in selection order. A tool whose required entity is absent is
// skipped silently and produces no evidence entry. After gathering, the trace
// tools_called field is rewritten to the tools actually invoked so it always
// matches the evidence set.
func GatherEvidence(ctx context.Context, in *GraphState, registry contractx.ToolRegistry) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	evidence := contractx.Evidence{}
	for _, name := range in.Selected {
		switch name {
		case contractx.ToolProductSearch:
			maxPrice, ok := extractx.PriceCeiling(in.Utterance)
			if !ok {
				maxPrice = math.MaxFloat64
			}
			results := registry.ProductSearch(ctx, in.Utterance, maxPrice)
			evidence = append(evidence, contractx.ToolInvocation{Tool: name, Results: results})

		case contractx.ToolSizeRecommender:
			advice := registry.SizeRecommender(ctx, extractx.SizePreference(in.Utterance))
			evidence = append(evidence, contractx.ToolInvocation{Tool: name, Results: advice})

		case contractx.ToolETA:
			postal, ok := extractx.PostalCode(in.Utterance)
			if !ok {
				continue
			}
			evidence = append(evidence, contractx.ToolInvocation{Tool: name, Results: registry.ETA(ctx, postal)})

		case contractx.ToolOrderLookup:
			orderID, okID := extractx.OrderID(in.Utterance)
			email, okEmail := extractx.Email(in.Utterance)
			if !okID || !okEmail {
				continue
			}
			order := registry.OrderLookup(ctx, orderID, email)
			evidence = append(evidence, contractx.ToolInvocation{Tool: name, Results: order})

		case contractx.ToolOrderCancel:
			orderID, ok := extractx.OrderID(in.Utterance)
			if !ok {
				continue
			}
			result := registry.OrderCancel(ctx, orderID, in.Now)
			evidence = append(evidence, contractx.ToolInvocation{Tool: name, Results: result})
		}
	}

	in.Evidence = evidence
	in.Trace.Evidence = evidence
	in.Trace.ToolsCalled = evidence.Tools()
	return in, nil
}
