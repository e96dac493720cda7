package nodes

import (
	"fmt"

	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

// ApplyPolicy is a pure function of intent and evidence. order_help carries a
// cancellation decision when cancel evidence exists, other is hard-wired to a
// refusal regardless of what the user wrote, and product_assist has no policy
// gate at all.
func ApplyPolicy(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	switch in.Intent {
	case contractx.IntentOrderHelp:
		inv, ok := in.Evidence.Find(contractx.ToolOrderCancel)
		if !ok {
			break
		}
		result, ok := inv.Results.(contractx.CancelResult)
		if !ok {
			return nil, fmt.Errorf("%w: order_cancel evidence has type %T", contractx.ErrValidation, inv.Results)
		}
		reason := result.Reason
		if reason == "" {
			reason = "within cancellation window"
		}
		allowed := result.Success
		in.Decision = &contractx.PolicyDecision{CancelAllowed: &allowed, Reason: reason}

	case contractx.IntentOther:
		refuse := true
		in.Decision = &contractx.PolicyDecision{Refuse: &refuse, Reason: "nonexistent discount code request"}
	}

	in.Trace.PolicyDecision = in.Decision
	return in, nil
}
