package rules

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

const refusalMessage = "I can't provide non-existent discount codes. However, I can suggest legitimate options like:\n" +
	"- Sign up for our newsletter for 10% off\n" +
	"- First-time customer discount\n" +
	"- Seasonal promotions\n\n" +
	"How else can I help you with our products or orders?"

type Responder struct{}

var _ contractx.Responder = (*Responder)(nil)

func NewResponder() *Responder {
	return &Responder{}
}

// Respond composes the templated reply for an intent strictly from the
// gathered evidence and the policy decision.
func (r *Responder) Respond(
	ctx context.Context,
	intent contractx.Intent,
	evidence contractx.Evidence,
	decision *contractx.PolicyDecision,
	utterance string,
) string {
	switch intent {
	case contractx.IntentProductAssist:
		return productReply(evidence)
	case contractx.IntentOrderHelp:
		return orderReply(evidence)
	default:
		return refusalMessage
	}
}

func productReply(evidence contractx.Evidence) string {
	products := findProducts(evidence)
	if len(products) == 0 {
		return "I couldn't find any products matching your criteria. Please try adjusting your price range or preferences."
	}

	var b strings.Builder
	plural := ""
	if len(products) > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "Based on your criteria, I found %d great option%s:\n\n", len(products), plural)

	for i, p := range products {
		fmt.Fprintf(&b, "%d. **%s** - $%s, %s color, available in %s\n",
			i+1, p.Title, formatPrice(p.Price), p.Color, strings.Join(p.Sizes, "/"))
	}

	if inv, ok := evidence.Find(contractx.ToolSizeRecommender); ok {
		if advice, ok := inv.Results.(contractx.SizeAdvice); ok {
			fmt.Fprintf(&b, "\nFor size: %s\n", advice.Rationale)
		}
	}

	if inv, ok := evidence.Find(contractx.ToolETA); ok {
		if eta, ok := inv.Results.(string); ok {
			fmt.Fprintf(&b, "\nETA to your zip: %s\n", eta)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func orderReply(evidence contractx.Evidence) string {
	order := findOrder(evidence)
	if order == nil {
		return "I couldn't find an order with that ID and email combination. Please check your details and try again."
	}

	inv, ok := evidence.Find(contractx.ToolOrderCancel)
	if !ok {
		return fmt.Sprintf("I found your order %s, placed on %s. How else can I help with it?",
			order.OrderID, order.CreatedAt.Format("Jan 2, 2006"))
	}

	cancel, ok := inv.Results.(contractx.CancelResult)
	if !ok {
		return "I'm sorry, I couldn't process the cancellation request. Please try again."
	}

	if cancel.Success {
		return fmt.Sprintf("I've successfully cancelled your order %s. %s", order.OrderID, cancel.Message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I'm unable to cancel order %s as %s. However, I can help you with:\n", order.OrderID, cancel.Reason)
	for _, alt := range cancel.Alternatives {
		fmt.Fprintf(&b, "- %s\n", alt)
	}
	return strings.TrimRight(b.String(), "\n")
}

func findProducts(evidence contractx.Evidence) contractx.ProductList {
	inv, ok := evidence.Find(contractx.ToolProductSearch)
	if !ok {
		return nil
	}
	products, _ := inv.Results.(contractx.ProductList)
	return products
}

func findOrder(evidence contractx.Evidence) *catalogx.Order {
	inv, ok := evidence.Find(contractx.ToolOrderLookup)
	if !ok {
		return nil
	}
	order, _ := inv.Results.(*catalogx.Order)
	return order
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
