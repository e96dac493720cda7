// Package tool implements the fixed registry of deterministic backend tools
// over the read-only catalog.
package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
	contractx "github.com/tanpawarit/evo-commerce-agent/agent/contract"
)

const maxSearchResults = 2

const defaultCancelWindow = 60 * time.Minute

type Config struct {
	CancelWindow time.Duration `envconfig:"ORDER_CANCEL_WINDOW" split_words:"true" default:"60m"`
}

// CancelAlternatives is the fixed list of remedies offered when the
// cancellation window has expired.
var CancelAlternatives = []string{
	"Edit shipping address if not yet shipped",
	"Process store credit for future purchases",
	"Connect with support team for special circumstances",
}

// Registry backs the five tools with the in-memory catalog.
type Registry struct {
	catalog *catalogx.Catalog
	window  time.Duration
}

var _ contractx.ToolRegistry = (*Registry)(nil)

func NewRegistry(c *catalogx.Catalog, cfg Config) *Registry {
	window := cfg.CancelWindow
	if window <= 0 {
		window = defaultCancelWindow
	}
	return &Registry{catalog: c, window: window}
}

// ProductSearch returns at most 2 products whose price is within maxPrice and
// whose title or tags textually match the query, in data-source order.
func (r *Registry) ProductSearch(ctx context.Context, query string, maxPrice float64) contractx.ProductList {
	q := strings.ToLower(query)
	out := contractx.ProductList{}
	for _, p := range r.catalog.Products() {
		if p.Price > maxPrice {
			continue
		}
		if !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
		if len(out) == maxSearchResults {
			break
		}
	}
	return out
}

func matchesQuery(p catalogx.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(query, strings.ToLower(tag)) {
			return true
		}
	}
	return false
}

// SizeRecommender applies the fixed 3-way fit heuristic.
func (r *Registry) SizeRecommender(ctx context.Context, preference string) contractx.SizeAdvice {
	pref := strings.ToLower(preference)
	switch {
	case strings.Contains(pref, "loose") || strings.Contains(pref, "relaxed"):
		return contractx.SizeAdvice{
			Recommendation: "L",
			Rationale:      "Recommended L for a relaxed, comfortable fit",
		}
	case strings.Contains(pref, "tight") || strings.Contains(pref, "fitted"):
		return contractx.SizeAdvice{
			Recommendation: "M",
			Rationale:      "Recommended M for a fitted, tailored look",
		}
	default:
		return contractx.SizeAdvice{
			Recommendation: "M",
			Rationale:      "Recommended M as a versatile middle option",
		}
	}
}

// ETA returns a coarse delivery window keyed by the postal code's leading
// digit.
func (r *Registry) ETA(ctx context.Context, postalCode string) string {
	switch {
	case strings.HasPrefix(postalCode, "1"), strings.HasPrefix(postalCode, "2"):
		return "2-3 business days"
	case strings.HasPrefix(postalCode, "5"), strings.HasPrefix(postalCode, "6"):
		return "3-5 business days"
	default:
		return "4-6 business days"
	}
}

// OrderLookup resolves an order by exact match on both id and email; nil when
// no record matches both.
func (r *Registry) OrderLookup(ctx context.Context, orderID, email string) *catalogx.Order {
	return r.catalog.OrderByIDAndEmail(orderID, email)
}

// OrderCancel resolves the order by id only and evaluates the cancellation
// window against now. The boundary is inclusive: elapsed time equal to the
// window still cancels. The order store is never mutated; a repeated attempt
// re-evaluates against the original creation time.
func (r *Registry) OrderCancel(ctx context.Context, orderID string, now time.Time) contractx.CancelResult {
	order, err := r.catalog.OrderByID(orderID)
	if err != nil {
		return contractx.CancelResult{Success: false, Reason: "order not found"}
	}

	if now.Sub(order.CreatedAt) <= r.window {
		return contractx.CancelResult{
			Success: true,
			Message: "Order cancelled successfully. Refund will be processed in 3-5 business days.",
		}
	}

	return contractx.CancelResult{
		Success:      false,
		Reason:       fmt.Sprintf("cancellation window expired (>%d minutes)", int(r.window.Minutes())),
		Alternatives: CancelAlternatives,
	}
}
