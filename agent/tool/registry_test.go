package tool

import (
	"context"
	"strings"
	"testing"
	"time"

	catalogx "github.com/tanpawarit/evo-commerce-agent/agent/catalog"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	products := []catalogx.Product{
		{Title: "Midi Wrap Dress", Price: 119, Color: "charcoal", Sizes: []string{"S", "M", "L"}, Tags: []string{"wedding", "midi", "dress"}},
		{Title: "Satin Slip Dress", Price: 99, Color: "blush", Sizes: []string{"XS", "S", "M"}, Tags: []string{"wedding", "midi", "dress", "satin"}},
		{Title: "Floral Maxi Dress", Price: 149, Color: "navy", Sizes: []string{"S", "M"}, Tags: []string{"wedding", "maxi", "dress"}},
		{Title: "Linen Shirt Dress", Price: 85, Color: "white", Sizes: []string{"M", "L"}, Tags: []string{"casual", "midi", "dress", "linen"}},
	}
	orders := []catalogx.Order{
		{OrderID: "A1001", Email: "john@example.com", CreatedAt: time.Date(2025, 1, 8, 16, 45, 0, 0, time.UTC)},
		{OrderID: "A1002", Email: "sara@example.com", CreatedAt: time.Date(2025, 1, 8, 17, 30, 0, 0, time.UTC)},
	}

	return NewRegistry(catalogx.New(products, orders), Config{})
}

func TestProductSearchCapsAtTwoResults(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.ProductSearch(context.Background(), "wedding guest midi dress", 1000)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Title != "Midi Wrap Dress" || got[1].Title != "Satin Slip Dress" {
		t.Fatalf("unexpected result order: %s, %s", got[0].Title, got[1].Title)
	}
}

func TestProductSearchHonorsPriceCeiling(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.ProductSearch(context.Background(), "wedding midi", 120)
	for _, p := range got {
		if p.Price > 120 {
			t.Fatalf("product %s priced %v exceeds ceiling", p.Title, p.Price)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results under 120, got %d", len(got))
	}
}

func TestProductSearchMatchesTitleSubstring(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.ProductSearch(context.Background(), "satin slip", 200)
	if len(got) == 0 {
		t.Fatal("expected a title match")
	}
	if got[0].Title != "Satin Slip Dress" {
		t.Fatalf("unexpected first match: %s", got[0].Title)
	}
}

func TestProductSearchNoMatch(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.ProductSearch(context.Background(), "sneakers", 200)
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestSizeRecommender(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	if got := r.SizeRecommender(context.Background(), "loose"); got.Recommendation != "L" {
		t.Fatalf("loose: got %s, want L", got.Recommendation)
	}
	if got := r.SizeRecommender(context.Background(), "relaxed"); got.Recommendation != "L" {
		t.Fatalf("relaxed: got %s, want L", got.Recommendation)
	}
	if got := r.SizeRecommender(context.Background(), "tight"); got.Recommendation != "M" {
		t.Fatalf("tight: got %s, want M", got.Recommendation)
	}
	if got := r.SizeRecommender(context.Background(), "fitted"); got.Recommendation != "M" {
		t.Fatalf("fitted: got %s, want M", got.Recommendation)
	}

	got := r.SizeRecommender(context.Background(), "")
	if got.Recommendation != "M" {
		t.Fatalf("default: got %s, want M", got.Recommendation)
	}
	if !strings.Contains(got.Rationale, "versatile") {
		t.Fatalf("default rationale should mention the middle option, got %q", got.Rationale)
	}
}

func TestETABuckets(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	cases := map[string]string{
		"10001":  "2-3 business days",
		"20500":  "2-3 business days",
		"560001": "3-5 business days",
		"600042": "3-5 business days",
		"90210":  "4-6 business days",
	}
	for postal, want := range cases {
		if got := r.ETA(context.Background(), postal); got != want {
			t.Fatalf("ETA(%s) = %q, want %q", postal, got, want)
		}
	}
}

func TestOrderLookupRequiresBothFields(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)

	if got := r.OrderLookup(context.Background(), "A1001", "john@example.com"); got == nil {
		t.Fatal("expected order for matching id and email")
	}
	if got := r.OrderLookup(context.Background(), "A1001", "sara@example.com"); got != nil {
		t.Fatal("correct id with wrong email must not resolve")
	}
	if got := r.OrderLookup(context.Background(), "A9999", "john@example.com"); got != nil {
		t.Fatal("unknown id must not resolve")
	}
}

func TestOrderCancelWithinWindow(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	now := time.Date(2025, 1, 8, 17, 15, 0, 0, time.UTC) // 30 minutes after A1001

	got := r.OrderCancel(context.Background(), "A1001", now)
	if !got.Success {
		t.Fatalf("expected cancellation inside the window, got reason %q", got.Reason)
	}
	if got.Message == "" {
		t.Fatal("expected a confirmation message")
	}
}

func TestOrderCancelBoundaryIsInclusive(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	now := time.Date(2025, 1, 8, 17, 45, 0, 0, time.UTC) // exactly 60 minutes after A1001

	if got := r.OrderCancel(context.Background(), "A1001", now); !got.Success {
		t.Fatalf("expected cancellation at exactly 60 minutes, got reason %q", got.Reason)
	}
}

func TestOrderCancelExpiredWindow(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	now := time.Date(2025, 1, 8, 17, 46, 0, 0, time.UTC) // 61 minutes after A1001

	got := r.OrderCancel(context.Background(), "A1001", now)
	if got.Success {
		t.Fatal("expected cancellation blocked past the window")
	}
	if !strings.Contains(got.Reason, "60 minutes") {
		t.Fatalf("reason should name the window, got %q", got.Reason)
	}
	if len(got.Alternatives) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(got.Alternatives))
	}
}

func TestOrderCancelUnknownOrder(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	got := r.OrderCancel(context.Background(), "A9999", time.Now())
	if got.Success {
		t.Fatal("expected failure for unknown order")
	}
	if got.Reason != "order not found" {
		t.Fatalf("unexpected reason %q", got.Reason)
	}
}

func TestOrderCancelCustomWindow(t *testing.T) {
	t.Parallel()

	products := []catalogx.Product{}
	orders := []catalogx.Order{
		{OrderID: "A1001", Email: "john@example.com", CreatedAt: time.Date(2025, 1, 8, 16, 45, 0, 0, time.UTC)},
	}
	r := NewRegistry(catalogx.New(products, orders), Config{CancelWindow: 2 * time.Hour})

	now := time.Date(2025, 1, 8, 18, 15, 0, 0, time.UTC) // 90 minutes later
	if got := r.OrderCancel(context.Background(), "A1001", now); !got.Success {
		t.Fatalf("expected cancellation inside a 2h window, got reason %q", got.Reason)
	}
}
