package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowshop/internal/client/models"
)

func fp(v float64) *float64 { return &v }

func TestSummarize_WorkedScenario(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Serum", Price: 20, OriginalPrice: fp(25)},
		{ID: "p2", Name: "Lip Tint", Price: 10},
	}
	items := []models.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 2},
		{ID: "c1b", ProductID: "ghost", Quantity: 5},
	}

	lines, summary := Summarize(items, products)

	require.Len(t, lines, 1)
	assert.Equal(t, "c1", lines[0].Item.ID)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.InDelta(t, 20.0, lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 40.0, lines[0].Total, 1e-9)

	assert.InDelta(t, 40.0, summary.Subtotal, 1e-9)
	assert.Zero(t, summary.Shipping)
	assert.InDelta(t, 3.20, summary.Tax, 1e-9)
	assert.InDelta(t, 43.20, summary.Total, 1e-9)
	assert.Equal(t, 7, summary.ItemCount)
}

func TestSummarize_DanglingItemCountsOnlyInItemCount(t *testing.T) {
	products := []models.Product{{ID: "p1", Price: 12.5}}
	items := []models.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 1},
		{ID: "c2", ProductID: "missing", Quantity: 3},
	}

	lines, summary := Summarize(items, products)

	require.Len(t, lines, 1)
	assert.InDelta(t, 12.5, summary.Subtotal, 1e-9)
	assert.Equal(t, 4, summary.ItemCount)
}

func TestSummarize_TotalIsSubtotalTimesTaxFactor(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Price: 34.99},
		{ID: "p2", Price: 18.99},
		{ID: "p3", Price: 42.99},
	}
	items := []models.CartItem{
		{ID: "c1", ProductID: "p1", Quantity: 3},
		{ID: "c2", ProductID: "p2", Quantity: 1},
		{ID: "c3", ProductID: "p3", Quantity: 7},
	}

	_, summary := Summarize(items, products)

	assert.InDelta(t, summary.Subtotal*1.08, summary.Total, 1e-9)
	assert.InDelta(t, 34.99*3+18.99+42.99*7, summary.Subtotal, 1e-9)
}

func TestSummarize_EmptyInputs(t *testing.T) {
	lines, summary := Summarize(nil, nil)

	assert.Empty(t, lines)
	assert.Zero(t, summary.Subtotal)
	assert.Zero(t, summary.Tax)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.ItemCount)
}

func TestSummarize_DoesNotMutateInputs(t *testing.T) {
	products := []models.Product{{ID: "p2", Price: 10}, {ID: "p1", Price: 20}}
	items := []models.CartItem{{ID: "c1", ProductID: "p1", Quantity: 2}}

	_, _ = Summarize(items, products)

	assert.Equal(t, "p2", products[0].ID)
	assert.Equal(t, "p1", products[1].ID)
	assert.Equal(t, 2, items[0].Quantity)
}
