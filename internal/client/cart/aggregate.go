// Package cart derives the cart view from server state and owns the local
// cache of that state.
package cart

import "glowshop/internal/client/models"

// TaxRate is the flat tax applied to the subtotal.
const TaxRate = 0.08

// LineItem is a cart item joined with its product.
type LineItem struct {
	Item      models.CartItem
	Product   models.Product
	UnitPrice float64
	Total     float64
}

// Summary holds the cart's monetary totals. Values accumulate at full float
// precision; rounding to cents happens only at presentation time.
//
// ItemCount sums quantities across ALL cart items, including ones whose
// product reference did not resolve. It reflects the server-acknowledged
// cart size, not the display-joinable size, so it can exceed the quantities
// visible in the line items.
type Summary struct {
	Subtotal  float64
	Shipping  float64
	Tax       float64
	Total     float64
	ItemCount int
}

// Summarize joins each cart item to its product and computes the totals.
// Items whose product id has no match are dropped from the line items and
// excluded from every monetary figure; they still count toward ItemCount.
// Shipping is always free. Inputs are never modified.
func Summarize(items []models.CartItem, products []models.Product) ([]LineItem, Summary) {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]LineItem, 0, len(items))
	var summary Summary

	for _, item := range items {
		summary.ItemCount += item.Quantity

		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}

		total := product.Price * float64(item.Quantity)
		lines = append(lines, LineItem{
			Item:      item,
			Product:   product,
			UnitPrice: product.Price,
			Total:     total,
		})
		summary.Subtotal += total
	}

	summary.Shipping = 0
	summary.Tax = summary.Subtotal * TaxRate
	summary.Total = summary.Subtotal + summary.Shipping + summary.Tax

	return lines, summary
}
