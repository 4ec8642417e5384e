package catalog

import (
	"sort"

	"glowshop/internal/client/models"
)

// SortKey selects the ordering applied to a filtered product view.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortRating    SortKey = "rating"
)

// ParseSortKey maps a raw string to a SortKey, falling back to SortFeatured
// for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// Apply filters products by the criteria, then orders the surviving subset
// by the sort key. The sort is stable, so products equal under the key keep
// their filtered relative order and repeated runs yield identical sequences.
// The input slice is never modified.
func Apply(products []models.Product, c Criteria, key SortKey) []models.Product {
	view := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			view = append(view, p)
		}
	}

	switch key {
	case SortPriceLow:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price < view[j].Price })
	case SortPriceHigh:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Price > view[j].Price })
	case SortRating:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Rating > view[j].Rating })
	case SortNewest:
		sort.SliceStable(view, func(i, j int) bool { return view[i].CreatedAt.After(view[j].CreatedAt) })
	default:
		// Featured items first, higher rated first within each group.
		sort.SliceStable(view, func(i, j int) bool {
			if view[i].IsFeatured != view[j].IsFeatured {
				return view[i].IsFeatured
			}
			return view[i].Rating > view[j].Rating
		})
	}

	return view
}

// Featured returns up to limit featured products, in input order.
func Featured(products []models.Product, limit int) []models.Product {
	return pick(products, limit, func(p models.Product) bool { return p.IsFeatured })
}

// NewArrivals returns up to limit products flagged as new, in input order.
func NewArrivals(products []models.Product, limit int) []models.Product {
	return pick(products, limit, func(p models.Product) bool { return p.IsNew })
}

// Related returns up to limit products sharing the given product's category,
// excluding the product itself.
func Related(products []models.Product, p models.Product, limit int) []models.Product {
	return pick(products, limit, func(q models.Product) bool {
		return q.Category == p.Category && q.ID != p.ID
	})
}

// ByID finds a product by id.
func ByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func pick(products []models.Product, limit int, keep func(models.Product) bool) []models.Product {
	if limit < 0 {
		limit = 0
	}
	out := make([]models.Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
