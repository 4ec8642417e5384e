// Package catalog derives product views for the shop and home pages. All
// derivations are pure: they never mutate their inputs and always return a
// fresh slice.
package catalog

import (
	"strconv"
	"strings"

	"glowshop/internal/client/models"
)

// Criteria is a conjunctive product filter. Zero-value fields are ignored;
// a product survives only if it matches every non-empty criterion.
type Criteria struct {
	Category string
	SkinType string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// ParseCriteria builds a Criteria from raw string inputs, e.g. query
// parameters or CLI arguments. An unparseable price bound is treated as
// absent, not as an error.
func ParseCriteria(category, skinType, minPrice, maxPrice, search string) Criteria {
	return Criteria{
		Category: strings.TrimSpace(category),
		SkinType: strings.TrimSpace(skinType),
		MinPrice: parseBound(minPrice),
		MaxPrice: parseBound(maxPrice),
		Search:   strings.TrimSpace(search),
	}
}

func parseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Category == "" && c.SkinType == "" && c.MinPrice == nil && c.MaxPrice == nil && c.Search == ""
}

// Matches reports whether the product satisfies every set criterion.
// The search term matches case-insensitively against the name, description
// and short description; a hit in any one field qualifies. Price bounds are
// inclusive.
func (c Criteria) Matches(p models.Product) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), term) {
			return false
		}
	}
	if c.Category != "" && string(p.Category) != c.Category {
		return false
	}
	if c.SkinType != "" && !p.HasSkinType(models.SkinType(c.SkinType)) {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	return true
}
