// Package models defines the storefront records exchanged with the remote API.
// All types are read-only projections of server state; the client never
// assigns identities or mutates them locally.
package models

import (
	"math"
	"time"
)

// Category classifies a product within the fixed catalog taxonomy.
type Category string

const (
	CategorySkincare Category = "skincare"
	CategoryLips     Category = "lips"
	CategoryEyes     Category = "eyes"
	CategoryTools    Category = "tools"
)

// SkinType tags a product as suitable for a skin type.
type SkinType string

const (
	SkinTypeDry         SkinType = "dry"
	SkinTypeOily        SkinType = "oily"
	SkinTypeSensitive   SkinType = "sensitive"
	SkinTypeCombination SkinType = "combination"
)

// Product mirrors the API's product document. OriginalPrice is optional;
// when present and greater than Price it drives the discount badges.
type Product struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Price            float64    `json:"price"`
	OriginalPrice    *float64   `json:"original_price,omitempty"`
	Category         Category   `json:"category"`
	SkinTypes        []SkinType `json:"skin_types"`
	Ingredients      []string   `json:"ingredients"`
	Tags             []string   `json:"tags"`
	ImageURL         string     `json:"image_url"`
	Images           []string   `json:"images"`
	Rating           float64    `json:"rating"`
	ReviewCount      int        `json:"review_count"`
	Stock            int        `json:"stock"`
	IsFeatured       bool       `json:"is_featured"`
	IsNew            bool       `json:"is_new"`
	IsViral          bool       `json:"is_viral"`
	Benefits         []string   `json:"benefits"`
	HowToUse         string     `json:"how_to_use"`
	CreatedAt        time.Time  `json:"created_at"`
}

// HasSkinType reports whether the product is tagged with the given skin type.
func (p Product) HasSkinType(t SkinType) bool {
	for _, st := range p.SkinTypes {
		if st == t {
			return true
		}
	}
	return false
}

// Discounted reports whether the product carries a meaningful original price.
// An original price that is not strictly greater than the current price is a
// data-quality gap and yields no discount display.
func (p Product) Discounted() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// DiscountPercent returns the rounded percentage off the original price,
// or 0 when the product is not discounted.
func (p Product) DiscountPercent() int {
	if !p.Discounted() {
		return 0
	}
	return int(math.Round((*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100))
}

// Savings returns the absolute amount saved against the original price,
// or 0 when the product is not discounted.
func (p Product) Savings() float64 {
	if !p.Discounted() {
		return 0
	}
	return *p.OriginalPrice - p.Price
}
