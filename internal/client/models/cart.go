package models

import "time"

// CartItem is one server-side cart line. ID is the line's own identity and is
// distinct from ProductID; ProductID is not guaranteed to resolve against the
// current product list.
type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
