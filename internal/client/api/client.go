// Package api implements the client for the remote storefront API. All
// business logic (persistence, pricing, inventory) lives behind this HTTP
// boundary; the client only consumes it.
package api

import (
	"context"

	"glowshop/internal/client/models"
)

// Client is the remote operation surface the rest of the client depends on.
// Implementations map transport and server failures to the sentinel errors
// in internal/common.
type Client interface {
	Close() error

	// SeedProducts triggers the idempotent catalog-seed endpoint.
	SeedProducts(ctx context.Context) error

	// Products returns the full product list.
	Products(ctx context.Context) ([]models.Product, error)

	// Product returns a single product by id.
	Product(ctx context.Context, id string) (*models.Product, error)

	// Cart returns the full cart-item list.
	Cart(ctx context.Context) ([]models.CartItem, error)

	// AddCartItem creates a cart line for the product or increments an
	// existing one. The response body is not relied upon; callers re-fetch.
	AddCartItem(ctx context.Context, productID string, quantity int) error

	// RemoveCartItem deletes one cart line by its own identity.
	RemoveCartItem(ctx context.Context, itemID string) error

	// UpdateCartItem sets a cart line's quantity. Quantity validation is the
	// caller's responsibility.
	UpdateCartItem(ctx context.Context, itemID string, quantity int) error

	// ClearCart removes every cart line.
	ClearCart(ctx context.Context) error

	// SubscribeNewsletter signs the email up. A duplicate email returns
	// common.ErrAlreadySubscribed.
	SubscribeNewsletter(ctx context.Context, email string) (*models.NewsletterSubscription, error)
}
