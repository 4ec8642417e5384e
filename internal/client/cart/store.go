package cart

import (
	"context"
	"sync"

	"glowshop/internal/client/api"
	"glowshop/internal/client/models"
	"glowshop/internal/logging"
)

// Store owns the client's view of the catalog and the cart. The cart is only
// a cache of server truth: every mutation goes to the API first and the cart
// is then re-fetched wholesale, never merged optimistically. A failed
// mutation leaves the cache stale until the next successful fetch.
//
// Mutations issued back-to-back carry no ordering guarantee between each
// other; the re-fetch that lands last determines the observed state.
type Store struct {
	api    api.Client
	logger logging.Logger

	mu       sync.Mutex
	products []models.Product
	items    []models.CartItem
	// cartGen increments per cart fetch; a response from a superseded fetch
	// is discarded instead of applied.
	cartGen uint64
}

func NewStore(c api.Client, l logging.Logger) *Store {
	return &Store{api: c, logger: l.With("module", "cart_store")}
}

// Initialize triggers the catalog-seed endpoint, then fetches the product
// list and the cart. The seed call is fire-and-forget; any fetch failure is
// logged and leaves the corresponding state at its previous value.
func (s *Store) Initialize(ctx context.Context) {
	if err := s.api.SeedProducts(ctx); err != nil {
		s.logger.Error(ctx, "catalog seed failed", "error", err)
	}

	products, err := s.api.Products(ctx)
	if err != nil {
		s.logger.Error(ctx, "fetching products failed", "error", err)
	} else {
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
	}

	s.refreshCart(ctx)
}

// AddItem creates or increments a cart line and reports whether it
// succeeded. On success the cart is re-fetched; on failure local state is
// left untouched.
func (s *Store) AddItem(ctx context.Context, productID string, quantity int) bool {
	if err := s.api.AddCartItem(ctx, productID, quantity); err != nil {
		s.logger.Error(ctx, "adding to cart failed", "product_id", productID, "error", err)
		return false
	}
	s.refreshCart(ctx)
	return true
}

// RemoveItem deletes a cart line. The cart is re-fetched unconditionally,
// whether or not the delete succeeded.
func (s *Store) RemoveItem(ctx context.Context, itemID string) {
	if err := s.api.RemoveCartItem(ctx, itemID); err != nil {
		s.logger.Error(ctx, "removing from cart failed", "item_id", itemID, "error", err)
	}
	s.refreshCart(ctx)
}

// UpdateItem sets a cart line's quantity, then re-fetches the cart. Callers
// are responsible for quantity > 0; a decrement-to-zero intent must be
// translated into RemoveItem instead.
func (s *Store) UpdateItem(ctx context.Context, itemID string, quantity int) {
	if err := s.api.UpdateCartItem(ctx, itemID, quantity); err != nil {
		s.logger.Error(ctx, "updating cart item failed", "item_id", itemID, "error", err)
	}
	s.refreshCart(ctx)
}

// Clear removes every cart line, then re-fetches the cart.
func (s *Store) Clear(ctx context.Context) {
	if err := s.api.ClearCart(ctx); err != nil {
		s.logger.Error(ctx, "clearing cart failed", "error", err)
	}
	s.refreshCart(ctx)
}

func (s *Store) refreshCart(ctx context.Context) {
	s.mu.Lock()
	s.cartGen++
	gen := s.cartGen
	s.mu.Unlock()

	items, err := s.api.Cart(ctx)
	if err != nil {
		s.logger.Error(ctx, "cart refresh failed", "error", err)
		return
	}

	s.mu.Lock()
	// A newer refresh may have been issued while this one was in flight;
	// its result must win regardless of arrival order.
	if gen == s.cartGen {
		s.items = items
	}
	s.mu.Unlock()
}

// Products returns a copy of the current product list.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Items returns a copy of the current cart-item list.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount sums the quantities of every cart item, joined or not.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Summarize derives the current line items and totals.
func (s *Store) Summarize() ([]LineItem, Summary) {
	s.mu.Lock()
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	return Summarize(items, products)
}
