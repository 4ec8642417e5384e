package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Add puts a product into the cart. The quantity argument is optional and
// defaults to 1.
func (a *App) Add(ctx context.Context, productID, quantity string) error {
	qty := 1
	if quantity != "" {
		n, err := strconv.Atoi(quantity)
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Quantity must be a positive number.")
			return nil
		}
		qty = n
	}

	if a.store.AddItem(ctx, productID, qty) {
		fmt.Fprintln(a.out, "Added to cart!")
	} else {
		fmt.Fprintln(a.out, "Failed to add to cart. Please try again.")
	}
	return nil
}

// Cart prints the cart lines and the order summary.
func (a *App) Cart(ctx context.Context) error {
	lines, summary := a.store.Summarize()

	if len(a.store.Items()) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	for _, line := range lines {
		fmt.Fprintf(a.out, "%-12s %-36s x%-3d $%7.2f each  $%8.2f\n",
			line.Item.ID, line.Product.Name, line.Item.Quantity, line.UnitPrice, line.Total)
	}

	fmt.Fprintf(a.out, "Subtotal (%d items): $%.2f\n", summary.ItemCount, summary.Subtotal)
	fmt.Fprintln(a.out, "Shipping: Free")
	fmt.Fprintf(a.out, "Tax: $%.2f\n", summary.Tax)
	fmt.Fprintf(a.out, "Total: $%.2f\n", summary.Total)
	return nil
}

// Quantity sets a cart line's quantity. A value of zero or less is an intent
// to drop the line and is issued as a removal, never as an update.
func (a *App) Quantity(ctx context.Context, itemID, quantity string) error {
	n, err := strconv.Atoi(quantity)
	if err != nil {
		fmt.Fprintln(a.out, "Quantity must be a number.")
		return nil
	}

	if n <= 0 {
		return a.Remove(ctx, itemID)
	}

	a.store.UpdateItem(ctx, itemID, n)
	fmt.Fprintln(a.out, "Cart updated.")
	return nil
}

// Remove drops one cart line.
func (a *App) Remove(ctx context.Context, itemID string) error {
	a.store.RemoveItem(ctx, itemID)
	fmt.Fprintln(a.out, "Item removed from cart.")
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.store.Clear(ctx)
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}
