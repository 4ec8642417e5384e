package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glowshop/internal/client/catalog"
	"glowshop/internal/client/models"
	"glowshop/internal/common"
)

// Shop lists the current product view: filters applied, then sorted.
func (a *App) Shop(ctx context.Context) error {
	view := catalog.Apply(a.store.Products(), a.criteria(), a.sortKey)
	if len(view) == 0 {
		fmt.Fprintln(a.out, "No products found. Try adjusting your filters or search terms.")
		return nil
	}

	fmt.Fprintf(a.out, "Showing %d products (sort: %s)\n", len(view), a.sortKey)
	for _, p := range view {
		a.printProduct(p)
	}
	return nil
}

// Featured lists the featured picks, home-page style.
func (a *App) Featured(ctx context.Context) error {
	for _, p := range catalog.Featured(a.store.Products(), 6) {
		a.printProduct(p)
	}
	return nil
}

// NewArrivals lists the latest additions.
func (a *App) NewArrivals(ctx context.Context) error {
	for _, p := range catalog.NewArrivals(a.store.Products(), 3) {
		a.printProduct(p)
	}
	return nil
}

// Show prints a product's detail view along with related products. Products
// missing from the cached list are fetched from the API.
func (a *App) Show(ctx context.Context, id string) error {
	products := a.store.Products()

	product, ok := catalog.ByID(products, id)
	if !ok {
		fetched, err := a.api.Product(ctx, id)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				fmt.Fprintln(a.out, "The product you're looking for doesn't exist.")
				return nil
			}
			a.logger.Error(ctx, "fetching product failed", "product_id", id, "error", err)
			fmt.Fprintln(a.out, "Something went wrong. Please try again.")
			return err
		}
		product = *fetched
	}

	fmt.Fprintf(a.out, "%s  [%s]\n", product.Name, product.Category)
	fmt.Fprintf(a.out, "%s\n", product.Description)
	fmt.Fprintf(a.out, "Price: $%.2f", product.Price)
	if product.Discounted() {
		fmt.Fprintf(a.out, "  (was $%.2f, save $%.2f / -%d%%)",
			*product.OriginalPrice, product.Savings(), product.DiscountPercent())
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Rating: %.1f (%d reviews)\n", product.Rating, product.ReviewCount)
	if len(product.SkinTypes) > 0 {
		fmt.Fprintf(a.out, "Skin types: %s\n", joinSkinTypes(product.SkinTypes))
	}
	if len(product.Ingredients) > 0 {
		fmt.Fprintf(a.out, "Ingredients: %s\n", strings.Join(product.Ingredients, ", "))
	}
	if product.HowToUse != "" {
		fmt.Fprintf(a.out, "How to use: %s\n", product.HowToUse)
	}

	if related := catalog.Related(products, product, 4); len(related) > 0 {
		fmt.Fprintln(a.out, "You may also like:")
		for _, p := range related {
			a.printProduct(p)
		}
	}
	return nil
}

// Search sets the free-text search term; an empty term clears it.
func (a *App) Search(ctx context.Context, term string) error {
	a.filters.search = term
	return a.Shop(ctx)
}

// Category sets the category filter; an empty value clears it.
func (a *App) Category(ctx context.Context, category string) error {
	a.filters.category = category
	return a.Shop(ctx)
}

// SkinType sets the skin-type filter; an empty value clears it.
func (a *App) SkinType(ctx context.Context, skinType string) error {
	a.filters.skinType = skinType
	return a.Shop(ctx)
}

// PriceRange sets the inclusive price bounds; empty or unparseable values
// clear the corresponding bound.
func (a *App) PriceRange(ctx context.Context, min, max string) error {
	a.filters.minPrice = min
	a.filters.maxPrice = max
	return a.Shop(ctx)
}

// Sort selects the ordering for the shop view.
func (a *App) Sort(ctx context.Context, key string) error {
	a.sortKey = catalog.ParseSortKey(key)
	return a.Shop(ctx)
}

// ClearFilters drops every filter and resets the sort to featured.
func (a *App) ClearFilters(ctx context.Context) error {
	a.filters = filterState{}
	a.sortKey = catalog.SortFeatured
	return a.Shop(ctx)
}

func (a *App) printProduct(p models.Product) {
	var badges strings.Builder
	if p.IsViral {
		badges.WriteString(" [viral]")
	}
	if p.IsNew {
		badges.WriteString(" [new]")
	}
	if p.Discounted() {
		fmt.Fprintf(&badges, " [-%d%%]", p.DiscountPercent())
	}

	fmt.Fprintf(a.out, "%-12s %-36s %-9s $%7.2f  %.1f (%d)%s\n",
		p.ID, p.Name, p.Category, p.Price, p.Rating, p.ReviewCount, badges.String())
}

func joinSkinTypes(types []models.SkinType) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return strings.Join(out, ", ")
}
