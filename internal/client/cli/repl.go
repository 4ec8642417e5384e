package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Shop(ctx context.Context) error
	Featured(ctx context.Context) error
	NewArrivals(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Search(ctx context.Context, term string) error
	Category(ctx context.Context, category string) error
	SkinType(ctx context.Context, skinType string) error
	PriceRange(ctx context.Context, min, max string) error
	Sort(ctx context.Context, key string) error
	ClearFilters(ctx context.Context) error
	Add(ctx context.Context, productID, quantity string) error
	Cart(ctx context.Context) error
	Quantity(ctx context.Context, itemID, quantity string) error
	Remove(ctx context.Context, itemID string) error
	ClearCart(ctx context.Context) error
	Subscribe(ctx context.Context, email string) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	shop | s                 — list the current product view
//	featured                 — featured products
//	new                      — new arrivals
//	show <product-id>        — product details
//	search [term]            — set (or clear) the search term
//	category [name]          — set (or clear) the category filter
//	skintype [name]          — set (or clear) the skin-type filter
//	price [min] [max]        — set (or clear) the price bounds
//	sort <key>               — featured | newest | price_low | price_high | rating
//	clearfilters             — drop all filters
//	add <product-id> [qty]   — add a product to the cart
//	cart                     — show the cart with totals
//	qty <item-id> <n>        — set a cart line's quantity (n <= 0 removes it)
//	remove <item-id>         — remove a cart line
//	clearcart                — empty the cart
//	subscribe [email]        — newsletter signup
//	exit | quit              — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, interactive bool) {
	for {
		if interactive {
			printlnFn(fmt.Sprintf("glow %s> ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(n int) string {
			if n < len(args) {
				return args[n]
			}
			return ""
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: (s)hop, featured, new, show, search, category, skintype, price, sort, clearfilters, add, cart, qty, remove, clearcart, subscribe, exit")

		case "s", "shop":
			_ = a.Shop(ctx)

		case "featured":
			_ = a.Featured(ctx)

		case "new":
			_ = a.NewArrivals(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <product-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			_ = a.Category(ctx, arg(0))

		case "skintype":
			_ = a.SkinType(ctx, arg(0))

		case "price":
			_ = a.PriceRange(ctx, arg(0), arg(1))

		case "sort":
			_ = a.Sort(ctx, arg(0))

		case "clearfilters":
			_ = a.ClearFilters(ctx)

		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <product-id> [quantity]")
				continue
			}
			_ = a.Add(ctx, args[0], arg(1))

		case "cart":
			_ = a.Cart(ctx)

		case "qty":
			if len(args) < 2 {
				printlnFn("Usage: qty <item-id> <quantity>")
				continue
			}
			_ = a.Quantity(ctx, args[0], args[1])

		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <item-id>")
				continue
			}
			_ = a.Remove(ctx, args[0])

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx, arg(0))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
