// Package cli implements the interactive storefront REPL: catalog browsing,
// filtering and sorting, cart management, and newsletter signup.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"glowshop/internal/client/api"
	"glowshop/internal/client/cart"
	"glowshop/internal/client/catalog"
	"glowshop/internal/client/config"
	"glowshop/internal/logging"
)

// filterState keeps the raw filter inputs as entered by the user. They are
// parsed into catalog.Criteria on every derivation, so an unparseable bound
// simply drops out instead of failing.
type filterState struct {
	category string
	skinType string
	minPrice string
	maxPrice string
	search   string
}

type App struct {
	config *config.Config
	logger logging.Logger
	api    api.Client
	store  *cart.Store

	// current shop view settings
	filters filterState
	sortKey catalog.SortKey

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	store := cart.NewStore(apiClient, logger)

	return &App{
		config:      c,
		logger:      logger,
		api:         apiClient,
		store:       store,
		sortKey:     catalog.SortFeatured,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, nil
}

func (a *App) criteria() catalog.Criteria {
	return catalog.ParseCriteria(
		a.filters.category,
		a.filters.skinType,
		a.filters.minPrice,
		a.filters.maxPrice,
		a.filters.search,
	)
}

func (a *App) getStatus() string {
	_, summary := a.store.Summarize()
	if summary.ItemCount == 0 {
		return ""
	}
	return fmt.Sprintf("(%d items $%.2f) ", summary.ItemCount, summary.Total)
}

func (a *App) Run(ctx context.Context) {
	a.store.Initialize(ctx)

	if a.interactive {
		printlnFn("Welcome to the glowshop CLI (type 'help' for commands)")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.interactive)
}
