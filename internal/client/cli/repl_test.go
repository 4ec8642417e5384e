package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(call string, args ...string) error {
	f.calls = append(f.calls, call)
	f.args = append(f.args, args...)
	return nil
}

func (f *fakeExec) Shop(ctx context.Context) error        { return f.record("shop") }
func (f *fakeExec) Featured(ctx context.Context) error    { return f.record("featured") }
func (f *fakeExec) NewArrivals(ctx context.Context) error { return f.record("new") }
func (f *fakeExec) Show(ctx context.Context, id string) error {
	return f.record("show", id)
}
func (f *fakeExec) Search(ctx context.Context, term string) error {
	return f.record("search", term)
}
func (f *fakeExec) Category(ctx context.Context, category string) error {
	return f.record("category", category)
}
func (f *fakeExec) SkinType(ctx context.Context, skinType string) error {
	return f.record("skintype", skinType)
}
func (f *fakeExec) PriceRange(ctx context.Context, min, max string) error {
	return f.record("price", min, max)
}
func (f *fakeExec) Sort(ctx context.Context, key string) error {
	return f.record("sort", key)
}
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.record("clearfilters") }
func (f *fakeExec) Add(ctx context.Context, productID, quantity string) error {
	return f.record("add", productID, quantity)
}
func (f *fakeExec) Cart(ctx context.Context) error { return f.record("cart") }
func (f *fakeExec) Quantity(ctx context.Context, itemID, quantity string) error {
	return f.record("qty", itemID, quantity)
}
func (f *fakeExec) Remove(ctx context.Context, itemID string) error {
	return f.record("remove", itemID)
}
func (f *fakeExec) ClearCart(ctx context.Context) error { return f.record("clearcart") }
func (f *fakeExec) Subscribe(ctx context.Context, email string) error {
	return f.record("subscribe", email)
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"shop",
		"featured",
		"new",
		"show p1",
		"search vitamin c",
		"category lips",
		"skintype dry",
		"price 5 15",
		"sort rating",
		"clearfilters",
		"add p1 2",
		"cart",
		"qty c1 3",
		"remove c1",
		"clearcart",
		"subscribe a@b.com",
		"bogus",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(input))

	runREPL(context.Background(), exec, func() string { return "" }, sc, true)

	wantCalls := []string{
		"shop", "featured", "new", "show", "search", "category", "skintype",
		"price", "sort", "clearfilters", "add", "cart", "qty", "remove",
		"clearcart", "subscribe",
	}
	assert.Equal(t, wantCalls, exec.calls)
	assert.Contains(t, exec.args, "vitamin c")
	assert.Contains(t, exec.args, "a@b.com")
}

func TestRunREPL_UsageGuards(t *testing.T) {
	silencePrintln(t)

	// Commands missing required arguments must not dispatch.
	input := strings.Join([]string{
		"show",
		"add",
		"qty c1",
		"remove",
		"quit",
	}, "\n")

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader(input))

	runREPL(context.Background(), exec, func() string { return "" }, sc, true)

	assert.Empty(t, exec.calls)
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("\n\n   \nshop\n"))

	runREPL(context.Background(), exec, func() string { return "" }, sc, false)

	assert.Equal(t, []string{"shop"}, exec.calls)
}
