package features

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"wemovies/models"
	"wemovies/services"
)

type cartTestContext struct {
	cart        *services.CartStore
	updates     <-chan models.CartSnapshot
	unsubscribe func()
}

func (c *cartTestContext) reset() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.cart = services.NewCartStore()
	c.updates = nil
	c.unsubscribe = nil
}

func item(id int64, price string) (models.Item, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return models.Item{}, err
	}
	return models.Item{
		ID:    id,
		Title: fmt.Sprintf("Movie %d", id),
		Price: p,
		Image: fmt.Sprintf("https://img.example/%d.png", id),
	}, nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = services.NewCartStore()
	return nil
}

func (c *cartTestContext) iAddItemPriced(id int64, price string) error {
	it, err := item(id, price)
	if err != nil {
		return err
	}
	c.cart.AddItem(it)
	return nil
}

func (c *cartTestContext) iApplyToItem(operation string, id int64) error {
	switch operation {
	case "remove":
		c.cart.RemoveItem(id)
	case "decrease":
		c.cart.DecreaseQuantity(id)
	case "increase":
		c.cart.IncreaseQuantity(id)
	default:
		return fmt.Errorf("unknown operation %q", operation)
	}
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.cart.Clear()
	return nil
}

func (c *cartTestContext) theCartHasLines(n int) error {
	if got := len(c.cart.Snapshot().Lines); got != n {
		return fmt.Errorf("expected %d lines, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) itemHasQuantity(id int64, qty int) error {
	if got := c.cart.QuantityOf(id); got != qty {
		return fmt.Errorf("expected item %d quantity %d, got %d", id, qty, got)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total string) error {
	want, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	if got := c.cart.Snapshot().Total(); !got.Equal(want) {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func (c *cartTestContext) theCartItemCountIs(n int) error {
	if got := c.cart.Snapshot().ItemCount(); got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.cart.Snapshot().Empty() {
		return fmt.Errorf("expected empty cart, got %d lines", len(c.cart.Snapshot().Lines))
	}
	return nil
}

func (c *cartTestContext) theCartLinesAreOrdered(ids string) error {
	lines := c.cart.Snapshot().Lines
	want := strings.Split(ids, ",")
	if len(lines) != len(want) {
		return fmt.Errorf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, raw := range want {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return err
		}
		if lines[i].Item.ID != id {
			return fmt.Errorf("line %d: expected item %d, got %d", i, id, lines[i].Item.ID)
		}
	}
	return nil
}

func (c *cartTestContext) aSubscriberOnTheCart() error {
	c.updates, c.unsubscribe = c.cart.Subscribe()
	return nil
}

func (c *cartTestContext) theSubscriberReceivesASnapshotWithItemCount(n int) error {
	select {
	case snap := <-c.updates:
		if snap.ItemCount() != n {
			return fmt.Errorf("expected snapshot item count %d, got %d", n, snap.ItemCount())
		}
		return nil
	case <-time.After(time.Second):
		return fmt.Errorf("no snapshot published")
	}
}

func InitializeCartScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^item (\d+) priced ([\d.]+) is in the cart$`, tc.iAddItemPriced)
	ctx.Step(`^a subscriber on the cart$`, tc.aSubscriberOnTheCart)

	// When steps
	ctx.Step(`^I add item (\d+) priced ([\d.]+)$`, tc.iAddItemPriced)
	ctx.Step(`^I (remove|decrease|increase) item (\d+)$`, tc.iApplyToItem)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) lines$`, tc.theCartHasLines)
	ctx.Step(`^item (\d+) has quantity (\d+)$`, tc.itemHasQuantity)
	ctx.Step(`^the cart total is ([\d.]+)$`, tc.theCartTotalIs)
	ctx.Step(`^the cart item count is (\d+)$`, tc.theCartItemCountIs)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the cart lines are ordered ([\d,]+)$`, tc.theCartLinesAreOrdered)
	ctx.Step(`^the subscriber receives a snapshot with item count (\d+)$`, tc.theSubscriberReceivesASnapshotWithItemCount)
}

type fixedCatalog struct {
	items []models.Item
	err   error
}

func (f *fixedCatalog) FetchCatalog(ctx context.Context) ([]models.Item, error) {
	return f.items, f.err
}

type catalogTestContext struct {
	catalog    *fixedCatalog
	cart       *services.CartStore
	minLoading time.Duration
	view       *services.CatalogView
	mountedAt  time.Time
	state      models.CatalogState
}

func (c *catalogTestContext) reset() {
	c.catalog = &fixedCatalog{}
	c.cart = services.NewCartStore()
	// Long enough that "Loading" is observable right after mount.
	c.minLoading = 100 * time.Millisecond
	c.view = nil
	c.state = models.CatalogState{}
}

func (c *catalogTestContext) theCatalogReturnsItems(n int) error {
	c.catalog.items = make([]models.Item, 0, n)
	for i := 1; i <= n; i++ {
		it, err := item(int64(i), fmt.Sprintf("%d.90", i))
		if err != nil {
			return err
		}
		c.catalog.items = append(c.catalog.items, it)
	}
	return nil
}

func (c *catalogTestContext) theCatalogIsUnavailable() error {
	c.catalog.err = services.ErrCatalogUnavailable
	return nil
}

func (c *catalogTestContext) theMinimumLoadingTimeIs(ms int) error {
	c.minLoading = time.Duration(ms) * time.Millisecond
	return nil
}

func (c *catalogTestContext) itemFromTheCatalogIsAddedTwice(id int64) error {
	for _, it := range c.catalog.items {
		if it.ID == id {
			c.cart.AddItem(it)
			c.cart.AddItem(it)
			return nil
		}
	}
	return fmt.Errorf("item %d not in catalog", id)
}

func (c *catalogTestContext) theCatalogViewIsMounted() error {
	c.view = services.NewCatalogView(c.catalog, c.minLoading)
	c.mountedAt = time.Now()
	c.view.Mount(context.Background())
	return nil
}

func (c *catalogTestContext) theViewIsLoading() error {
	if got := c.view.State().Status; got != models.CatalogLoading {
		return fmt.Errorf("expected loading, got %s", got)
	}
	return nil
}

func (c *catalogTestContext) settle() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	state, err := c.view.Wait(ctx)
	if err != nil {
		return fmt.Errorf("view did not settle: %w", err)
	}
	c.state = state
	return nil
}

func (c *catalogTestContext) theViewSettlesInState(status string) error {
	if err := c.settle(); err != nil {
		return err
	}
	if string(c.state.Status) != status {
		return fmt.Errorf("expected state %q, got %q", status, c.state.Status)
	}
	return nil
}

func (c *catalogTestContext) theViewSettlesNoSoonerThan(status string, ms int) error {
	if err := c.theViewSettlesInState(status); err != nil {
		return err
	}
	if took, floor := time.Since(c.mountedAt), time.Duration(ms)*time.Millisecond; took < floor {
		return fmt.Errorf("settled after %s, before the %s floor", took, floor)
	}
	return nil
}

func (c *catalogTestContext) theViewShowsItems(n int) error {
	if got := len(c.state.Items); got != n {
		return fmt.Errorf("expected %d items, got %d", n, got)
	}
	return nil
}

func (c *catalogTestContext) theViewMessageIs(msg string) error {
	if c.state.Message != msg {
		return fmt.Errorf("expected message %q, got %q", msg, c.state.Message)
	}
	return nil
}

func (c *catalogTestContext) theCardForItemShowsInCart(id int64, qty int) error {
	for _, card := range services.BuildCatalogCards(c.state.Items, c.cart.Snapshot()) {
		if card.Item.ID == id {
			if card.InCart != qty {
				return fmt.Errorf("expected item %d in cart %d, got %d", id, qty, card.InCart)
			}
			return nil
		}
	}
	return fmt.Errorf("no card for item %d", id)
}

func InitializeCatalogScenario(ctx *godog.ScenarioContext) {
	tc := &catalogTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the catalog returns (\d+) items$`, tc.theCatalogReturnsItems)
	ctx.Step(`^the catalog is unavailable$`, tc.theCatalogIsUnavailable)
	ctx.Step(`^the minimum loading time is (\d+) milliseconds$`, tc.theMinimumLoadingTimeIs)
	ctx.Step(`^item (\d+) from the catalog is added to the cart twice$`, tc.itemFromTheCatalogIsAddedTwice)

	// When steps
	ctx.Step(`^the catalog view is mounted$`, tc.theCatalogViewIsMounted)

	// Then steps
	ctx.Step(`^the view is loading$`, tc.theViewIsLoading)
	ctx.Step(`^the view settles in state "([^"]*)"$`, tc.theViewSettlesInState)
	ctx.Step(`^the view settles in state "([^"]*)" no sooner than (\d+) milliseconds$`, tc.theViewSettlesNoSoonerThan)
	ctx.Step(`^the view shows (\d+) items$`, tc.theViewShowsItems)
	ctx.Step(`^the view message is "([^"]*)"$`, tc.theViewMessageIs)
	ctx.Step(`^the card for item (\d+) shows (\d+) in cart$`, tc.theCardForItemShowsInCart)
}

func runSuite(t *testing.T, name string, init func(*godog.ScenarioContext), path string) {
	suite := godog.TestSuite{
		Name:                name,
		ScenarioInitializer: init,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{path},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func TestCartFeatures(t *testing.T) {
	runSuite(t, "cart", InitializeCartScenario, "cart.feature")
}

func TestCatalogFeatures(t *testing.T) {
	runSuite(t, "catalog", InitializeCatalogScenario, "catalog.feature")
}
