package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wemovies/models"
)

func TestSessionStore_ResolveCreatesAndReuses(t *testing.T) {
	store := NewSessionStore(&stubFetcher{}, 0, 0)

	sess, created := store.Resolve("")
	require.True(t, created)
	require.NotEmpty(t, sess.ID)

	again, created := store.Resolve(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)
	assert.Same(t, sess.Cart, again.Cart)

	other, created := store.Resolve("unknown-id")
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, other.ID)
	assert.Equal(t, 2, store.Len())
}

func TestSessionStore_CartsAreIsolated(t *testing.T) {
	store := NewSessionStore(&stubFetcher{}, 0, 0)
	a, _ := store.Resolve("")
	b, _ := store.Resolve("")

	a.Cart.AddItem(movie(1, "10"))

	assert.Equal(t, 1, a.Cart.QuantityOf(1))
	assert.Equal(t, 0, b.Cart.QuantityOf(1))
}

func TestSessionStore_CurrentCatalogMountsOnce(t *testing.T) {
	fetcher := &stubFetcher{items: []models.Item{movie(1, "1")}}
	store := NewSessionStore(fetcher, 0, 0)
	sess, _ := store.Resolve("")

	first := store.CurrentCatalog(context.Background(), sess)
	second := store.CurrentCatalog(context.Background(), sess)
	assert.Same(t, first, second)
	waitTerminal(t, first)
	assert.Equal(t, int32(1), fetcher.calls.Load())

	reloaded := store.CatalogForPage(context.Background(), sess, true)
	assert.NotSame(t, first, reloaded)
	assert.Same(t, reloaded, sess.CatalogView())
	waitTerminal(t, reloaded)
	assert.Equal(t, int32(2), fetcher.calls.Load())
}

func TestSessionStore_CatalogForPageReusesLoadedView(t *testing.T) {
	fetcher := &stubFetcher{items: []models.Item{movie(1, "1")}}
	store := NewSessionStore(fetcher, 0, 0)
	sess, _ := store.Resolve("")

	first := store.CatalogForPage(context.Background(), sess, false)
	waitTerminal(t, first)
	second := store.CatalogForPage(context.Background(), sess, false)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), fetcher.calls.Load())
}

func TestSessionStore_CatalogForPageRemountsAfterFailure(t *testing.T) {
	fetcher := &stubFetcher{err: ErrCatalogUnavailable}
	store := NewSessionStore(fetcher, 0, 0)
	sess, _ := store.Resolve("")

	first := store.CatalogForPage(context.Background(), sess, false)
	assert.Equal(t, models.CatalogError, waitTerminal(t, first).Status)

	// Not yet rendered: the next page load must show the error, not refetch.
	assert.Same(t, first, store.CatalogForPage(context.Background(), sess, false))
	assert.Equal(t, int32(1), fetcher.calls.Load())

	sess.MarkShown(first)
	fetcher.err = nil
	fetcher.items = []models.Item{movie(1, "1")}
	second := store.CatalogForPage(context.Background(), sess, false)

	assert.NotSame(t, first, second)
	assert.Equal(t, models.CatalogLoaded, waitTerminal(t, second).Status)
	assert.Equal(t, models.CatalogError, first.State().Status)
}

func TestSessionStore_Sweep(t *testing.T) {
	store := NewSessionStore(&stubFetcher{}, 0, 0)
	stale, _ := store.Resolve("")
	fresh, _ := store.Resolve("")
	stale.touch(time.Now().Add(-2 * time.Hour))

	removed := store.Sweep(time.Hour)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
	got, created := store.Resolve(fresh.ID)
	assert.False(t, created)
	assert.Same(t, fresh, got)
}

func TestSessionStore_MarkShownIgnoresLoading(t *testing.T) {
	store := NewSessionStore(&stubFetcher{err: ErrCatalogUnavailable}, time.Hour, 0)
	sess, _ := store.Resolve("")

	view := store.CatalogForPage(context.Background(), sess, false)
	sess.MarkShown(view)

	assert.Same(t, view, store.CatalogForPage(context.Background(), sess, false))
}

func TestSessionStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store := NewSessionStore(&stubFetcher{}, 0, 2)
	oldest, _ := store.Resolve("")
	middle, _ := store.Resolve("")

	// Using oldest makes middle the eviction candidate.
	_, created := store.Resolve(oldest.ID)
	require.False(t, created)
	store.Resolve("")

	assert.Equal(t, 2, store.Len())
	_, created = store.Resolve(middle.ID)
	assert.True(t, created)
}
