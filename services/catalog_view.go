package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"wemovies/libs"
	"wemovies/models"
)

const (
	CatalogErrorMessage = "Ocorreu um erro ao carregar os filmes. Tente novamente mais tarde."
	CatalogEmptyMessage = "Parece que não há nada por aqui :("
)

// CatalogView drives one page instance of the catalog through
// Loading -> {Empty, Error, Loaded}. Terminal states never change; a reload
// mounts a new view.
type CatalogView struct {
	fetcher    CatalogFetcher
	minLoading time.Duration

	mu      sync.RWMutex
	state   models.CatalogState
	mounted bool
	done    chan struct{}
}

func NewCatalogView(fetcher CatalogFetcher, minLoading time.Duration) *CatalogView {
	return &CatalogView{
		fetcher:    fetcher,
		minLoading: minLoading,
		state:      models.CatalogState{Status: models.CatalogLoading},
		done:       make(chan struct{}),
	}
}

// Mount enters Loading and starts the fetch. The fetch outlives ctx's
// cancellation; only its values are kept. Mounting twice does nothing.
func (v *CatalogView) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	v.mu.Unlock()

	go v.load(context.WithoutCancel(ctx))
}

func (v *CatalogView) load(ctx context.Context) {
	start := time.Now()
	items, err := v.fetcher.FetchCatalog(ctx)

	next := models.CatalogState{Status: models.CatalogLoaded, Items: items}
	switch {
	case err != nil:
		next = models.CatalogState{Status: models.CatalogError, Message: CatalogErrorMessage}
		libs.Log.Debug("catalog view entering error state", zap.Error(err))
	case len(items) == 0:
		next = models.CatalogState{Status: models.CatalogEmpty, Message: CatalogEmptyMessage}
	}

	// Loading stays on screen for at least minLoading, whatever the outcome.
	if remaining := v.minLoading - time.Since(start); remaining > 0 {
		time.Sleep(remaining)
	}

	v.mu.Lock()
	v.state = next
	v.mu.Unlock()
	close(v.done)
}

func (v *CatalogView) State() models.CatalogState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Wait blocks until the view reaches a terminal state or ctx is done.
func (v *CatalogView) Wait(ctx context.Context) (models.CatalogState, error) {
	select {
	case <-v.done:
		return v.State(), nil
	case <-ctx.Done():
		return v.State(), ctx.Err()
	}
}

// Done is closed once the view reaches a terminal state.
func (v *CatalogView) Done() <-chan struct{} {
	return v.done
}

func (v *CatalogView) Item(id int64) (models.Item, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, item := range v.state.Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}
