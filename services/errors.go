package services

import (
	"github.com/go-faster/errors"
)

var (
	// ErrCatalogUnavailable matches every failure of a catalog fetch.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrItemNotInCatalog is returned for add intents naming an item that is
	// not part of the session's loaded catalog.
	ErrItemNotInCatalog = errors.New("item not in catalog")
)

// CatalogUnavailableError carries the transport, status or payload failure
// behind an unavailable catalog.
type CatalogUnavailableError struct {
	Cause error
}

func (e *CatalogUnavailableError) Error() string {
	return ErrCatalogUnavailable.Error() + ": " + e.Cause.Error()
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Cause
}

func (e *CatalogUnavailableError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

func catalogUnavailable(cause error) error {
	return &CatalogUnavailableError{Cause: cause}
}
