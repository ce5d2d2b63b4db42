package models

import "github.com/shopspring/decimal"

func init() {
	// Prices leave the API as JSON numbers, matching the catalog payload.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item is a purchasable catalog entry. Items are immutable once fetched.
type Item struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// CatalogItem is the wire shape of one entry in the catalog payload. Pointer
// fields let validation tell a missing value from a zero one.
type CatalogItem struct {
	ID    *int64           `json:"id" validate:"required"`
	Title string           `json:"title" validate:"required"`
	Price *decimal.Decimal `json:"price" validate:"required"`
	Image string           `json:"image" validate:"required,url"`
}

type CatalogResponse struct {
	Products []CatalogItem `json:"products" validate:"required,dive"`
}

type CatalogStatus string

const (
	CatalogLoading CatalogStatus = "loading"
	CatalogEmpty   CatalogStatus = "empty"
	CatalogError   CatalogStatus = "error"
	CatalogLoaded  CatalogStatus = "loaded"
)

// Terminal reports whether the status can no longer change for a view instance.
func (s CatalogStatus) Terminal() bool {
	return s != CatalogLoading
}

type CatalogState struct {
	Status  CatalogStatus `json:"status"`
	Items   []Item        `json:"items,omitempty"`
	Message string        `json:"message,omitempty"`
}

// CatalogCard pairs a loaded item with its current quantity in the cart.
type CatalogCard struct {
	Item         Item   `json:"item"`
	DisplayPrice string `json:"display_price"`
	InCart       int    `json:"in_cart"`
}
