package models

import "github.com/shopspring/decimal"

type CartLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is a consistent copy of a cart at one version. Derived values
// are computed on read.
type CartSnapshot struct {
	Version uint64     `json:"version"`
	Lines   []CartLine `json:"lines"`
}

func (s CartSnapshot) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

func (s CartSnapshot) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

func (s CartSnapshot) Empty() bool {
	return len(s.Lines) == 0
}

type CartRow struct {
	ItemID    int64  `json:"item_id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type CartPage struct {
	Empty     bool      `json:"empty"`
	Rows      []CartRow `json:"rows"`
	Total     string    `json:"total"`
	ItemCount int       `json:"item_count"`
	Version   uint64    `json:"version"`
}

// CartSummary feeds the page header and the change stream.
type CartSummary struct {
	ItemCount int    `json:"item_count"`
	Total     string `json:"total"`
	Version   uint64 `json:"version"`
}
