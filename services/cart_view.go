package services

import (
	"wemovies/models"
	"wemovies/utils"
)

func BuildCartPage(snap models.CartSnapshot) models.CartPage {
	page := models.CartPage{
		Empty:     snap.Empty(),
		Rows:      make([]models.CartRow, 0, len(snap.Lines)),
		Total:     utils.FormatPrice(snap.Total()),
		ItemCount: snap.ItemCount(),
		Version:   snap.Version,
	}
	for _, line := range snap.Lines {
		page.Rows = append(page.Rows, models.CartRow{
			ItemID:    line.Item.ID,
			Title:     line.Item.Title,
			Image:     line.Item.Image,
			UnitPrice: utils.FormatPrice(line.Item.Price),
			Quantity:  line.Quantity,
			Subtotal:  utils.FormatPrice(line.Subtotal()),
		})
	}
	return page
}

func BuildCartSummary(snap models.CartSnapshot) models.CartSummary {
	return models.CartSummary{
		ItemCount: snap.ItemCount(),
		Total:     utils.FormatPrice(snap.Total()),
		Version:   snap.Version,
	}
}

// BuildCatalogCards pairs each loaded item with its quantity in cart.
func BuildCatalogCards(items []models.Item, snap models.CartSnapshot) []models.CatalogCard {
	inCart := make(map[int64]int, len(snap.Lines))
	for _, line := range snap.Lines {
		inCart[line.Item.ID] = line.Quantity
	}

	cards := make([]models.CatalogCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, models.CatalogCard{
			Item:         item,
			DisplayPrice: utils.FormatPrice(item.Price),
			InCart:       inCart[item.ID],
		})
	}
	return cards
}
