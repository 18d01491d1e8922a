package domain

import "github.com/hammamikhairi/menurandi/internal/quantity"

// Home describes a household: who cooks, what equipment is available and
// what is already in stock.
type Home struct {
	Cooks     []Cook
	Equipment []CookingEquipment
	Stocks    Quantities
}

// ColdStocks returns the stocks kept in the fridge.
func (h *Home) ColdStocks() Quantities { return h.stocksIn(StorageFridge) }

// FrozenStocks returns the stocks kept in the freezer.
func (h *Home) FrozenStocks() Quantities { return h.stocksIn(StorageFreezer) }

// PantryStocks returns the stocks kept in the pantry.
func (h *Home) PantryStocks() Quantities { return h.stocksIn(StoragePantry) }

func (h *Home) stocksIn(s StorageType) Quantities {
	return h.Stocks.Filter(func(i Ingredient, _ quantity.Quantity) bool {
		return i.StoredIn == s
	})
}
