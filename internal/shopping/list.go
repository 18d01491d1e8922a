// Package shopping turns the quantities a menu needs into a shopping list,
// taking what is already in stock at home into account.
package shopping

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/quantity"
)

// epsilon is the relative amount below which a need counts as covered.
const epsilon = 1e-9

// Item is one line of a shopping list.
type Item struct {
	Ingredient domain.Ingredient
	Quantity   quantity.Quantity // amount left to buy
	// Partial is set when part of the need is covered by stock.
	Partial bool
	// StockIgnored is set when stock exists but in a unit that cannot be
	// compared with the need (grams of garlic against garlic cloves).
	StockIgnored bool
}

// List is a shopping list, sorted by storage location then ingredient.
type List struct {
	Items []Item
}

// Len returns the number of items.
func (l List) Len() int { return len(l.Items) }

// ByStorage groups the items by where they will be stored.
func (l List) ByStorage() map[domain.StorageType][]Item {
	out := make(map[domain.StorageType][]Item)
	for _, it := range l.Items {
		out[it.Ingredient.StoredIn] = append(out[it.Ingredient.StoredIn], it)
	}
	return out
}

// Build computes what to buy to cover need. Stock entries match a needed
// ingredient on name, type and storage; an expiration date on the stock
// does not prevent a match, but stock expired before asOf is skipped. A
// zero asOf disables the expiration check.
func Build(need, stock domain.Quantities, asOf domain.Date) (List, error) {
	var items []Item
	for _, ing := range need.Keys() {
		n := need[ing]
		if n.Amount() == 0 {
			continue
		}

		have, ignored := inStock(stock, ing, n, asOf)
		remaining := n.Amount() - have
		if remaining <= n.Amount()*epsilon {
			continue
		}

		buy, err := n.Scale(remaining / n.Amount())
		if err != nil {
			return List{}, fmt.Errorf("shopping for %s: %w", ing.Name, err)
		}
		items = append(items, Item{
			Ingredient:   ing,
			Quantity:     buy,
			Partial:      have > 0,
			StockIgnored: ignored,
		})
	}

	slices.SortFunc(items, func(a, b Item) int {
		return cmp.Or(
			strings.Compare(string(a.Ingredient.StoredIn), string(b.Ingredient.StoredIn)),
			a.Ingredient.Compare(b.Ingredient),
		)
	})
	return List{Items: items}, nil
}

// inStock returns how much of ing is in stock, expressed in n's unit, and
// whether some matching stock had to be ignored because its unit could not
// be converted.
func inStock(stock domain.Quantities, ing domain.Ingredient, n quantity.Quantity, asOf domain.Date) (float64, bool) {
	var (
		have    float64
		ignored bool
	)
	for _, s := range stock.Keys() {
		if !sameIngredient(s, ing) {
			continue
		}
		if !asOf.IsZero() && !s.ExpiresOn.IsZero() && s.ExpiresOn.Compare(asOf) < 0 {
			continue
		}
		q := stock[s]
		if q.Unit() != n.Unit() {
			if err := q.ConvertTo(n.Unit()); err != nil {
				ignored = true
				continue
			}
		}
		have += q.Amount()
	}
	return have, ignored
}

func sameIngredient(a, b domain.Ingredient) bool {
	return a.Name == b.Name && a.Type == b.Type && a.StoredIn == b.StoredIn
}
