package shopping

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/quantity"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

// wireList is the msgpack form of a List.
type wireList struct {
	Items []wireItem `msgpack:"items,omitempty"`
}

type wireItem struct {
	Name         string  `msgpack:"name"`
	Type         string  `msgpack:"type,omitempty"`
	StoredIn     string  `msgpack:"stored_in,omitempty"`
	ExpiresOn    string  `msgpack:"expires_on,omitempty"`
	Unit         string  `msgpack:"unit"`
	Amount       float64 `msgpack:"amount"`
	Partial      bool    `msgpack:"partial,omitempty"`
	StockIgnored bool    `msgpack:"stock_ignored,omitempty"`
}

// Encode writes l to w as msgpack.
func Encode(w io.Writer, l List) error {
	wl := wireList{Items: make([]wireItem, 0, len(l.Items))}
	for _, it := range l.Items {
		wl.Items = append(wl.Items, wireItem{
			Name:         it.Ingredient.Name,
			Type:         string(it.Ingredient.Type),
			StoredIn:     string(it.Ingredient.StoredIn),
			ExpiresOn:    it.Ingredient.ExpiresOn.String(),
			Unit:         string(it.Quantity.Unit().Name),
			Amount:       it.Quantity.Amount(),
			Partial:      it.Partial,
			StockIgnored: it.StockIgnored,
		})
	}
	if err := msgpack.NewEncoder(w).Encode(&wl); err != nil {
		return fmt.Errorf("encode shopping list: %w", err)
	}
	return nil
}

// Decode reads a msgpack shopping list written by Encode. Precise amounts
// come back normalized, like any quantity built with quantity.New.
func Decode(r io.Reader) (List, error) {
	var wl wireList
	if err := msgpack.NewDecoder(r).Decode(&wl); err != nil {
		return List{}, fmt.Errorf("decode shopping list: %w", err)
	}

	l := List{Items: make([]Item, 0, len(wl.Items))}
	for _, wi := range wl.Items {
		u, err := unit.Lookup(unit.Name(wi.Unit))
		if err != nil {
			return List{}, fmt.Errorf("decode %s: %w", wi.Name, err)
		}
		q, err := quantity.New(u, wi.Amount)
		if err != nil {
			return List{}, fmt.Errorf("decode %s: %w", wi.Name, err)
		}
		ing := domain.Ingredient{
			Name:     wi.Name,
			Type:     domain.IngredientType(wi.Type),
			StoredIn: domain.StorageType(wi.StoredIn),
		}
		if wi.ExpiresOn != "" {
			if ing.ExpiresOn, err = domain.ParseDate(wi.ExpiresOn); err != nil {
				return List{}, fmt.Errorf("decode %s: %w", wi.Name, err)
			}
		}
		l.Items = append(l.Items, Item{
			Ingredient:   ing,
			Quantity:     q,
			Partial:      wi.Partial,
			StockIgnored: wi.StockIgnored,
		})
	}
	return l, nil
}

// Marshal returns the msgpack encoding of l.
func Marshal(l List) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a msgpack shopping list.
func Unmarshal(data []byte) (List, error) {
	return Decode(bytes.NewReader(data))
}
