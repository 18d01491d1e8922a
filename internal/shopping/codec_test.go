package shopping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/menurandi/internal/domain"
	"github.com/hammamikhairi/menurandi/internal/quantity"
	"github.com/hammamikhairi/menurandi/internal/unit"
)

func TestCodecPreservesList(t *testing.T) {
	dated := milk
	dated.ExpiresOn = domain.Date{Year: 2026, Month: time.November, Day: 2}

	in := List{Items: []Item{
		{Ingredient: peas, Quantity: quantity.MustNew(unit.Gram, 300)},
		{Ingredient: dated, Quantity: quantity.MustNew(unit.Liter, 0.75), Partial: true},
		{Ingredient: garlic, Quantity: quantity.MustNew(unit.Teaspoon, 2), StockIgnored: true},
		{Ingredient: salt, Quantity: quantity.MustNew(unit.Pinch, 2)},
	}}

	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, in.Len(), out.Len())
	for i := range in.Items {
		assert.Equal(t, in.Items[i].Ingredient, out.Items[i].Ingredient)
		assert.Equal(t, in.Items[i].Quantity.Unit(), out.Items[i].Quantity.Unit())
		assert.InDelta(t, in.Items[i].Quantity.Amount(), out.Items[i].Quantity.Amount(), 1e-12)
		assert.Equal(t, in.Items[i].Partial, out.Items[i].Partial)
		assert.Equal(t, in.Items[i].StockIgnored, out.Items[i].StockIgnored)
	}
}

func TestDecodeRejectsUnknownUnit(t *testing.T) {
	bad := List{Items: []Item{{Ingredient: salt, Quantity: quantity.Quantity{}}}}
	data, err := Marshal(bad)
	require.NoError(t, err)

	_, err = Unmarshal(data)
	assert.ErrorIs(t, err, unit.ErrUnknownUnit)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Unmarshal([]byte{0xc1})
	assert.Error(t, err)
}
