package quantity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/menurandi/internal/unit"
)

// inUnit returns q already converted to name, bypassing normalization.
func inUnit(t *testing.T, q Quantity, name unit.Name) Quantity {
	t.Helper()
	require.NoError(t, q.ConvertTo(unit.MustLookup(name)))
	return q
}

// amountIn converts a copy of q to name and returns the amount.
func amountIn(t *testing.T, q Quantity, name unit.Name) float64 {
	t.Helper()
	return inUnit(t, q, name).Amount()
}

func TestAddNormalizedQuantities(t *testing.T) {
	got, err := Add(
		Map[string]{"apple": MustNew(unit.Cup, 2)},
		Map[string]{"apple": MustNew(unit.Liter, 1)},
	)
	require.NoError(t, err)
	require.Len(t, got, 1)

	apple := got["apple"]
	assert.Equal(t, unit.Liter, apple.Unit().Name)
	assert.InDelta(t, 2*0.2400005716272+1, apple.Amount(), 1e-12)
}

func TestAddFirstWriterChoosesUnit(t *testing.T) {
	cups := inUnit(t, MustNew(unit.Cup, 2), unit.Cup)
	liter := MustNew(unit.Liter, 1)

	got, err := Add(Map[string]{"apple": cups}, Map[string]{"apple": liter})
	require.NoError(t, err)

	apple := got["apple"]
	assert.Equal(t, unit.Cup, apple.Unit().Name)
	assert.InDelta(t, 2+1/0.2400005716272, apple.Amount(), 1e-9)

	// Reversed order keeps liters.
	got, err = Add(Map[string]{"apple": liter}, Map[string]{"apple": cups})
	require.NoError(t, err)
	assert.Equal(t, unit.Liter, got["apple"].Unit().Name)
	assert.InDelta(t, 2*0.2400005716272+1, got["apple"].Amount(), 1e-9)
}

func TestAddGarlicAcrossRecipesIsOrderIndependent(t *testing.T) {
	tsp := Map[string]{"garlic": inUnit(t, MustNew(unit.Teaspoon, 2), unit.Teaspoon)}
	tbsp := Map[string]{"garlic": inUnit(t, MustNew(unit.Tablespoon, 1), unit.Tablespoon)}
	cup := Map[string]{"garlic": inUnit(t, MustNew(unit.Cup, 0.25), unit.Cup)}

	forward, err := Add(tsp, tbsp, cup)
	require.NoError(t, err)
	backward, err := Add(cup, tbsp, tsp)
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.Equal(t, unit.Teaspoon, forward["garlic"].Unit().Name)
	assert.Equal(t, unit.Cup, backward["garlic"].Unit().Name)

	want := 2*0.00492892 + 0.0147868 + 0.25*0.2400005716272
	assert.InEpsilon(t, want, amountIn(t, forward["garlic"], unit.Liter), 1e-9)
	assert.InEpsilon(t, want, amountIn(t, backward["garlic"], unit.Liter), 1e-9)
}

func TestAddKeepsDistinctKeys(t *testing.T) {
	got, err := Add(
		Map[string]{"salt": MustNew(unit.Pinch, 1), "flour": MustNew(unit.Gram, 100)},
		Map[string]{"salt": MustNew(unit.Pinch, 2), "sugar": MustNew(unit.Gram, 50)},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 3.0, got["salt"].Amount())
	assert.Equal(t, 100.0, got["flour"].Amount())
	assert.Equal(t, 50.0, got["sugar"].Amount())
}

func TestAddDoesNotMutateInputs(t *testing.T) {
	first := Map[string]{"milk": MustNew(unit.Liter, 1)}
	second := Map[string]{"milk": inUnit(t, MustNew(unit.Cup, 1), unit.Cup)}

	_, err := Add(first, second)
	require.NoError(t, err)

	assert.Equal(t, 1.0, first["milk"].Amount())
	assert.Equal(t, unit.Cup, second["milk"].Unit().Name)
	assert.InDelta(t, 1.0, second["milk"].Amount(), 1e-12)
}

func TestAddFailsOnIncompatibleEntries(t *testing.T) {
	tests := []struct {
		name string
		ms   []Map[string]
		want error
	}{
		{
			"volume then mass",
			[]Map[string]{{"butter": MustNew(unit.Cup, 1)}, {"butter": MustNew(unit.Gram, 100)}},
			unit.ErrIncompatibleUnits,
		},
		{
			"piece then gram",
			[]Map[string]{{"egg": MustNew(unit.Piece, 2)}, {"egg": MustNew(unit.Gram, 50)}},
			ErrImpreciseUnit,
		},
		{
			"pinch then dash",
			[]Map[string]{{"salt": MustNew(unit.Pinch, 1)}, {"salt": MustNew(unit.Dash, 1)}},
			ErrImpreciseUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.ms...)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

type ingredientKey struct{ name string }

func (k ingredientKey) Compare(o ingredientKey) int { return strings.Compare(k.name, o.name) }

func TestKeysSortedForComparer(t *testing.T) {
	m := Map[ingredientKey]{
		{"onion"}:  MustNew(unit.Piece, 1),
		{"butter"}: MustNew(unit.Gram, 10),
		{"garlic"}: MustNew(unit.Piece, 2),
	}
	assert.Equal(t, []ingredientKey{{"butter"}, {"garlic"}, {"onion"}}, m.Keys())
}

func TestScaleMap(t *testing.T) {
	m := Map[string]{"rice": MustNew(unit.Gram, 300), "salt": MustNew(unit.Pinch, 2)}

	got, err := Scale(m, 1.0/3)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got["rice"].Amount(), 1e-9)
	assert.InDelta(t, 2.0/3, got["salt"].Amount(), 1e-9)
	assert.Equal(t, 300.0, m["rice"].Amount())
}

func TestScaleMapByOneReturnsEqualCopy(t *testing.T) {
	m := Map[string]{"rice": MustNew(unit.Gram, 300)}

	got, err := Scale(m, 1)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	got["rice"] = MustNew(unit.Gram, 1)
	assert.Equal(t, 300.0, m["rice"].Amount(), "scaled map must not alias the input")
}

func TestScaleMapInvalidFactor(t *testing.T) {
	m := Map[string]{"rice": MustNew(unit.Gram, 300)}

	for _, f := range []float64{0, -3} {
		got, err := Scale(m, f)
		assert.ErrorIs(t, err, ErrInvalidScaleFactor)
		assert.Nil(t, got)
	}

	_, err := Scale(Map[string]{}, 0)
	assert.ErrorIs(t, err, ErrInvalidScaleFactor)
}

func TestNormalizeThenScaleRoundTrip(t *testing.T) {
	recipe := Map[string]{
		"flour": MustNew(unit.Cup, 2),
		"eggs":  MustNew(unit.Piece, 4),
		"salt":  MustNew(unit.Pinch, 1),
	}

	perServing, err := Scale(recipe, 1.0/4)
	require.NoError(t, err)
	total, err := Add(perServing)
	require.NoError(t, err)
	back, err := Scale(total, 4)
	require.NoError(t, err)

	for k, q := range recipe {
		assert.Equal(t, q.Unit(), back[k].Unit(), k)
		assert.InDelta(t, q.Amount(), back[k].Amount(), 1e-12, k)
	}
}

func TestFilterAndClone(t *testing.T) {
	m := Map[string]{"rice": MustNew(unit.Gram, 300), "salt": MustNew(unit.Pinch, 2)}

	precise := m.Filter(func(_ string, q Quantity) bool { return q.Unit().IsPrecise() })
	assert.Len(t, precise, 1)
	assert.Contains(t, precise, "rice")

	c := m.Clone()
	delete(c, "rice")
	assert.Len(t, m, 2)
}
