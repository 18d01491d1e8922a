package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSIFactor(t *testing.T) {
	tests := []struct {
		name   Name
		want   float64
		wantOK bool
	}{
		{Teaspoon, 0.00492892, true},
		{Cup, 0.2400005716272, true},
		{Liter, 1, true},
		{Pound, 453.592, true},
		{Kilogram, 1000, true},
		{Pinch, 0, false},
		{Bundle, 0, false},
		{Name("furlong"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			got, ok := SIFactor(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSIRepresentative(t *testing.T) {
	name, err := SIRepresentative(Volume)
	require.NoError(t, err)
	assert.Equal(t, Liter, name)

	name, err = SIRepresentative(Mass)
	require.NoError(t, err)
	assert.Equal(t, Gram, name)

	_, err = SIRepresentative(Imprecise)
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
}

func TestPreciseUnitsShareClassificationWithSIUnit(t *testing.T) {
	for _, u := range All() {
		if !u.IsPrecise() {
			continue
		}
		si, err := SIUnit(u.Classification)
		require.NoError(t, err, u.String())
		assert.Equal(t, u.Classification, si.Classification, u.String())
		assert.Equal(t, Metric, si.Convention, u.String())

		f, ok := si.SIFactor()
		require.True(t, ok)
		assert.Equal(t, 1.0, f, "SI unit %s must have factor 1", si)
	}
}

func TestImpreciseUnitsHaveNoConvention(t *testing.T) {
	for _, u := range All() {
		if u.Classification == Imprecise {
			assert.Equal(t, ConventionNone, u.Convention, u.String())
			assert.False(t, u.IsPrecise(), u.String())
		} else {
			assert.True(t, u.IsPrecise(), u.String())
		}
	}
}

func TestUnitEqualityIsStructural(t *testing.T) {
	a := MustLookup(Cup)
	b := Unit{Name: Cup, Classification: Volume, Convention: Imperial}
	assert.True(t, a == b)

	c := Unit{Name: Cup, Classification: Volume, Convention: Metric}
	assert.False(t, a == c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"cup", Cup},
		{"Cups", Cup},
		{"TBSP", Tablespoon},
		{" tsp ", Teaspoon},
		{"ml", Milliliter},
		{"Litre", Liter},
		{"kg", Kilogram},
		{"oz", Ounce},
		{"lbs", Pound},
		{"pinch", Pinch},
		{"bunch", Bundle},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			u, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.Name)
		})
	}

	_, err := Parse("handful")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(Name("stone"))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestUnitsOrdering(t *testing.T) {
	got := Units(Volume, Metric)
	require.Len(t, got, 3)
	assert.Equal(t, []Name{Milliliter, Deciliter, Liter}, []Name{got[0].Name, got[1].Name, got[2].Name})

	assert.Len(t, Units(Mass, Imperial), 2)
	assert.Empty(t, Units(Imprecise, Metric))
}

func TestParseConvention(t *testing.T) {
	c, err := ParseConvention("Imperial")
	require.NoError(t, err)
	assert.Equal(t, Imperial, c)

	_, err = ParseConvention("nautical")
	assert.Error(t, err)
}
