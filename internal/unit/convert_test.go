package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relTolerance = 1e-9

func TestScalingFactorToSIReconstructsIdentity(t *testing.T) {
	for _, u := range All() {
		if !u.IsPrecise() {
			continue
		}
		si, err := SIUnit(u.Classification)
		require.NoError(t, err)

		f, err := ScalingFactor(u, si)
		require.NoError(t, err, u.String())

		toSI, _ := u.SIFactor()
		assert.InEpsilon(t, toSI, f, relTolerance, u.String())
		// Converting back from the SI unit undoes the factor.
		back, err := ScalingFactor(si, u)
		require.NoError(t, err)
		assert.InEpsilon(t, 1.0, back*toSI, relTolerance, u.String())
	}
}

func TestScalingFactorRoundTrip(t *testing.T) {
	units := All()
	for _, a := range units {
		for _, b := range units {
			if !a.IsPrecise() || !b.IsPrecise() || a.Classification != b.Classification {
				continue
			}
			ab, err := ScalingFactor(a, b)
			require.NoError(t, err)
			ba, err := ScalingFactor(b, a)
			require.NoError(t, err)
			assert.InEpsilon(t, 1.0, ab*ba, relTolerance, "%s <-> %s", a, b)
		}
	}
}

func TestScalingFactorKnownValues(t *testing.T) {
	tests := []struct {
		from, to Name
		want     float64
	}{
		{Tablespoon, Teaspoon, 0.0147868 / 0.00492892},
		{Liter, Milliliter, 1000},
		{Deciliter, Liter, 0.1},
		{Kilogram, Gram, 1000},
		{Pound, Ounce, 453.592 / 28.3495},
		{Cup, Liter, 0.2400005716272},
		{Ounce, Gram, 28.3495},
		{Gram, Gram, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, err := ScalingFactor(MustLookup(tt.from), MustLookup(tt.to))
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, relTolerance)
		})
	}
}

func TestScalingFactorIncompatible(t *testing.T) {
	tests := []struct {
		name     string
		from, to Name
	}{
		{"volume to mass", Cup, Gram},
		{"mass to volume", Kilogram, Liter},
		{"imprecise source", Pinch, Teaspoon},
		{"imprecise target", Teaspoon, Dash},
		{"imprecise both", Pinch, Pinch},
		{"imprecise pair", Slice, Piece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ScalingFactor(MustLookup(tt.from), MustLookup(tt.to))
			assert.ErrorIs(t, err, ErrIncompatibleUnits)
			assert.Zero(t, f)
		})
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(3, MustLookup(Teaspoon), MustLookup(Tablespoon))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-4)

	_, err = Convert(1, MustLookup(Cup), MustLookup(Pound))
	assert.ErrorIs(t, err, ErrIncompatibleUnits)
	assert.False(t, math.IsNaN(got))
}

func TestScalingFactorRejectsMislabeledUnits(t *testing.T) {
	tests := []struct {
		name     string
		from, to Unit
	}{
		{"gram tagged as volume", MustLookup(Liter), Unit{Name: Gram, Classification: Volume, Convention: Metric}},
		{"kilogram tagged as imperial volume", Unit{Name: Kilogram, Classification: Volume, Convention: Imperial}, MustLookup(Liter)},
		{"cup tagged as metric", Unit{Name: Cup, Classification: Volume, Convention: Metric}, MustLookup(Liter)},
		{"unknown name", Unit{Name: "handful", Classification: Volume, Convention: Metric}, MustLookup(Liter)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ScalingFactor(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrIncompatibleUnits)
			assert.Zero(t, f)
		})
	}

	_, ok := Unit{Name: Gram, Classification: Volume, Convention: Metric}.SIFactor()
	assert.False(t, ok)
	f, ok := MustLookup(Gram).SIFactor()
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)
}
