// Package unit is the registry of measurement units used in recipes and the
// conversion engine between them. Every precise unit carries a fixed factor
// to the SI representative of its classification (liter for volume, gram for
// mass); conversions pivot through that representative.
package unit

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrIncompatibleUnits = errors.New("incompatible units")
	ErrUnknownUnit       = errors.New("unknown unit")
)

// Name identifies a unit. The set of names is closed.
type Name string

const (
	Teaspoon   Name = "teaspoon"
	Tablespoon Name = "tablespoon"
	Cup        Name = "cup"
	Milliliter Name = "milliliter"
	Deciliter  Name = "deciliter"
	Liter      Name = "liter"
	Ounce      Name = "ounce"
	Pound      Name = "pound"
	Milligram  Name = "milligram"
	Gram       Name = "gram"
	Kilogram   Name = "kilogram"

	Drop   Name = "drop"
	Pinch  Name = "pinch"
	Dash   Name = "dash"
	Slice  Name = "slice"
	Piece  Name = "piece"
	Bundle Name = "bundle"
)

// Classification tells what a unit measures.
type Classification int

const (
	// Imprecise units (a pinch, a slice) have no SI factor and never convert.
	Imprecise Classification = iota
	Volume
	Mass
)

// String returns a human-readable classification.
func (c Classification) String() string {
	switch c {
	case Imprecise:
		return "imprecise"
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	default:
		return "unknown"
	}
}

// Convention is the measurement tradition a precise unit belongs to.
type Convention int

const (
	ConventionNone Convention = iota
	Metric
	Imperial
)

// String returns a human-readable convention.
func (c Convention) String() string {
	switch c {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return "none"
	}
}

// ParseConvention converts "metric" or "imperial" to a Convention.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return ConventionNone, fmt.Errorf("unknown convention %q", s)
	}
}

// Unit fully describes a measurement unit. It is a comparable value: two
// units are equal when name, classification and convention all match.
type Unit struct {
	Name           Name
	Classification Classification
	Convention     Convention
}

// IsPrecise reports whether the unit has a convention, and therefore an SI
// factor.
func (u Unit) IsPrecise() bool {
	return u.Convention != ConventionNone
}

// SIFactor returns the multiplier from u to its SI representative. It
// reports false unless u is exactly a registered precise unit.
func (u Unit) SIFactor() (float64, bool) {
	e, ok := byName[u.Name]
	if !ok || e.unit != u || !u.IsPrecise() {
		return 0, false
	}
	return e.siFactor, true
}

func (u Unit) String() string {
	return string(u.Name)
}

type entry struct {
	unit     Unit
	siFactor float64
	aliases  []string
}

// registry lists every known unit in display order: within a classification
// and convention, smaller units come first.
var registry = []entry{
	{Unit{Teaspoon, Volume, Imperial}, 0.00492892, []string{"tsp", "teaspoons"}},
	{Unit{Tablespoon, Volume, Imperial}, 0.0147868, []string{"tbsp", "tablespoons"}},
	{Unit{Cup, Volume, Imperial}, 0.2400005716272, []string{"c", "cups"}},
	{Unit{Milliliter, Volume, Metric}, 0.001, []string{"ml", "milliliters", "millilitre"}},
	{Unit{Deciliter, Volume, Metric}, 0.1, []string{"dl", "deciliters", "decilitre"}},
	{Unit{Liter, Volume, Metric}, 1, []string{"l", "liters", "litre"}},
	{Unit{Ounce, Mass, Imperial}, 28.3495, []string{"oz", "ounces"}},
	{Unit{Pound, Mass, Imperial}, 453.592, []string{"lb", "lbs", "pounds"}},
	{Unit{Milligram, Mass, Metric}, 0.001, []string{"mg", "milligrams"}},
	{Unit{Gram, Mass, Metric}, 1, []string{"g", "grams"}},
	{Unit{Kilogram, Mass, Metric}, 1000, []string{"kg", "kilograms"}},

	{Unit{Drop, Imprecise, ConventionNone}, 0, []string{"drops"}},
	{Unit{Pinch, Imprecise, ConventionNone}, 0, []string{"pinches"}},
	{Unit{Dash, Imprecise, ConventionNone}, 0, []string{"dashes"}},
	{Unit{Slice, Imprecise, ConventionNone}, 0, []string{"slices"}},
	{Unit{Piece, Imprecise, ConventionNone}, 0, []string{"pcs", "pieces"}},
	{Unit{Bundle, Imprecise, ConventionNone}, 0, []string{"bundles", "bunch"}},
}

var siRepresentatives = map[Classification]Name{
	Volume: Liter,
	Mass:   Gram,
}

var (
	byName  = make(map[Name]entry, len(registry))
	byAlias = make(map[string]Name)
)

func init() {
	for _, e := range registry {
		byName[e.unit.Name] = e
		byAlias[foldKey(string(e.unit.Name))] = e.unit.Name
		for _, a := range e.aliases {
			byAlias[foldKey(a)] = e.unit.Name
		}
	}
}

// foldKey case-folds s. Casers are not safe for concurrent use.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// SIFactor returns the factor converting one of name to the SI
// representative of its classification. It reports false for imprecise or
// unknown names.
func SIFactor(name Name) (float64, bool) {
	e, ok := byName[name]
	if !ok || !e.unit.IsPrecise() {
		return 0, false
	}
	return e.siFactor, true
}

// SIRepresentative returns the canonical unit name of a classification.
// Imprecise units have none.
func SIRepresentative(c Classification) (Name, error) {
	name, ok := siRepresentatives[c]
	if !ok {
		return "", fmt.Errorf("%w: %s units have no SI representative", ErrIncompatibleUnits, c)
	}
	return name, nil
}

// SIUnit returns the full SI representative unit of a classification.
func SIUnit(c Classification) (Unit, error) {
	name, err := SIRepresentative(c)
	if err != nil {
		return Unit{}, err
	}
	return byName[name].unit, nil
}

// Lookup returns the registered unit with the given name.
func Lookup(name Name) (Unit, error) {
	e, ok := byName[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return e.unit, nil
}

// MustLookup is like Lookup but panics on an unknown name. Meant for static
// recipe data.
func MustLookup(name Name) Unit {
	u, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse resolves a unit from free text: a canonical name, a plural or a
// common abbreviation, in any case.
func Parse(s string) (Unit, error) {
	name, ok := byAlias[foldKey(s)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
	return byName[name].unit, nil
}

// All returns every registered unit in display order.
func All() []Unit {
	out := make([]Unit, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.unit)
	}
	return out
}

// Units returns the units of one classification and convention, smallest
// first.
func Units(c Classification, conv Convention) []Unit {
	var out []Unit
	for _, e := range registry {
		if e.unit.Classification == c && e.unit.Convention == conv {
			out = append(out, e.unit)
		}
	}
	return out
}
