// Package quantity implements amounts of an ingredient in a given unit and
// the aggregation of per-ingredient quantity maps.
//
// Precise quantities are normalized eagerly: New stores them in the SI
// representative of their classification (liters or grams), so quantities
// built through New of the same classification always share a unit. Use
// Quantity.In to present an amount in a cook-friendly unit again.
package quantity

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/hammamikhairi/menurandi/internal/unit"
)

var (
	ErrMismatchedUnit     = errors.New("mismatched units")
	ErrImpreciseUnit      = errors.New("imprecise unit cannot be converted")
	ErrInvalidScaleFactor = errors.New("scale factor must be positive")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")
)

// Quantity is an amount expressed in a unit. The zero value is an empty
// amount of an unnamed imprecise unit.
type Quantity struct {
	unit   unit.Unit
	amount float64
}

// New creates a quantity. Precise units are converted to their SI
// representative immediately.
func New(u unit.Unit, amount float64) (Quantity, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Quantity{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	registered, err := unit.Lookup(u.Name)
	if err != nil {
		return Quantity{}, err
	}
	if registered != u {
		return Quantity{}, fmt.Errorf("%w: %s is not a %s %s unit",
			unit.ErrUnknownUnit, u, u.Convention, u.Classification)
	}

	q := Quantity{unit: u, amount: amount}
	if !u.IsPrecise() {
		return q, nil
	}
	si, err := unit.SIUnit(u.Classification)
	if err != nil {
		return Quantity{}, err
	}
	if err := q.ConvertTo(si); err != nil {
		return Quantity{}, err
	}
	return q, nil
}

// MustNew is like New but panics on error. Meant for static data.
func MustNew(name unit.Name, amount float64) Quantity {
	q, err := New(unit.MustLookup(name), amount)
	if err != nil {
		panic(err)
	}
	return q
}

// Unit returns the unit the amount is currently expressed in.
func (q Quantity) Unit() unit.Unit { return q.unit }

// Amount returns the amount in Unit().
func (q Quantity) Amount() float64 { return q.amount }

// Add returns q + o. Both must be expressed in the identical unit; Add never
// converts.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.unit != o.unit {
		return Quantity{}, fmt.Errorf("%w: cannot add %s to %s", ErrMismatchedUnit, o.unit, q.unit)
	}
	return result(q.unit, q.amount+o.amount)
}

// Accumulate adds o to q in place, with the same rules as Add.
func (q *Quantity) Accumulate(o Quantity) error {
	sum, err := q.Add(o)
	if err != nil {
		return err
	}
	*q = sum
	return nil
}

// ConvertTo re-expresses q in u. On error q is left untouched.
func (q *Quantity) ConvertTo(u unit.Unit) error {
	if !q.unit.IsPrecise() || !u.IsPrecise() {
		return fmt.Errorf("%w: %s to %s", ErrImpreciseUnit, q.unit, u)
	}
	f, err := unit.ScalingFactor(q.unit, u)
	if err != nil {
		return err
	}
	converted, err := result(u, q.amount*f)
	if err != nil {
		return err
	}
	*q = converted
	return nil
}

// Scale returns q with its amount multiplied by factor.
func (q Quantity) Scale(factor float64) (Quantity, error) {
	if err := checkFactor(factor); err != nil {
		return Quantity{}, err
	}
	return result(q.unit, q.amount*factor)
}

// result guards arithmetic that overflowed.
func result(u unit.Unit, amount float64) (Quantity, error) {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Quantity{}, fmt.Errorf("%w: %s result is %v", ErrInvalidAmount, u, amount)
	}
	return Quantity{unit: u, amount: amount}, nil
}

func checkFactor(factor float64) error {
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidScaleFactor, factor)
	}
	return nil
}

// In returns q expressed in the largest unit of conv that keeps the amount at
// or above one, falling back to the smallest unit of conv. Imprecise
// quantities are returned as they are.
func (q Quantity) In(conv unit.Convention) Quantity {
	if !q.unit.IsPrecise() {
		return q
	}
	candidates := unit.Units(q.unit.Classification, conv)
	if len(candidates) == 0 {
		return q
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		v, err := unit.Convert(q.amount, q.unit, c)
		if err == nil && v >= 1 {
			best = c
		}
	}
	out := q
	if err := out.ConvertTo(best); err != nil {
		return q
	}
	return out
}

// String formats the quantity as "<amount> <unit>", rounded to three
// decimals.
func (q Quantity) String() string {
	amount := strconv.FormatFloat(math.Round(q.amount*1000)/1000, 'f', -1, 64)
	if q.unit.Name == "" {
		return amount
	}
	return amount + " " + q.unit.String()
}
