package quantity

import (
	"fmt"
	"maps"
	"slices"
)

// Map holds how much of each key (typically an ingredient) is needed. The
// same type is used for a recipe, a meal, a day or a whole menu.
type Map[K comparable] map[K]Quantity

// Comparer is implemented by keys with a total order. Aggregation visits the
// keys of each input map in that order, which makes the unit chosen for a
// key independent of Go's map iteration order.
type Comparer[K any] interface {
	Compare(other K) int
}

// Keys returns the keys of m, sorted when K implements Comparer.
func (m Map[K]) Keys() []K {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b K) int {
		if c, ok := any(a).(Comparer[K]); ok {
			return c.Compare(b)
		}
		return 0
	})
	return keys
}

// Clone returns a shallow copy of m. Quantities are values, so the copy is
// fully independent.
func (m Map[K]) Clone() Map[K] {
	out := make(Map[K], len(m))
	maps.Copy(out, m)
	return out
}

// Filter returns a new map with the entries for which keep returns true.
func (m Map[K]) Filter(keep func(K, Quantity) bool) Map[K] {
	out := make(Map[K])
	for k, q := range m {
		if keep(k, q) {
			out[k] = q
		}
	}
	return out
}

// Add folds ms left to right into a new map. The first quantity seen for a
// key decides the unit of that key; later quantities in another unit are
// converted to it before being added. The inputs are not modified. Any
// error aborts the whole fold.
func Add[K comparable](ms ...Map[K]) (Map[K], error) {
	out := make(Map[K])
	for i, m := range ms {
		for _, k := range m.Keys() {
			q := m[k]
			acc, ok := out[k]
			if !ok {
				out[k] = q
				continue
			}
			if q.unit != acc.unit {
				if err := q.ConvertTo(acc.unit); err != nil {
					return nil, fmt.Errorf("merging %v (map %d): %w", k, i, err)
				}
			}
			if err := acc.Accumulate(q); err != nil {
				return nil, fmt.Errorf("merging %v (map %d): %w", k, i, err)
			}
			out[k] = acc
		}
	}
	return out, nil
}

// Scale returns a new map with every quantity of m multiplied by factor.
func Scale[K comparable](m Map[K], factor float64) (Map[K], error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	out := make(Map[K], len(m))
	for k, q := range m {
		scaled, err := q.Scale(factor)
		if err != nil {
			return nil, fmt.Errorf("scaling %v: %w", k, err)
		}
		out[k] = scaled
	}
	return out, nil
}
