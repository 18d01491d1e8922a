package unit

import "fmt"

// ScalingFactor returns the multiplier that converts an amount expressed in
// from into the same amount expressed in to. Both units must be precise and
// share a classification. The conversion pivots through the SI
// representative, so any convention pair works the same way.
func ScalingFactor(from, to Unit) (float64, error) {
	if from.Classification != to.Classification {
		return 0, fmt.Errorf("%w: %s is %s, %s is %s",
			ErrIncompatibleUnits, from, from.Classification, to, to.Classification)
	}
	toSI, ok := from.SIFactor()
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a registered precise unit", ErrIncompatibleUnits, from)
	}
	fromSI, ok := to.SIFactor()
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a registered precise unit", ErrIncompatibleUnits, to)
	}
	return toSI / fromSI, nil
}

// Convert expresses amount, given in from, in to.
func Convert(amount float64, from, to Unit) (float64, error) {
	f, err := ScalingFactor(from, to)
	if err != nil {
		return 0, err
	}
	return amount * f, nil
}
