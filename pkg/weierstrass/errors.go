package weierstrass

import (
	"fmt"
	"math/big"
)

// InvalidPointError reports that a point argument does not satisfy the
// curve equation of the curve it was passed to.
type InvalidPointError struct {
	Point CurvePoint
}

func (e *InvalidPointError) Error() string {
	return fmt.Sprintf("weierstrass: point %s is not on the curve", e.Point)
}

// InvalidScalarError reports that a scalar is outside the valid multiplier
// domain. Scalar multiplication is defined for positive integers only.
type InvalidScalarError struct {
	Scalar *big.Int
}

func (e *InvalidScalarError) Error() string {
	return fmt.Sprintf("weierstrass: invalid scalar %s", e.Scalar)
}
