package weierstrass

import (
	"fmt"
	"math/big"
)

// CurvePoint is a point on a short-Weierstrass curve: either an affine
// coordinate pair or the identity element (the point at infinity).
//
// The identity is the formal neutral element of the curve group; it does
// not correspond to an algebraic (x, y) pair. It behaves as:
//
//	A + Identity = A
//	Identity + Identity = Identity
//	A + (-A) = Identity
//
// CurvePoint is an immutable value; no curve operation modifies its
// arguments, and every result is a freshly constructed point.
type CurvePoint struct {
	x, y *big.Int
}

// NewPoint returns the affine point (x, y). The coordinates are copied;
// the caller keeps ownership of the arguments. Both coordinates must be
// non-negative and, for the point to lie on a curve over p, less than p.
func NewPoint(x, y *big.Int) CurvePoint {
	return CurvePoint{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// Identity returns the curve group's neutral element.
func Identity() CurvePoint {
	return CurvePoint{}
}

// IsIdentity reports whether the point is the identity element.
func (p CurvePoint) IsIdentity() bool {
	return p.x == nil
}

// Coordinates returns copies of the affine coordinates, or (nil, nil) for
// the identity element.
func (p CurvePoint) Coordinates() (x, y *big.Int) {
	if p.IsIdentity() {
		return nil, nil
	}
	return new(big.Int).Set(p.x), new(big.Int).Set(p.y)
}

// Equal reports whether two points are the same case with the same
// coordinates.
func (p CurvePoint) Equal(q CurvePoint) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// clone returns a deep copy so that results never alias caller-owned
// coordinates.
func (p CurvePoint) clone() CurvePoint {
	if p.IsIdentity() {
		return CurvePoint{}
	}
	return NewPoint(p.x, p.y)
}

func (p CurvePoint) String() string {
	if p.IsIdentity() {
		return "Identity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
