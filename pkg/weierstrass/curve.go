// Package weierstrass implements the group of points on a short-Weierstrass
// elliptic curve
//
//	y² = x³ + ax + b mod p
//
// over a prime field, with chord-and-tangent point addition, point doubling
// and double-and-add scalar multiplication. All arithmetic on the underlying
// coordinates goes through the finite-field layer, which keeps every value
// reduced into [0, p).
//
// Every operation is a pure function of its arguments: nothing is mutated,
// nothing is cached, and all operations are safe for concurrent use.
package weierstrass

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/finitefield"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// EllipticCurve represents an immutable short-Weierstrass curve
// y² = x³ + ax + b mod p.
//
// The caller must supply valid parameters: p prime and greater than 3, and
// 4a³ + 27b² != 0 mod p so the curve is non-singular. These invariants are
// part of the construction contract and are not re-verified by the group
// operations.
type EllipticCurve struct {
	a, b, p *big.Int
}

// NewCurve returns the curve y² = x³ + ax + b mod p. The parameters are
// copied; the curve is never modified after construction.
func NewCurve(a, b, p *big.Int) *EllipticCurve {
	return &EllipticCurve{
		a: new(big.Int).Set(a),
		b: new(big.Int).Set(b),
		p: new(big.Int).Set(p),
	}
}

// A returns a copy of the curve coefficient a.
func (c *EllipticCurve) A() *big.Int { return new(big.Int).Set(c.a) }

// B returns a copy of the curve coefficient b.
func (c *EllipticCurve) B() *big.Int { return new(big.Int).Set(c.b) }

// P returns a copy of the field modulus p.
func (c *EllipticCurve) P() *big.Int { return new(big.Int).Set(c.p) }

// IsOnCurve reports whether the point satisfies the curve equation. The
// identity element is on every curve by convention. A coordinate pair whose
// evaluation violates a field-layer precondition (a coordinate outside
// [0, p)) is not on the curve.
func (c *EllipticCurve) IsOnCurve(pt CurvePoint) bool {
	ok, err := c.isOnCurve(pt)
	return err == nil && ok
}

// isOnCurve evaluates y² == x³ + ax + b mod p through the finite-field
// layer, surfacing any field error to the fallible curve operations.
func (c *EllipticCurve) isOnCurve(pt CurvePoint) (bool, error) {
	if pt.IsIdentity() {
		return true, nil
	}

	y2, err := finitefield.Multiply(pt.y, pt.y, c.p)
	if err != nil {
		return false, err
	}

	x2, err := finitefield.Multiply(pt.x, pt.x, c.p)
	if err != nil {
		return false, err
	}
	x3, err := finitefield.Multiply(x2, pt.x, c.p)
	if err != nil {
		return false, err
	}
	ax, err := finitefield.Multiply(c.a, pt.x, c.p)
	if err != nil {
		return false, err
	}
	rhs, err := finitefield.Add(x3, ax, c.p)
	if err != nil {
		return false, err
	}
	rhs, err = finitefield.Add(rhs, c.b, c.p)
	if err != nil {
		return false, err
	}

	return y2.Cmp(rhs) == 0, nil
}

// checkOnCurve fails with InvalidPointError when the point does not satisfy
// the curve equation. Field-layer errors pass through unchanged.
func (c *EllipticCurve) checkOnCurve(pt CurvePoint) error {
	ok, err := c.isOnCurve(pt)
	if err != nil {
		return err
	}
	if !ok {
		return &InvalidPointError{Point: pt.clone()}
	}
	return nil
}

// Add computes the group sum A + B.
//
// Geometrically the result is the x-axis reflection of the third
// intersection of the chord through A and B with the curve. Coinciding
// operands have no unique chord and are delegated to Double; an identity
// operand returns the other operand; operands that mirror each other across
// the x-axis have a vertical chord and sum to the identity.
//
// Both operands must satisfy the curve equation, otherwise Add fails with
// InvalidPointError carrying the offending point.
func (c *EllipticCurve) Add(a, b CurvePoint) (CurvePoint, error) {
	if err := c.checkOnCurve(a); err != nil {
		return CurvePoint{}, err
	}
	if err := c.checkOnCurve(b); err != nil {
		return CurvePoint{}, err
	}

	if a.Equal(b) {
		return c.Double(a)
	}

	if a.IsIdentity() {
		return b.clone(), nil
	}
	if b.IsIdentity() {
		return a.clone(), nil
	}

	// A + (-A): the chord is vertical when x1 == x2 and y1 + y2 = 0 mod p.
	if a.x.Cmp(b.x) == 0 {
		ySum, err := finitefield.Add(a.y, b.y, c.p)
		if err != nil {
			return CurvePoint{}, err
		}
		if ySum.Sign() == 0 {
			return Identity(), nil
		}
	}

	// Chord slope s = (y2 - y1) / (x2 - x1) mod p.
	num, err := finitefield.Subtract(b.y, a.y, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	den, err := finitefield.Subtract(b.x, a.x, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	s, err := finitefield.Divide(num, den, c.p)
	if err != nil {
		return CurvePoint{}, err
	}

	return c.intersect(s, a.x, b.x, a.y)
}

// Double computes 2A, the sum of a point with itself.
//
// The tangent at a point with y = 0 is vertical, so such points double to
// the identity, as does the identity itself.
func (c *EllipticCurve) Double(a CurvePoint) (CurvePoint, error) {
	if err := c.checkOnCurve(a); err != nil {
		return CurvePoint{}, err
	}

	if a.IsIdentity() {
		return Identity(), nil
	}
	if a.y.Sign() == 0 {
		return Identity(), nil
	}

	// Tangent slope s = (3x² + a) / (2y) mod p.
	x2, err := finitefield.Multiply(a.x, a.x, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	threeX2, err := finitefield.Multiply(three, x2, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	num, err := finitefield.Add(threeX2, c.a, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	den, err := finitefield.Multiply(two, a.y, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	s, err := finitefield.Divide(num, den, c.p)
	if err != nil {
		return CurvePoint{}, err
	}

	return c.intersect(s, a.x, a.x, a.y)
}

// intersect derives the reflected third intersection point from a chord or
// tangent slope s through (x1, y1) and (x2, ·):
//
//	x3 = s² - x1 - x2 mod p
//	y3 = s(x1 - x3) - y1 mod p
func (c *EllipticCurve) intersect(s, x1, x2, y1 *big.Int) (CurvePoint, error) {
	s2, err := finitefield.Multiply(s, s, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	x3, err := finitefield.Subtract(s2, x1, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	x3, err = finitefield.Subtract(x3, x2, c.p)
	if err != nil {
		return CurvePoint{}, err
	}

	x1MinusX3, err := finitefield.Subtract(x1, x3, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	y3, err := finitefield.Multiply(s, x1MinusX3, c.p)
	if err != nil {
		return CurvePoint{}, err
	}
	y3, err = finitefield.Subtract(y3, y1, c.p)
	if err != nil {
		return CurvePoint{}, err
	}

	return CurvePoint{x: x3, y: y3}, nil
}

// ScalarMul computes d * A by double-and-add: the most significant bit of d
// seeds the accumulator with A, and for every lower bit the accumulator is
// doubled, then A is added when the bit is set. The running time is
// proportional to the bit length of d.
//
// The scalar must be a positive integer; d <= 0 (or a nil d) fails with
// InvalidScalarError. The point must satisfy the curve equation, otherwise
// ScalarMul fails with InvalidPointError.
func (c *EllipticCurve) ScalarMul(a CurvePoint, d *big.Int) (CurvePoint, error) {
	if d == nil || d.Sign() <= 0 {
		e := &InvalidScalarError{}
		if d != nil {
			e.Scalar = new(big.Int).Set(d)
		}
		return CurvePoint{}, e
	}

	if err := c.checkOnCurve(a); err != nil {
		return CurvePoint{}, err
	}

	r := a.clone()
	for i := d.BitLen() - 2; i >= 0; i-- {
		var err error
		r, err = c.Double(r)
		if err != nil {
			return CurvePoint{}, err
		}

		if d.Bit(i) == 1 {
			r, err = c.Add(r, a)
			if err != nil {
				return CurvePoint{}, err
			}
		}
	}

	return r, nil
}
