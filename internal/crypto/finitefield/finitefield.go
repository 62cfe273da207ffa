// Package finitefield implements modular arithmetic over a prime field,
// the bottom layer underneath the elliptic-curve group operations.
//
// Every operation requires its operands to already be field elements,
// i.e. integers in [0, p). Out-of-range operands are rejected with
// ErrInvalidArgument before any arithmetic happens; nothing in this
// package silently reduces an input.
package finitefield

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidArgument is returned when an operand is not a field
	// element, i.e. it is negative or not strictly less than the modulus.
	ErrInvalidArgument = errors.New("finitefield: operand is not an element of the field")

	// ErrInvalidResult is reserved for results that fail a field-layer
	// postcondition, such as a non-canonical value. No operation in this
	// package currently produces one under valid inputs.
	ErrInvalidResult = errors.New("finitefield: result is not an element of the field")
)

var two = big.NewInt(2)

// checkElement verifies that a is in [0, p).
func checkElement(a, p *big.Int) error {
	if a.Sign() < 0 || a.Cmp(p) >= 0 {
		return ErrInvalidArgument
	}
	return nil
}

// checkElements verifies that both a and b are in [0, p).
func checkElements(a, b, p *big.Int) error {
	if err := checkElement(a, p); err != nil {
		return err
	}
	return checkElement(b, p)
}

// Add computes (a + b) mod p.
func Add(a, b, p *big.Int) (*big.Int, error) {
	if err := checkElements(a, b, p); err != nil {
		return nil, err
	}

	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, p), nil
}

// Multiply computes (a * b) mod p.
func Multiply(a, b, p *big.Int) (*big.Int, error) {
	if err := checkElements(a, b, p); err != nil {
		return nil, err
	}

	prod := new(big.Int).Mul(a, b)
	return prod.Mod(prod, p), nil
}

// AdditiveInverse computes -a mod p, the element such that
// a + (-a) = 0 mod p. The inverse of 0 is 0.
func AdditiveInverse(a, p *big.Int) (*big.Int, error) {
	if err := checkElement(a, p); err != nil {
		return nil, err
	}

	if a.Sign() == 0 {
		return new(big.Int), nil
	}
	return new(big.Int).Sub(p, a), nil
}

// Subtract computes (a - b) mod p. Subtraction is not a primitive here:
// it is always a + (-b), so reduction into [0, p) stays in Add.
func Subtract(a, b, p *big.Int) (*big.Int, error) {
	if err := checkElements(a, b, p); err != nil {
		return nil, err
	}

	bInv, err := AdditiveInverse(b, p)
	if err != nil {
		return nil, err
	}
	return Add(a, bInv, p)
}

// MultiplicativeInverse computes a^(-1) mod p for prime p using Fermat's
// Little Theorem: a^(p-1) = 1 mod p, hence a^(p-2) is the inverse of a.
//
// Zero has no multiplicative inverse; a = 0 fails with ErrInvalidArgument.
func MultiplicativeInverse(a, p *big.Int) (*big.Int, error) {
	if err := checkElement(a, p); err != nil {
		return nil, err
	}
	if a.Sign() == 0 {
		return nil, ErrInvalidArgument
	}

	exp := new(big.Int).Sub(p, two)
	return new(big.Int).Exp(a, exp, p), nil
}

// Divide computes (a / b) mod p. Like Subtract, division is never a
// primitive: it is always a * b^(-1). b = 0 fails with ErrInvalidArgument.
func Divide(a, b, p *big.Int) (*big.Int, error) {
	if err := checkElements(a, b, p); err != nil {
		return nil, err
	}

	bInv, err := MultiplicativeInverse(b, p)
	if err != nil {
		return nil, err
	}
	return Multiply(a, bInv, p)
}
