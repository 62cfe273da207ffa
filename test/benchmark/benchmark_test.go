package benchmark

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/pkg/weierstrass"
)

// setup returns the generic curve loaded with the secp256k1 parameters,
// its generator, and a 255-bit scalar, so the benchmarks measure the
// arithmetic at a realistic operand size.
func setup() (*weierstrass.EllipticCurve, weierstrass.CurvePoint, *big.Int) {
	params := secp256k1.S256().Params()
	curve := weierstrass.NewCurve(big.NewInt(0), params.B, params.P)
	g := weierstrass.NewPoint(params.Gx, params.Gy)
	k := new(big.Int).Rsh(params.N, 1)
	return curve, g, k
}

func BenchmarkIsOnCurve(b *testing.B) {
	curve, g, _ := setup()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !curve.IsOnCurve(g) {
			b.Fatal("generator rejected")
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	curve, g, _ := setup()
	twoG, err := curve.Double(g)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := curve.Add(g, twoG); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDouble(b *testing.B) {
	curve, g, _ := setup()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := curve.Double(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMul(b *testing.B) {
	curve, g, k := setup()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := curve.ScalarMul(g, k); err != nil {
			b.Fatal(err)
		}
	}
}
