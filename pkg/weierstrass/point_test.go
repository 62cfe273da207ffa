package weierstrass

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointEqual(t *testing.T) {
	a := NewPoint(big.NewInt(5), big.NewInt(1))
	b := NewPoint(big.NewInt(5), big.NewInt(1))
	c := NewPoint(big.NewInt(5), big.NewInt(16))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Identity()))
	assert.False(t, Identity().Equal(a))
	assert.True(t, Identity().Equal(Identity()))
}

func TestPointCoordinates(t *testing.T) {
	pt := NewPoint(big.NewInt(5), big.NewInt(1))

	x, y := pt.Coordinates()
	assert.Equal(t, int64(5), x.Int64())
	assert.Equal(t, int64(1), y.Int64())

	// Coordinates are copies; writing through them leaves the point alone.
	x.SetInt64(42)
	y.SetInt64(42)
	x2, y2 := pt.Coordinates()
	assert.Equal(t, int64(5), x2.Int64())
	assert.Equal(t, int64(1), y2.Int64())

	x, y = Identity().Coordinates()
	assert.Nil(t, x)
	assert.Nil(t, y)
}

func TestNewPointCopiesArguments(t *testing.T) {
	x := big.NewInt(5)
	y := big.NewInt(1)
	pt := NewPoint(x, y)

	x.SetInt64(42)
	y.SetInt64(42)

	assert.True(t, pt.Equal(NewPoint(big.NewInt(5), big.NewInt(1))))
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "Identity", Identity().String())
	assert.Equal(t, "(5, 1)", NewPoint(big.NewInt(5), big.NewInt(1)).String())
}
