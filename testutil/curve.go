package testutil

import (
	"github.com/roynalnaruto/signatures/curve"
	"math/big"
)

// TinyCurve is a one byte toy group for exercising codec edge cases
// without 32 byte fixtures. 251 is the largest prime below 2^8, so the
// half order is 125.
func TinyCurve() *curve.Curve {
	return curve.New("tiny251", 1, big.NewInt(251))
}
