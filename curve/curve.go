package curve

import (
	"crypto/elliptic"
	"github.com/pkg/errors"
	"math/big"
)

var ErrInvalidScalar = errors.New("scalar out of curve range")

// Normalizer folds scalars into the lower half of the group order.
// NormalizeLow reports whether a fold happened; the returned slice
// aliases s when it did not.
type Normalizer interface {
	NormalizeLow(s []byte) ([]byte, bool, error)
}

type Curve struct {
	Name        string
	ElementSize int
	N           *big.Int

	halfN      *big.Int
	normalizer Normalizer
}

func New(name string, elementSize int, n *big.Int) *Curve {
	c := &Curve{
		Name:        name,
		ElementSize: elementSize,
		N:           n,
		halfN:       new(big.Int).Rsh(n, 1),
	}
	c.normalizer = &bigNormalizer{
		n:     c.N,
		halfN: c.halfN,
		size:  c.ElementSize,
	}
	return c
}

func newEllipticCurve(name string, params *elliptic.CurveParams) *Curve {
	return New(name, (params.BitSize+7)/8, params.N)
}

var (
	P256 = newEllipticCurve("p256", elliptic.P256().Params())
	P384 = newEllipticCurve("p384", elliptic.P384().Params())
	P521 = newEllipticCurve("p521", elliptic.P521().Params())
)

func FromName(name string) (*Curve, error) {
	switch name {
	case Secp256k1.Name:
		return Secp256k1, nil
	case P256.Name:
		return P256, nil
	case P384.Name:
		return P384, nil
	case P521.Name:
		return P521, nil
	default:
		return nil, errors.New("invalid curve")
	}
}

func (c *Curve) String() string {
	return c.Name
}

func (c *Curve) SignatureSize() int {
	return 2 * c.ElementSize
}

func (c *Curve) HalfOrder() *big.Int {
	return c.halfN
}

func (c *Curve) NormalizeLow(s []byte) ([]byte, bool, error) {
	return c.normalizer.NormalizeLow(s)
}

type bigNormalizer struct {
	n     *big.Int
	halfN *big.Int
	size  int
}

func (b *bigNormalizer) NormalizeLow(s []byte) ([]byte, bool, error) {
	// Variable time math is fine here, signature values are public.
	v := new(big.Int).SetBytes(s)
	if v.Cmp(b.n) >= 0 {
		return nil, false, errors.WithStack(ErrInvalidScalar)
	}
	if v.Cmp(b.halfN) != 1 {
		return s, false, nil
	}
	v.Sub(b.n, v)
	low := make([]byte, b.size)
	v.FillBytes(low)
	return low, true, nil
}
