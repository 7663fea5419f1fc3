package curve

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

var Secp256k1 = New("secp256k1", 32, secp256k1.Params().N)

func init() {
	Secp256k1.normalizer = secpNormalizer{}
}

// secpNormalizer folds with the dcrec mod-n scalar type rather than
// big.Int arithmetic.
type secpNormalizer struct{}

func (secpNormalizer) NormalizeLow(s []byte) ([]byte, bool, error) {
	var sc secp256k1.ModNScalar
	if overflow := sc.SetByteSlice(s); overflow {
		return nil, false, errors.WithStack(ErrInvalidScalar)
	}
	if !sc.IsOverHalfOrder() {
		return s, false, nil
	}
	sc.Negate()
	var b [32]byte
	sc.PutBytes(&b)
	return b[:], true, nil
}
