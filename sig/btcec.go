package sig

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/bio"
	"github.com/roynalnaruto/signatures/curve"
	"math/big"
)

// FromBTCEC converts a btcec signature into fixed form on secp256k1.
// Values are taken as is; callers wanting the low 'S' form chain
// NormalizeS afterwards.
func FromBTCEC(sig *btcec.Signature) (*Signature, error) {
	crv := curve.Secp256k1
	rb, err := bio.PadLeft(sig.R.Bytes(), crv.ElementSize)
	if err != nil {
		return nil, errors.Wrap(ErrValueOutOfRange, "btcec r does not fit a 32 byte scalar")
	}
	sb, err := bio.PadLeft(sig.S.Bytes(), crv.ElementSize)
	if err != nil {
		return nil, errors.Wrap(ErrValueOutOfRange, "btcec s does not fit a 32 byte scalar")
	}
	return FromScalars(crv, rb, sb), nil
}

// BTCEC converts back for use with btcec verification APIs.
func (s *Signature) BTCEC() (*btcec.Signature, error) {
	if s.crv != curve.Secp256k1 {
		return nil, errors.Errorf("curve %s is not secp256k1", s.crv.Name)
	}
	return &btcec.Signature{
		R: new(big.Int).SetBytes(s.R()),
		S: new(big.Int).SetBytes(s.S()),
	}, nil
}
