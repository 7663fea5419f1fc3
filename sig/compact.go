package sig

import (
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/curve"
)

// Compact returns the recoverable wire form r || s || v with the
// recovery ID in the trailing byte.
func (s *Signature) Compact(recoveryID byte) ([]byte, error) {
	if recoveryID > 3 {
		return nil, errors.Errorf("invalid recovery ID %d", recoveryID)
	}
	out := make([]byte, 0, s.crv.SignatureSize()+1)
	out = append(out, s.raw...)
	return append(out, recoveryID), nil
}

func ParseCompact(crv *curve.Curve, b []byte) (*Signature, byte, error) {
	if len(b) != crv.SignatureSize()+1 {
		return nil, 0, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d", len(b), crv.SignatureSize()+1)
	}
	recoveryID := b[len(b)-1]
	if recoveryID > 3 {
		return nil, 0, errors.Errorf("invalid recovery ID %d", recoveryID)
	}
	sig, err := Parse(crv, b[:len(b)-1])
	if err != nil {
		return nil, 0, err
	}
	return sig, recoveryID, nil
}
