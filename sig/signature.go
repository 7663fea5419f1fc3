package sig

import (
	"bytes"
	"encoding/hex"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/bio"
	"github.com/roynalnaruto/signatures/curve"
	"io"
)

// Signature is an ECDSA signature in fixed form: the big-endian r and s
// scalars concatenated, each exactly ElementSize bytes. No range checks
// happen at this layer; an out-of-range scalar only surfaces when the
// value is normalized or re-encoded.
type Signature struct {
	crv *curve.Curve
	raw []byte
}

// FromScalars concatenates pre-sized scalar halves. Handing it a slice
// that is not exactly ElementSize bytes is a caller bug and panics.
func FromScalars(crv *curve.Curve, r, s []byte) *Signature {
	buf := bytes.NewBuffer(make([]byte, 0, crv.SignatureSize()))
	bio.WriteFixedBytes(buf, r, crv.ElementSize)
	bio.WriteFixedBytes(buf, s, crv.ElementSize)
	return &Signature{
		crv: crv,
		raw: buf.Bytes(),
	}
}

func Zero(crv *curve.Curve) *Signature {
	return &Signature{
		crv: crv,
		raw: make([]byte, crv.SignatureSize()),
	}
}

func Parse(crv *curve.Curve, b []byte) (*Signature, error) {
	if len(b) != crv.SignatureSize() {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d bytes, want %d", len(b), crv.SignatureSize())
	}
	raw := make([]byte, len(b))
	copy(raw, b)
	return &Signature{
		crv: crv,
		raw: raw,
	}, nil
}

func (s *Signature) Curve() *curve.Curve {
	return s.crv
}

// R returns the r half without copying.
func (s *Signature) R() []byte {
	return s.raw[:s.crv.ElementSize]
}

// S returns the s half without copying.
func (s *Signature) S() []byte {
	return s.raw[s.crv.ElementSize:]
}

func (s *Signature) Bytes() []byte {
	return s.raw
}

func (s *Signature) String() string {
	return hex.EncodeToString(s.raw)
}

func (s *Signature) Equal(other *Signature) bool {
	return s.crv == other.crv && bytes.Equal(s.raw, other.raw)
}

func (s *Signature) WriteTo(w io.Writer) (int64, error) {
	g := bio.NewGuardWriter(w)
	bio.WriteFixedBytes(g, s.raw, s.crv.SignatureSize())
	return g.N, errors.Wrap(g.Err, "error writing signature")
}

func (s *Signature) ReadFrom(r io.Reader) (int64, error) {
	g := bio.NewGuardReader(r)
	raw, _ := bio.ReadFixedBytes(g, s.crv.SignatureSize())
	if g.Err == nil {
		s.raw = raw
	}
	return g.N, errors.Wrap(g.Err, "error reading signature")
}

// NormalizeS rewrites s in place to its low form when it sits above
// half the group order, and reports whether a rewrite happened. A
// second call always reports false.
func (s *Signature) NormalizeS() (bool, error) {
	low, folded, err := s.crv.NormalizeLow(s.S())
	if err != nil {
		return false, errors.Wrap(err, "error normalizing s")
	}
	if !folded {
		return false, nil
	}
	copy(s.S(), low)
	return true, nil
}
