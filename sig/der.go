package sig

import (
	"encoding/hex"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/bio"
	"github.com/roynalnaruto/signatures/curve"
)

// DERSignature is the decoded ASN.1 form of a signature:
//
//	SEQUENCE (0x30) <length> {
//	    INTEGER (0x02) <length> <r>
//	    INTEGER (0x02) <length> <s>
//	}
//
// Integers are minimal-length big-endian with exactly one leading zero
// byte when the top bit of the magnitude is set. Lengths use the DER
// definite form, short below 128 and minimal long form above. R and S
// expose the magnitudes with the sign-padding byte stripped; both are
// bounded by the curve element size at parse time, so converting back
// to fixed form cannot fail.
type DERSignature struct {
	crv *curve.Curve
	raw []byte
	r   []byte
	s   []byte
}

const (
	derSequenceTag = 0x30
	derIntegerTag  = 0x02

	// 30 06 02 01 00 02 01 00
	minDERLen = 8
)

// MaxDERLen returns the largest encoding the curve can produce: both
// integers at full width plus a sign-padding byte each.
func MaxDERLen(crv *curve.Curve) int {
	intLen := crv.ElementSize + 1
	content := 2 * (1 + derLenSize(intLen) + intLen)
	return 1 + derLenSize(content) + content
}

// MaxDEROverhead returns the worst-case encoding bytes beyond the two
// fixed-width scalars.
func MaxDEROverhead(crv *curve.Curve) int {
	return MaxDERLen(crv) - crv.SignatureSize()
}

// DER encodes the signature. Encoding cannot fail: every fixed-form
// value has exactly one strict DER spelling.
func (s *Signature) DER() *DERSignature {
	rv := bio.TrimLeftZeros(s.R())
	sv := bio.TrimLeftZeros(s.S())
	rLen := len(rv) + signPad(rv)
	sLen := len(sv) + signPad(sv)
	content := 1 + derLenSize(rLen) + rLen + 1 + derLenSize(sLen) + sLen

	raw := make([]byte, 0, 1+derLenSize(content)+content)
	raw = append(raw, derSequenceTag)
	raw = appendDERLen(raw, content)

	raw = append(raw, derIntegerTag)
	raw = appendDERLen(raw, rLen)
	if rLen > len(rv) {
		raw = append(raw, 0x00)
	}
	rOff := len(raw)
	raw = append(raw, rv...)

	raw = append(raw, derIntegerTag)
	raw = appendDERLen(raw, sLen)
	if sLen > len(sv) {
		raw = append(raw, 0x00)
	}
	sOff := len(raw)
	raw = append(raw, sv...)

	return &DERSignature{
		crv: s.crv,
		raw: raw,
		r:   raw[rOff : rOff+len(rv)],
		s:   raw[sOff : sOff+len(sv)],
	}
}

// ParseDER decodes a strict DER signature. Any spelling other than the
// one DER() produces is rejected: wrong tags, length mismatches,
// trailing data, negative or zero-length integers, and superfluous
// padding beyond the single sign byte all fail with ErrMalformedDER.
// Integers wider than the curve element fail with ErrValueOutOfRange.
func ParseDER(crv *curve.Curve, der []byte) (*DERSignature, error) {
	if len(der) < minDERLen {
		return nil, errors.Wrapf(ErrMalformedDER, "%d bytes is too short", len(der))
	}
	if len(der) > MaxDERLen(crv) {
		return nil, errors.Wrapf(ErrMalformedDER, "%d bytes is too long", len(der))
	}

	raw := make([]byte, len(der))
	copy(raw, der)

	if raw[0] != derSequenceTag {
		return nil, errors.Wrapf(ErrMalformedDER, "bad sequence tag %#x", raw[0])
	}
	contentLen, lenSize, err := readDERLen(raw, 1)
	if err != nil {
		return nil, err
	}
	if 1+lenSize+contentLen != len(raw) {
		return nil, errors.Wrapf(ErrMalformedDER,
			"declared length %d does not match %d remaining bytes", contentLen, len(raw)-1-lenSize)
	}

	idx := 1 + lenSize
	r, n, err := readDERInt(crv, raw, idx)
	if err != nil {
		return nil, errors.Wrap(err, "bad r")
	}
	idx += n
	sv, n, err := readDERInt(crv, raw, idx)
	if err != nil {
		return nil, errors.Wrap(err, "bad s")
	}
	idx += n
	if idx != len(raw) {
		return nil, errors.Wrapf(ErrMalformedDER, "%d trailing bytes after s", len(raw)-idx)
	}

	return &DERSignature{
		crv: crv,
		raw: raw,
		r:   r,
		s:   sv,
	}, nil
}

func (d *DERSignature) Curve() *curve.Curve {
	return d.crv
}

// R returns the minimal-length r magnitude, sign padding stripped.
func (d *DERSignature) R() []byte {
	return d.r
}

// S returns the minimal-length s magnitude, sign padding stripped.
func (d *DERSignature) S() []byte {
	return d.s
}

func (d *DERSignature) Bytes() []byte {
	return d.raw
}

func (d *DERSignature) String() string {
	return hex.EncodeToString(d.raw)
}

// Fixed right-aligns the decoded integers into fixed form.
func (d *DERSignature) Fixed() *Signature {
	size := d.crv.ElementSize
	raw := make([]byte, d.crv.SignatureSize())
	copy(raw[size-len(d.r):size], d.r)
	copy(raw[2*size-len(d.s):], d.s)
	return &Signature{
		crv: d.crv,
		raw: raw,
	}
}

func signPad(v []byte) int {
	if v[0]&0x80 != 0 {
		return 1
	}
	return 0
}

func derLenSize(n int) int {
	if n < 0x80 {
		return 1
	}
	size := 1
	for ; n > 0; n >>= 8 {
		size++
	}
	return size
}

func appendDERLen(b []byte, n int) []byte {
	if n < 0x80 {
		return append(b, byte(n))
	}
	numBytes := derLenSize(n) - 1
	b = append(b, 0x80|byte(numBytes))
	for i := numBytes - 1; i >= 0; i-- {
		b = append(b, byte(n>>(8*i)))
	}
	return b
}

// readDERLen decodes a definite length at idx. Indefinite and
// non-minimal forms are rejected.
func readDERLen(b []byte, idx int) (int, int, error) {
	if idx >= len(b) {
		return 0, 0, errors.Wrap(ErrMalformedDER, "truncated length")
	}
	first := b[idx]
	if first < 0x80 {
		return int(first), 1, nil
	}
	if first == 0x80 {
		return 0, 0, errors.Wrap(ErrMalformedDER, "indefinite length")
	}
	numBytes := int(first & 0x7f)
	if numBytes > 4 {
		return 0, 0, errors.Wrapf(ErrMalformedDER, "%d length bytes is too many", numBytes)
	}
	if idx+1+numBytes > len(b) {
		return 0, 0, errors.Wrap(ErrMalformedDER, "truncated length")
	}
	if b[idx+1] == 0x00 {
		return 0, 0, errors.Wrap(ErrMalformedDER, "non-minimal length")
	}
	n := 0
	for _, c := range b[idx+1 : idx+1+numBytes] {
		n = n<<8 | int(c)
	}
	if n < 0x80 {
		return 0, 0, errors.Wrap(ErrMalformedDER, "non-minimal length")
	}
	return n, 1 + numBytes, nil
}

// readDERInt decodes one integer at idx and returns the magnitude with
// any sign padding stripped, plus the bytes consumed.
func readDERInt(crv *curve.Curve, b []byte, idx int) ([]byte, int, error) {
	if idx >= len(b) {
		return nil, 0, errors.Wrap(ErrMalformedDER, "truncated integer")
	}
	if b[idx] != derIntegerTag {
		return nil, 0, errors.Wrapf(ErrMalformedDER, "bad integer tag %#x", b[idx])
	}
	vLen, lenSize, err := readDERLen(b, idx+1)
	if err != nil {
		return nil, 0, err
	}
	if vLen == 0 {
		return nil, 0, errors.Wrap(ErrMalformedDER, "zero-length integer")
	}
	off := idx + 1 + lenSize
	if off+vLen > len(b) {
		return nil, 0, errors.Wrap(ErrMalformedDER, "truncated integer")
	}

	v := b[off : off+vLen]
	if v[0]&0x80 != 0 {
		return nil, 0, errors.Wrap(ErrMalformedDER, "negative integer")
	}
	if len(v) > 1 && v[0] == 0x00 {
		if v[1]&0x80 == 0 {
			return nil, 0, errors.Wrap(ErrMalformedDER, "superfluous integer padding")
		}
		v = v[1:]
	}
	if len(v) > crv.ElementSize {
		return nil, 0, errors.Wrapf(ErrValueOutOfRange,
			"integer is %d bytes, curve element is %d", len(v), crv.ElementSize)
	}
	return v, 1 + lenSize + vLen, nil
}
