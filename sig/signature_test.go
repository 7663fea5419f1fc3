package sig

import (
	"bytes"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/bio"
	"github.com/roynalnaruto/signatures/curve"
	"github.com/roynalnaruto/signatures/testutil"
	"github.com/stretchr/testify/require"
	"testing"
)

var (
	testR = bio.MustDecodeHex("4e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd41")
	testS = bio.MustDecodeHex("181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d09")
)

func TestFromScalars(t *testing.T) {
	tiny := testutil.TinyCurve()
	s := FromScalars(tiny, []byte{9}, []byte{200})
	require.Equal(t, []byte{9, 200}, s.Bytes())
	require.Equal(t, []byte{9}, s.R())
	require.Equal(t, []byte{200}, s.S())

	sig := FromScalars(curve.Secp256k1, testR, testS)
	require.Equal(t, testR, sig.R())
	require.Equal(t, testS, sig.S())
	require.Equal(t, "4e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd41"+
		"181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d09", sig.String())

	require.Panics(t, func() {
		FromScalars(tiny, []byte{1, 2}, []byte{3})
	})
}

func TestParse(t *testing.T) {
	crv := curve.Secp256k1
	raw := append(append([]byte{}, testR...), testS...)

	sig, err := Parse(crv, raw)
	require.NoError(t, err)
	require.Equal(t, testR, sig.R())
	require.Equal(t, testS, sig.S())
	require.True(t, sig.Equal(FromScalars(crv, testR, testS)))

	// The signature owns its buffer.
	raw[0] = 0xaa
	require.Equal(t, testR, sig.R())

	for _, n := range []int{0, 1, 63, 65, 128} {
		_, err := Parse(crv, make([]byte, n))
		require.True(t, errors.Is(err, ErrInvalidLength), "length %d", n)
	}
}

func TestAccessorsShareBuffer(t *testing.T) {
	sig := FromScalars(curve.Secp256k1, testR, testS)
	sig.R()[0] = 0xaa
	sig.S()[0] = 0xbb
	require.Equal(t, byte(0xaa), sig.Bytes()[0])
	require.Equal(t, byte(0xbb), sig.Bytes()[32])
}

func TestEqual(t *testing.T) {
	a := FromScalars(curve.Secp256k1, testR, testS)
	b := FromScalars(curve.Secp256k1, testR, testS)
	c := FromScalars(curve.Secp256k1, testS, testR)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	// Same bytes on a different curve are a different signature.
	d := FromScalars(curve.P256, testR, testS)
	require.False(t, a.Equal(d))
}

func TestWriteToReadFrom(t *testing.T) {
	crv := curve.Secp256k1
	sig := FromScalars(crv, testR, testS)

	buf := new(bytes.Buffer)
	n, err := sig.WriteTo(buf)
	require.NoError(t, err)
	require.Equal(t, int64(64), n)
	require.Equal(t, sig.Bytes(), buf.Bytes())

	read := Zero(crv)
	n, err = read.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(64), n)
	require.True(t, sig.Equal(read))

	short := Zero(crv)
	_, err = short.ReadFrom(bytes.NewReader(buf.Bytes()[:10]))
	require.Error(t, err)
	require.Equal(t, make([]byte, 64), short.Bytes())
}

func TestJSON(t *testing.T) {
	sig := FromScalars(curve.Secp256k1, testR, testS)
	testutil.RequireEqualJSON(t, `{
		"curve": "secp256k1",
		"r": "4e45e16932b8af514961a1d3a1a25fdf3f4f7732e9d624c6c61548ab5fb8cd41",
		"s": "181522ec8eca07de4860a4acdd12909d831cc56cbbac4622082221a8768d1d09"
	}`, sig)

	enc, err := json.Marshal(sig)
	require.NoError(t, err)
	read := new(Signature)
	require.NoError(t, json.Unmarshal(enc, read))
	require.True(t, sig.Equal(read))

	require.Error(t, json.Unmarshal([]byte(`{"curve":"ed25519","r":"00","s":"00"}`), new(Signature)))
	err = json.Unmarshal([]byte(`{"curve":"secp256k1","r":"0001","s":"0001"}`), new(Signature))
	require.True(t, errors.Is(err, ErrInvalidLength))
}

func TestNormalizeSTinyOrder(t *testing.T) {
	tiny := testutil.TinyCurve()

	sig := FromScalars(tiny, []byte{9}, []byte{200})
	folded, err := sig.NormalizeS()
	require.NoError(t, err)
	require.True(t, folded)
	require.Equal(t, []byte{9}, sig.R())
	require.Equal(t, []byte{51}, sig.S())

	folded, err = sig.NormalizeS()
	require.NoError(t, err)
	require.False(t, folded)
	require.Equal(t, []byte{51}, sig.S())

	low := FromScalars(tiny, []byte{9}, []byte{50})
	folded, err = low.NormalizeS()
	require.NoError(t, err)
	require.False(t, folded)
	require.Equal(t, []byte{50}, low.S())

	bad := FromScalars(tiny, []byte{9}, []byte{251})
	_, err = bad.NormalizeS()
	require.True(t, errors.Is(err, curve.ErrInvalidScalar))
	require.Equal(t, []byte{251}, bad.S())
}

func TestNormalizeSSecp256k1(t *testing.T) {
	halfN := bio.MustDecodeHex("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a0")
	halfNPlus1 := bio.MustDecodeHex("7fffffffffffffffffffffffffffffff5d576e7357a4501ddfe92f46681b20a1")

	sig := FromScalars(curve.Secp256k1, testR, halfNPlus1)
	folded, err := sig.NormalizeS()
	require.NoError(t, err)
	require.True(t, folded)
	require.Equal(t, testR, sig.R())
	require.Equal(t, halfN, sig.S())

	folded, err = sig.NormalizeS()
	require.NoError(t, err)
	require.False(t, folded)

	already := FromScalars(curve.Secp256k1, testR, testS)
	folded, err = already.NormalizeS()
	require.NoError(t, err)
	require.False(t, folded)
	require.Equal(t, testS, already.S())
}
