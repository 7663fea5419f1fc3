package sig

import (
	"crypto/sha256"
	"github.com/btcsuite/btcd/btcec"
	"github.com/roynalnaruto/signatures/bio"
	"github.com/roynalnaruto/signatures/curve"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBTCECRoundTrip(t *testing.T) {
	priv, pub := btcec.PrivKeyFromBytes(btcec.S256(), bio.MustDecodeHex(
		"2bd806c97f0e00af1a1fc3328fa763a9269723c8db8fac4f93af71db186d6e90"))
	hash := sha256.Sum256([]byte("a message worth signing"))

	bsig, err := priv.Sign(hash[:])
	require.NoError(t, err)

	sig, err := FromBTCEC(bsig)
	require.NoError(t, err)
	require.Equal(t, 64, len(sig.Bytes()))

	// btcec signs with a low s, so serializations must agree untouched.
	folded, err := sig.NormalizeS()
	require.NoError(t, err)
	require.False(t, folded)
	require.Equal(t, bsig.Serialize(), sig.DER().Bytes())

	back, err := sig.BTCEC()
	require.NoError(t, err)
	require.Zero(t, bsig.R.Cmp(back.R))
	require.Zero(t, bsig.S.Cmp(back.S))
	require.True(t, back.Verify(hash[:], pub))
}

func TestBTCECWrongCurve(t *testing.T) {
	sig := Zero(curve.P256)
	_, err := sig.BTCEC()
	require.Error(t, err)
}
