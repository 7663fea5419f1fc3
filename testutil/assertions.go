package testutil

import (
	"encoding/hex"
	"encoding/json"
	"github.com/stretchr/testify/require"
	"testing"
)

func RequireEqualHexBytes(t *testing.T, exp string, act []byte) {
	require.Equal(t, exp, hex.EncodeToString(act))
}

func RequireEqualJSON(t *testing.T, exp string, actRaw interface{}) {
	actJ, err := json.Marshal(actRaw)
	require.NoError(t, err)
	require.JSONEq(t, exp, string(actJ))
}
