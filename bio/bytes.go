package bio

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

// TrimLeftZeros returns the minimal big-endian magnitude of b, keeping
// a single zero byte for the zero value. The result aliases b.
func TrimLeftZeros(b []byte) []byte {
	for len(b) > 1 && b[0] == 0x00 {
		b = b[1:]
	}
	return b
}

// PadLeft right-aligns b into a fresh buffer of size bytes.
func PadLeft(b []byte, size int) ([]byte, error) {
	if len(b) > size {
		return nil, errors.Errorf("cannot pad %d bytes into %d", len(b), size)
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out, nil
}

func MustDecodeHex(in string) []byte {
	out, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return out
}
