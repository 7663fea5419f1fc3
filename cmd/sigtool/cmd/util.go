package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/sig"
	"strings"
)

func decodeHexArg(in string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(in), "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "error decoding hex argument")
	}
	return b, nil
}

func parseSignature(b []byte) (*sig.Signature, error) {
	switch inForm {
	case "fixed":
		return sig.Parse(crv, b)
	case "der":
		der, err := sig.ParseDER(crv, b)
		if err != nil {
			return nil, err
		}
		return der.Fixed(), nil
	case "compact":
		s, recoveryID, err := sig.ParseCompact(crv, b)
		if err != nil {
			return nil, err
		}
		cmdLogger.Debug("parsed compact signature", "recovery_id", recoveryID)
		return s, nil
	case "auto":
		switch len(b) {
		case crv.SignatureSize():
			return sig.Parse(crv, b)
		case crv.SignatureSize() + 1:
			s, _, err := sig.ParseCompact(crv, b)
			return s, err
		default:
			der, err := sig.ParseDER(crv, b)
			if err != nil {
				return nil, err
			}
			return der.Fixed(), nil
		}
	default:
		return nil, errors.Errorf("unknown input form %s", inForm)
	}
}

func printJSON(in interface{}) error {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
