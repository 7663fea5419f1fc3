package sig

import (
	"encoding/hex"
	"encoding/json"
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/curve"
)

func (s *Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Curve string `json:"curve"`
		R     string `json:"r"`
		S     string `json:"s"`
	}{
		s.crv.Name,
		hex.EncodeToString(s.R()),
		hex.EncodeToString(s.S()),
	})
}

func (s *Signature) UnmarshalJSON(b []byte) error {
	tmp := struct {
		Curve string `json:"curve"`
		R     string `json:"r"`
		S     string `json:"s"`
	}{}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return errors.WithStack(err)
	}

	crv, err := curve.FromName(tmp.Curve)
	if err != nil {
		return err
	}
	r, err := hex.DecodeString(tmp.R)
	if err != nil {
		return errors.Wrap(err, "error decoding r")
	}
	sv, err := hex.DecodeString(tmp.S)
	if err != nil {
		return errors.Wrap(err, "error decoding s")
	}
	if len(r) != crv.ElementSize || len(sv) != crv.ElementSize {
		return errors.Wrapf(ErrInvalidLength, "r and s must each be %d bytes", crv.ElementSize)
	}

	raw := make([]byte, 0, crv.SignatureSize())
	raw = append(raw, r...)
	raw = append(raw, sv...)
	s.crv = crv
	s.raw = raw
	return nil
}
