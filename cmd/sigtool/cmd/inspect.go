package cmd

import (
	"encoding/hex"
	"github.com/roynalnaruto/signatures/sig"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <hex-signature>",
	Short: "Parses a signature and prints its parts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeHexArg(args[0])
		if err != nil {
			return err
		}

		s, err := parseSignature(b)
		if err != nil {
			return err
		}

		// Normalize a copy so the low-S check leaves the input alone.
		scratch, err := sig.Parse(crv, s.Bytes())
		if err != nil {
			return err
		}
		rewritten, err := scratch.NormalizeS()
		if err != nil {
			return err
		}

		der := s.DER()
		return printJSON(struct {
			Curve  string `json:"curve"`
			R      string `json:"r"`
			S      string `json:"s"`
			LowS   bool   `json:"low_s"`
			DER    string `json:"der"`
			DERLen int    `json:"der_len"`
		}{
			crv.Name,
			hex.EncodeToString(s.R()),
			hex.EncodeToString(s.S()),
			!rewritten,
			der.String(),
			len(der.Bytes()),
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
