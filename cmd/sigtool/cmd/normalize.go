package cmd

import (
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <hex-signature>",
	Short: "Rewrites a signature's s value into the low half of the curve order",
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

		rewritten, err := s.NormalizeS()
		if err != nil {
			return err
		}
		cmdLogger.Debug("normalized signature", "rewritten", rewritten)

		return printJSON(struct {
			Signature string `json:"signature"`
			DER       string `json:"der"`
			Rewritten bool   `json:"rewritten"`
		}{
			s.String(),
			s.DER().String(),
			rewritten,
		})
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
