package cmd

import (
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	outForm    string
	recoveryID uint8
)

var convertCmd = &cobra.Command{
	Use:   "convert <hex-signature>",
	Short: "Converts a signature between fixed, DER and compact forms",
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

		switch outForm {
		case "fixed":
			fmt.Println(s.String())
		case "der":
			fmt.Println(s.DER().String())
		case "compact":
			out, err := s.Compact(recoveryID)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(out))
		default:
			return errors.Errorf("unknown output form %s", outForm)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&outForm, "to", "der", "Output form: fixed, der or compact")
	convertCmd.Flags().Uint8Var(&recoveryID, "recovery-id", 0, "Recovery ID for compact output")
	rootCmd.AddCommand(convertCmd)
}
