package cmd

import (
	"github.com/pkg/errors"
	"github.com/roynalnaruto/signatures/curve"
	"github.com/roynalnaruto/signatures/log"
	"github.com/spf13/cobra"
	"os"
)

var (
	curveName string
	logLevel  string
	inForm    string

	crv *curve.Curve
)

var cmdLogger = log.ModuleLogger("cmd")

var rootCmd = &cobra.Command{
	Use:          "sigtool",
	Short:        "Converts, normalizes and inspects ECDSA signatures",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.SetLevel(logLevel); err != nil {
			return err
		}

		c, err := curve.FromName(curveName)
		if err != nil {
			return errors.Wrap(err, "invalid curve")
		}
		crv = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&curveName, "curve", "c", "secp256k1", "Sets the signature curve")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Sets the log level")
	rootCmd.PersistentFlags().StringVar(&inForm, "from", "auto", "Input form: auto, fixed, der or compact")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
