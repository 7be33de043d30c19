package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/exprvar/uricomponent"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "encode texts as URI components",
	Long: `Encodes texts as URI components and prints one result per line.

If no argument is given, the content of stdin is encoded.`,
	RunE:          encode,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func encode(cmd *cobra.Command, args []string) error {
	_, cfg, err := newContext(cmd)
	if err != nil {
		return err
	}
	normalize, err := normalizer(cfg)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		fmt.Fprintln(cmd.OutOrStdout(), uricomponent.Encode(normalize(in)))
	}
	return nil
}
