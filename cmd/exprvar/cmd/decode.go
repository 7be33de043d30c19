package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/exprvar/uricomponent"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text...]",
	Short: "decode URI components",
	Long: `Decodes URI components and prints one result per line.

If no argument is given, the content of stdin is decoded.`,
	RunE:          decode,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func decode(cmd *cobra.Command, args []string) error {
	inputs, err := readArgsOrStdin(cmd, args)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		s, err := uricomponent.Decode(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}
