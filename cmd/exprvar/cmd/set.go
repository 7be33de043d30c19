package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var setVars []string

func init() {
	setCmd.Flags().StringArrayVarP(&setVars, "var", "V", nil, "set a request variable before the expression (key=value, repeatable)")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set [text]",
	Short: "set the encoded expression into the request variables",
	Long: `Encodes the text as a URI component, stores it into the "expression" request variable,
and prints the request variables as YAML.

The request variables start from the "vars" of the configuration file and the --var flags.
If no argument is given, the content of stdin is used.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          set,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func set(cmd *cobra.Command, args []string) error {
	ctx, cfg, err := newContext(cmd)
	if err != nil {
		return err
	}
	for _, kv := range setVars {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return fmt.Errorf("invalid variable %q: must be key=value", kv)
		}
		if err := ctx.Vars().Set(k, v); err != nil {
			return err
		}
	}
	normalize, err := normalizer(cfg)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	if err := ctx.SetEncodedExpression(normalize(inputs[0])); err != nil {
		return fmt.Errorf("failed to set expression: %w", err)
	}
	b, err := ctx.ColorConfig().MarshalYAML(ctx.Vars())
	if err != nil {
		return fmt.Errorf("failed to marshal variables: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
