package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scenarigo/exprvar/cmd/exprvar/cmd/config"
)

const appName = "exprvar"

var verbose bool

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.ConfigPath, "config", "c", "", `specify the configuration file path (default: exprvar.yaml, use '-' for stdin)`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: fmt.Sprintf("%s stores URI-encoded expressions into request variables.", appName),
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
