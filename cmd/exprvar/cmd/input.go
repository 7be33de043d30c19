package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scenarigo/exprvar/cmd/exprvar/cmd/config"
	"github.com/scenarigo/exprvar/color"
	appctx "github.com/scenarigo/exprvar/context"
	"github.com/scenarigo/exprvar/internal/textutil"
	"github.com/scenarigo/exprvar/schema"
)

// readInputs returns args, or the content of stdin without its trailing newline if args is empty.
func readInputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if config.ConfigPath == "-" {
		return nil, fmt.Errorf("stdin is already used for the configuration, specify the input as an argument")
	}
	return readArgsOrStdin(cmd, args)
}

// readArgsOrStdin is like readInputs for commands which do not load the configuration.
func readArgsOrStdin(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	s = strings.TrimSuffix(s, "\r")
	return []string{s}, nil
}

// newContext builds the request context from the configuration and command flags.
func newContext(cmd *cobra.Command) (*appctx.Context, *schema.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = &schema.Config{SchemaVersion: schema.ConfigSchemaVersion}
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose || cfg.Output.Verbose)
	if cfg.Path != "" {
		logger.Debug("loaded config", zap.String("path", cfg.Path))
	}

	colorConfig := color.New()
	if cfg.Output.Colored != nil {
		colorConfig.SetEnabled(*cfg.Output.Colored)
	}

	ctx := appctx.New(cmd.Context()).
		WithLogger(logger).
		WithColorConfig(colorConfig)
	if cfg.Vars != nil {
		ctx = ctx.WithVars(cfg.Vars.Clone())
	}
	return ctx, cfg, nil
}

func normalizer(cfg *schema.Config) (textutil.Normalizer, error) {
	return textutil.Normalization(cfg.Input.Normalization)
}
