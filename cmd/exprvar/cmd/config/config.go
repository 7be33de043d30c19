// Package config loads the configuration file of the exprvar command.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/scenarigo/exprvar/schema"
)

// DefaultConfigFileName is the configuration file loaded when ConfigPath is empty.
const DefaultConfigFileName = "exprvar.yaml"

var (
	// ConfigPath is the path of the configuration file. "-" means stdin.
	ConfigPath string

	// Stdin is read when ConfigPath is "-".
	Stdin io.Reader = os.Stdin
)

// Load loads the configuration.
// It returns nil without error if ConfigPath is empty and the default file does not exist.
func Load() (*schema.Config, error) {
	switch ConfigPath {
	case "-":
		return schema.LoadConfigFromReader(Stdin)
	case "":
		cfg, err := schema.LoadConfig(DefaultConfigFileName)
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return cfg, err
	}
	return schema.LoadConfig(ConfigPath)
}
