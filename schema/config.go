// Package schema provides the configuration schema of exprvar.
package schema

import (
	"bytes"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/scenarigo/exprvar/errors"
	"github.com/scenarigo/exprvar/internal/textutil"
	"github.com/scenarigo/exprvar/vars"
)

// ConfigSchemaVersion is the supported configuration schema version.
const ConfigSchemaVersion = "config/v1"

// Config represents a configuration.
type Config struct {
	SchemaVersion string       `yaml:"schemaVersion,omitempty"`
	Vars          *vars.Vars   `yaml:"vars,omitempty"`
	Input         InputConfig  `yaml:"input,omitempty"`
	Output        OutputConfig `yaml:"output,omitempty"`

	// path to the configuration file, empty when read from stdin
	Path string   `yaml:"-"`
	Node ast.Node `yaml:"-"`
}

// InputConfig represents an input configuration.
type InputConfig struct {
	// Unicode normalization form applied before encoding: NFC, NFD, NFKC or NFKD.
	Normalization string `yaml:"normalization,omitempty"`
}

// OutputConfig represents an output configuration.
type OutputConfig struct {
	Verbose bool  `yaml:"verbose,omitempty"`
	Colored *bool `yaml:"colored,omitempty"`
}

// LoadConfig loads a configuration from path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadConfigFromReader loads a configuration from r.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	f, err := parser.ParseBytes(b, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, errors.New("empty config")
	}
	if len(f.Docs) > 1 {
		return nil, errors.New("config must be a single YAML document")
	}
	node := f.Docs[0].Body

	var cfg Config
	if err := yaml.NewDecoder(bytes.NewReader(b), yaml.Strict()).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	cfg.Node = node
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	switch c.SchemaVersion {
	case ConfigSchemaVersion:
	case "":
		errs = append(errs, errors.ErrorPathf("schemaVersion", "schemaVersion is required"))
	default:
		errs = append(errs, errors.ErrorPathf("schemaVersion", "unknown version %q", c.SchemaVersion))
	}
	if !textutil.ValidNormalization(c.Input.Normalization) {
		errs = append(errs, errors.ErrorPathf("input.normalization", "unknown normalization form %q", c.Input.Normalization))
	}
	err := errors.Errors(errs...)
	if err == nil {
		return nil
	}
	if c.Node != nil {
		err = errors.WithNode(err, c.Node)
	}
	return errors.Wrap(err, "invalid config")
}
