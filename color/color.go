// Package color controls colored output of exprvar.
package color

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

const envExprvarColor = "EXPRVAR_COLOR"

// Color is an alias of color.Color.
type Color = color.Color

// Config represents color configuration.
type Config struct {
	enabled *bool // nil means color.NoColor decides
	red     *Color
	colors  []*Color
}

// New returns a new color configuration initialized from EXPRVAR_COLOR.
func New() *Config {
	c := &Config{
		red: color.New(color.FgRed),
	}
	c.colors = []*Color{c.red}
	if envColor := os.Getenv(envExprvarColor); envColor != "" {
		if enabled, err := strconv.ParseBool(envColor); err == nil {
			c.SetEnabled(enabled)
		}
	}
	return c
}

// IsEnabled reports whether color output is enabled.
func (c *Config) IsEnabled() bool {
	if c != nil && c.enabled != nil {
		return *c.enabled
	}
	return !color.NoColor
}

// SetEnabled enables or disables color output.
func (c *Config) SetEnabled(enabled bool) {
	c.enabled = &enabled
	for _, clr := range c.colors {
		if enabled {
			clr.EnableColor()
		} else {
			clr.DisableColor()
		}
	}
}

// Red returns the color for errors.
func (c *Config) Red() *Color { return c.red }

// MarshalYAML marshals v to YAML, highlighted if color output is enabled.
func (c *Config) MarshalYAML(v any) ([]byte, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !c.IsEnabled() {
		return b, nil
	}
	tokens := lexer.Tokenize(string(b))
	var p printer.Printer
	p.Bool = property(color.FgHiMagenta)
	p.Number = property(color.FgHiMagenta)
	p.MapKey = property(color.FgHiCyan)
	p.String = property(color.FgHiGreen)
	p.Comment = property(color.FgHiBlack)
	return []byte(p.PrintTokens(tokens)), nil
}

func property(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: format(attr),
			Suffix: format(color.Reset),
		}
	}
}

const escape = "\x1b"

func format(attr color.Attribute) string {
	return fmt.Sprintf("%s[%dm", escape, attr)
}
