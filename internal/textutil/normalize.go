// Package textutil provides text transformations applied before encoding.
package textutil

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms input text.
type Normalizer func(string) string

var forms = map[string]norm.Form{
	"NFC":  norm.NFC,
	"NFD":  norm.NFD,
	"NFKC": norm.NFKC,
	"NFKD": norm.NFKD,
}

// Normalization returns the Normalizer for the Unicode normalization form name.
// An empty name returns a Normalizer which leaves text unchanged.
func Normalization(name string) (Normalizer, error) {
	if name == "" {
		return func(s string) string { return s }, nil
	}
	f, ok := forms[strings.ToUpper(name)]
	if !ok {
		return nil, errors.Errorf("unknown normalization form %q", name)
	}
	return f.String, nil
}

// ValidNormalization reports whether name is a known normalization form.
func ValidNormalization(name string) bool {
	_, err := Normalization(name)
	return err == nil
}
