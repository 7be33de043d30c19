package exprvar

import (
	"reflect"

	"github.com/scenarigo/exprvar/errors"
)

// ErrNilInput is returned when the expression is absent.
var ErrNilInput = errors.New("expression is nil")

// InvalidInputError is returned when the expression cannot be converted to text.
type InvalidInputError struct {
	Type reflect.Type
}

func (e *InvalidInputError) Error() string {
	return "expression must be text but got " + e.Type.String()
}
