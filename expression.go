// Package exprvar stores percent-encoded expressions into request variables.
package exprvar

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/scenarigo/exprvar/uricomponent"
	"github.com/scenarigo/exprvar/vars"
)

// Key is the variable name SetEncodedExpression writes to.
const Key = "expression"

// SetEncodedExpression encodes input as a URI component and stores the
// result into store at Key, replacing any previous value.
// An error from store is returned as is.
func SetEncodedExpression(input string, store vars.Setter) error {
	return store.Set(Key, uricomponent.Encode(input))
}

// SetEncodedExpressionValue is like SetEncodedExpression but accepts an
// arbitrary value. Text-like scalars are converted to text first; nil and
// composite values are rejected without touching store.
func SetEncodedExpressionValue(v any, store vars.Setter) error {
	s, err := toText(v)
	if err != nil {
		return err
	}
	return SetEncodedExpression(s, store)
}

func toText(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrNilInput
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "", ErrNilInput
		}
		return x.String(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return "", ErrNilInput
		}
		return toText(rv.Elem().Interface())
	}
	return "", &InvalidInputError{Type: rv.Type()}
}
