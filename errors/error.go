// Package errors provides errors annotated with the YAML path they refer to.
package errors

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/printer"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// New returns an error with the supplied message.
func New(message string) error {
	return errors.New(message)
}

// Errorf formats according to a format specifier and returns the string as a value that satisfies error.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// ErrorPathf returns an error which occurred at path.
func ErrorPathf(path, format string, args ...any) error {
	return &PathError{
		Path: fmt.Sprintf(".%s", path),
		Err:  errors.Errorf(format, args...),
	}
}

// Errors returns an error which aggregates errs.
// It returns nil if errs contains no errors.
func Errors(errs ...error) error {
	var es []error
	for _, err := range errs {
		if err != nil {
			es = append(es, err)
		}
	}
	if len(es) == 0 {
		return nil
	}
	return &MultiPathError{Errs: es}
}

// Wrap returns an error annotating err with message.
func Wrap(err error, message string) error {
	if e, ok := err.(Error); ok {
		e.Wrapf("%s", message)
		return e
	}
	return errors.Wrap(err, message)
}

// Wrapf returns an error annotating err with the format specifier.
func Wrapf(err error, format string, args ...any) error {
	if e, ok := err.(Error); ok {
		e.Wrapf(format, args...)
		return e
	}
	return errors.Wrapf(err, format, args...)
}

// WithPath prepends path to the error path.
func WithPath(err error, path string) error {
	if e, ok := err.(Error); ok {
		e.AppendPath(fmt.Sprintf(".%s", path))
		return e
	}
	return &PathError{
		Err:  err,
		Path: fmt.Sprintf(".%s", path),
	}
}

// WithNode sets the YAML document the error path refers to.
func WithNode(err error, node ast.Node) error {
	if e, ok := err.(Error); ok {
		e.SetNode(node)
		return e
	}
	return err
}

// Error represents an error annotated with a YAML path.
type Error interface {
	AppendPath(string)
	Wrapf(string, ...any)
	SetNode(ast.Node)
	Error() string
}

var (
	_ Error = (*PathError)(nil)
	_ Error = (*MultiPathError)(nil)
)

// PathError represents an error which occurred at Path.
type PathError struct {
	Path string
	Node ast.Node
	Err  error
}

// AppendPath implements Error interface.
func (e *PathError) AppendPath(path string) {
	e.Path = path + e.Path
}

// Wrapf implements Error interface.
func (e *PathError) Wrapf(format string, args ...any) {
	e.Err = errors.Wrapf(e.Err, format, args...)
}

// SetNode implements Error interface.
func (e *PathError) SetNode(node ast.Node) {
	e.Node = node
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) yml() string {
	if e.Node == nil || e.Path == "" {
		return ""
	}
	path, err := yaml.PathString(fmt.Sprintf("$%s", e.Path))
	if path == nil || err != nil {
		return ""
	}
	node, err := path.FilterNode(e.Node)
	if node == nil || err != nil {
		return ""
	}
	var p printer.Printer
	return p.PrintErrorToken(node.GetToken(), false)
}

func (e *PathError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if yml := e.yml(); yml != "" {
		return fmt.Sprintf("%s\n%s", msg, yml)
	}
	return msg
}

// MultiPathError represents multiple errors.
type MultiPathError struct {
	Errs []error
	err  error
}

func (e *MultiPathError) Error() string {
	prefix := ""
	if e.err != nil {
		prefix = e.err.Error()
	}
	mulerr := &multierror.Error{
		ErrorFormat: func(es []error) string {
			if len(es) == 1 {
				return fmt.Sprintf("1 error occurred:\n%s", es[0].Error())
			}
			points := make([]string, len(es))
			for i, err := range es {
				points[i] = err.Error()
			}
			return fmt.Sprintf("%d errors occurred:\n%s", len(es), strings.Join(points, "\n"))
		},
	}
	for _, err := range e.Errs {
		mulerr = multierror.Append(mulerr, errors.Errorf("%s%s", prefix, err.Error()))
	}
	return mulerr.Error()
}

// Unwrap returns the aggregated errors.
func (e *MultiPathError) Unwrap() []error {
	return e.Errs
}

// AppendPath implements Error interface.
func (e *MultiPathError) AppendPath(path string) {
	for _, err := range e.Errs {
		if pe, ok := err.(Error); ok {
			pe.AppendPath(path)
		}
	}
}

// Wrapf implements Error interface.
func (e *MultiPathError) Wrapf(format string, args ...any) {
	if e.err == nil {
		e.err = errors.New("")
	}
	e.err = errors.Wrapf(e.err, format, args...)
}

// SetNode implements Error interface.
func (e *MultiPathError) SetNode(node ast.Node) {
	for _, err := range e.Errs {
		if pe, ok := err.(Error); ok {
			pe.SetNode(node)
		}
	}
}
