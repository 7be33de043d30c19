// Package uricomponent implements percent-encoding of URI components.
package uricomponent

import (
	"strconv"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// ShouldEscape reports whether c is escaped by Encode.
// Only letters, digits and "-_.!~*'()" pass through unchanged.
func ShouldEscape(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return false
	}
	return true
}

// Encode escapes s so it can be placed safely inside a URI component.
// Every byte of a character outside the unreserved set is written as %XX
// with uppercase hex digits, so multi-byte characters are escaped as their
// UTF-8 sequence. Bytes that are not valid UTF-8 are escaped one by one.
func Encode(s string) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if ShouldEscape(s[i]) {
			hexCount++
		}
	}
	if hexCount == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*hexCount)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !ShouldEscape(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// EscapeError is returned by Decode for a malformed escape sequence.
type EscapeError struct {
	Offset   int
	Sequence string
}

func (e *EscapeError) Error() string {
	return "invalid URI component escape " + strconv.Quote(e.Sequence) + " at offset " + strconv.Itoa(e.Offset)
}

// Decode reverses Encode. Each %XX sequence, in either hex case, is replaced
// by the byte it denotes; "+" is kept as is.
func Decode(s string) (string, error) {
	n := 0
	for i := 0; i < len(s); {
		if s[i] != '%' {
			i++
			continue
		}
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			seq := s[i:]
			if len(seq) > 3 {
				seq = seq[:3]
			}
			return "", &EscapeError{Offset: i, Sequence: seq}
		}
		n++
		i += 3
	}
	if n == 0 {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s) - 2*n)
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return b.String(), nil
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
