package parser

import (
	"math"
	"strconv"

	"github.com/dhamidi/jsonr/value"
)

// parseNumber scans a strict RFC 4627 number literal: optional '-', an
// integer part that is a single '0' or a non-zero digit followed by digits,
// an optional '.' fraction and an optional exponent, each requiring at
// least one digit. Hex and leading zeros are rejected.
func (r *Reader) parseNumber() (value.Value, *Error) {
	line, column := r.line, r.column
	start := r.pos

	if r.peek() == '-' {
		r.advance()
	}

	switch {
	case r.peek() == '0':
		r.advance()
		if isDigit(r.peek()) {
			return nil, newError(SyntaxError, line, column)
		}
	case isDigit(r.peek()):
		for isDigit(r.peek()) {
			r.advance()
		}
	default:
		return nil, newError(SyntaxError, line, column)
	}

	isInt := true
	if r.peek() == '.' {
		isInt = false
		r.advance()
		if !isDigit(r.peek()) {
			return nil, newError(SyntaxError, line, column)
		}
		for isDigit(r.peek()) {
			r.advance()
		}
	}
	if c := r.peek(); c == 'e' || c == 'E' {
		isInt = false
		r.advance()
		if c := r.peek(); c == '+' || c == '-' {
			r.advance()
		}
		if !isDigit(r.peek()) {
			return nil, newError(SyntaxError, line, column)
		}
		for isDigit(r.peek()) {
			r.advance()
		}
	}

	literal := string(r.input[start:r.pos])
	if isInt {
		if n, err := strconv.ParseInt(literal, 10, 32); err == nil {
			return value.Int(int32(n)), nil
		}
		// Out of int32 range: promote to double.
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, newError(SyntaxError, line, column)
	}
	return value.Double(f), nil
}
