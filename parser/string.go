package parser

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/jsonr/value"
)

func (r *Reader) parseString() (value.Value, *Error) {
	s, err := r.decodeString()
	if err != nil {
		return nil, err
	}
	return value.String(s), nil
}

// decodeString consumes a double-quoted literal, decoding escapes and
// validating that raw bytes form UTF-8. The result may contain NUL
// characters. An unterminated literal is reported at the opening quote.
func (r *Reader) decodeString() (string, *Error) {
	line, column := r.line, r.column
	r.advance() // opening '"'

	var b strings.Builder
	for {
		if r.eof() {
			return "", newError(SyntaxError, line, column)
		}
		switch c := r.input[r.pos]; {
		case c == '"':
			r.advance()
			return b.String(), nil
		case c == '\\':
			r.advance()
			if err := r.decodeEscape(&b); err != nil {
				return "", err
			}
		case c < utf8.RuneSelf:
			b.WriteByte(c)
			r.advance()
		default:
			_, size := utf8.DecodeRune(r.input[r.pos:])
			if size == 1 {
				// Invalid UTF-8, including overlong encodings and
				// stray continuation bytes. Never substituted.
				return "", r.errorHere(SyntaxError)
			}
			b.Write(r.input[r.pos : r.pos+size])
			r.advance()
		}
	}
}

// decodeEscape runs with the cursor on the character after a backslash.
// Errors are reported at that character.
func (r *Reader) decodeEscape(b *strings.Builder) *Error {
	line, column := r.line, r.column
	switch c := r.peek(); c {
	case '"', '\\', '/':
		b.WriteByte(c)
		r.advance()
	case 'b':
		b.WriteByte('\b')
		r.advance()
	case 'f':
		b.WriteByte('\f')
		r.advance()
	case 'n':
		b.WriteByte('\n')
		r.advance()
	case 'r':
		b.WriteByte('\r')
		r.advance()
	case 't':
		b.WriteByte('\t')
		r.advance()
	case 'v':
		b.WriteByte('\v')
		r.advance()
	case 'x':
		r.advance()
		n, ok := r.hexDigits(2)
		if !ok {
			return newError(InvalidEscape, line, column)
		}
		// \xHH is the code point U+00HH, re-encoded as UTF-8.
		b.WriteRune(rune(n))
	case 'u':
		r.advance()
		n, ok := r.hexDigits(4)
		if !ok {
			return newError(InvalidEscape, line, column)
		}
		return r.decodeCodeUnit(b, rune(n))
	default:
		return newError(InvalidEscape, line, column)
	}
	return nil
}

// decodeCodeUnit appends one \uHHHH code unit, combining a surrogate with a
// following \uHHHH escape into a single code point. An unpaired surrogate
// decodes to U+FFFD, matching utf16.DecodeRune.
func (r *Reader) decodeCodeUnit(b *strings.Builder, unit rune) *Error {
	if !utf16.IsSurrogate(unit) {
		b.WriteRune(unit)
		return nil
	}
	if r.peek() != '\\' || r.peekN(1) != 'u' {
		b.WriteRune(utf8.RuneError)
		return nil
	}
	r.advance()
	line, column := r.line, r.column
	r.advance()
	n, ok := r.hexDigits(4)
	if !ok {
		return newError(InvalidEscape, line, column)
	}
	second := rune(n)
	if c := utf16.DecodeRune(unit, second); c != utf8.RuneError {
		b.WriteRune(c)
		return nil
	}
	// Two escapes that do not form a pair: each stands alone.
	b.WriteRune(utf8.RuneError)
	return r.decodeCodeUnit(b, second)
}

// hexDigits consumes exactly n hex digits and returns their value.
func (r *Reader) hexDigits(n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		c := r.peek()
		if !isHexDigit(c) {
			return 0, false
		}
		v = v<<4 | uint32(hexValue(c))
		r.advance()
	}
	return v, true
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
