package parser

import (
	"bytes"
	"unicode/utf8"

	"github.com/dhamidi/jsonr/value"
)

// maxNestingDepth bounds how deeply lists and dicts may nest. The limit is
// checked before descending, so pathologically deep input fails with
// TooMuchNesting instead of exhausting the call stack.
const maxNestingDepth = 100

type Option func(*Reader)

// WithTrailingCommas accepts a comma immediately before a closing ] or }.
// Empty elements are still rejected: two consecutive commas or a leading
// comma are errors regardless of this option.
func WithTrailingCommas() Option {
	return func(r *Reader) {
		r.allowTrailingCommas = true
	}
}

// WithAnyRoot accepts a scalar (null, bool, number, string) as the root
// value. By default the root must be a list or a dict.
func WithAnyRoot() Option {
	return func(r *Reader) {
		r.anyRoot = true
	}
}

// Reader parses one input at a time. It may be reused; all cursor and depth
// state is reset by each call to Read. Comments (both /* */ and //) are
// always skipped wherever whitespace is allowed.
type Reader struct {
	allowTrailingCommas bool
	anyRoot             bool

	input  []byte
	pos    int
	line   int
	column int
	depth  int
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse converts input into a value tree, or reports the first violation.
func Parse(input []byte, opts ...Option) (value.Value, error) {
	root, err := ParseWithDiagnostics(input, opts...)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseWithDiagnostics is Parse with a structured error carrying the kind
// and the 1-based line and column of the failure point.
func ParseWithDiagnostics(input []byte, opts ...Option) (value.Value, *Error) {
	return NewReader(opts...).Read(input)
}

func (r *Reader) Read(input []byte) (value.Value, *Error) {
	r.input = input
	r.pos = 0
	r.line = 1
	r.column = 1
	r.depth = 0

	if err := r.skipInsignificant(); err != nil {
		return nil, err
	}
	if !r.anyRoot {
		if r.eof() {
			return nil, r.errorHere(SyntaxError)
		}
		if c := r.peek(); c != '[' && c != '{' {
			return nil, r.errorHere(BadRootElementType)
		}
	}
	root, err := r.parseValue()
	if err != nil {
		return nil, err
	}
	if err := r.skipInsignificant(); err != nil {
		return nil, err
	}
	if !r.eof() {
		return nil, r.errorHere(UnexpectedDataAfterRoot)
	}
	return root, nil
}

func (r *Reader) eof() bool { return r.pos >= len(r.input) }

func (r *Reader) peek() byte {
	if r.pos >= len(r.input) {
		return 0
	}
	return r.input[r.pos]
}

func (r *Reader) peekN(n int) byte {
	if r.pos+n >= len(r.input) {
		return 0
	}
	return r.input[r.pos+n]
}

// advance consumes one character. Columns count characters, so a multi-byte
// rune moves the column by one. A '\n' starts a new line; a lone '\r' does
// not, which makes "\r\n" a single line break.
func (r *Reader) advance() {
	if r.pos >= len(r.input) {
		return
	}
	b := r.input[r.pos]
	if b < utf8.RuneSelf {
		r.pos++
		if b == '\n' {
			r.line++
			r.column = 1
		} else {
			r.column++
		}
		return
	}
	_, size := utf8.DecodeRune(r.input[r.pos:])
	r.pos += size
	r.column++
}

func (r *Reader) advanceN(n int) {
	for i := 0; i < n; i++ {
		r.advance()
	}
}

func (r *Reader) errorHere(kind ErrorKind) *Error {
	return newError(kind, r.line, r.column)
}

// skipInsignificant consumes whitespace and comments. It stops at the first
// significant character, leaving the cursor on it.
func (r *Reader) skipInsignificant() *Error {
	for {
		switch r.peek() {
		case ' ', '\t', '\n', '\r':
			r.advance()
		case '/':
			switch r.peekN(1) {
			case '*':
				if err := r.skipBlockComment(); err != nil {
					return err
				}
			case '/':
				r.skipLineComment()
			default:
				return nil
			}
		default:
			return nil
		}
	}
}

func (r *Reader) skipBlockComment() *Error {
	line, column := r.line, r.column
	r.advanceN(2)
	for !r.eof() {
		if r.peek() == '*' && r.peekN(1) == '/' {
			r.advanceN(2)
			return nil
		}
		r.advance()
	}
	// Ran off the end before */; reported at the opening slash.
	return newError(SyntaxError, line, column)
}

func (r *Reader) skipLineComment() {
	r.advanceN(2)
	for !r.eof() && r.peek() != '\n' {
		r.advance()
	}
}

func (r *Reader) parseValue() (value.Value, *Error) {
	switch c := r.peek(); {
	case c == '[':
		return r.parseList()
	case c == '{':
		return r.parseDict()
	case c == '"':
		return r.parseString()
	case c == '-' || isDigit(c):
		return r.parseNumber()
	case c == 't':
		return r.parseKeyword("true", value.Bool(true))
	case c == 'f':
		return r.parseKeyword("false", value.Bool(false))
	case c == 'n':
		return r.parseKeyword("null", value.Null{})
	default:
		return nil, r.errorHere(SyntaxError)
	}
}

// parseKeyword matches an exact, case-sensitive literal. A partial match
// such as "nu" is a syntax error at the start of the token, never null.
func (r *Reader) parseKeyword(word string, v value.Value) (value.Value, *Error) {
	if !bytes.HasPrefix(r.input[r.pos:], []byte(word)) {
		return nil, r.errorHere(SyntaxError)
	}
	r.advanceN(len(word))
	return v, nil
}

func (r *Reader) parseList() (value.Value, *Error) {
	if r.depth >= maxNestingDepth {
		return nil, r.errorHere(TooMuchNesting)
	}
	r.depth++
	defer func() { r.depth-- }()

	r.advance() // '['
	list := value.List{}
	if err := r.skipInsignificant(); err != nil {
		return nil, err
	}
	if r.peek() == ']' {
		r.advance()
		return list, nil
	}
	for {
		elem, err := r.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, elem)
		if err := r.skipInsignificant(); err != nil {
			return nil, err
		}
		switch r.peek() {
		case ',':
			r.advance()
			if err := r.skipInsignificant(); err != nil {
				return nil, err
			}
			if r.peek() == ']' {
				if !r.allowTrailingCommas {
					return nil, r.errorHere(TrailingComma)
				}
				r.advance()
				return list, nil
			}
		case ']':
			r.advance()
			return list, nil
		default:
			return nil, r.errorHere(SyntaxError)
		}
	}
}

func (r *Reader) parseDict() (value.Value, *Error) {
	if r.depth >= maxNestingDepth {
		return nil, r.errorHere(TooMuchNesting)
	}
	r.depth++
	defer func() { r.depth-- }()

	r.advance() // '{'
	dict := value.NewDict()
	if err := r.skipInsignificant(); err != nil {
		return nil, err
	}
	if r.peek() == '}' {
		r.advance()
		return dict, nil
	}
	for {
		if r.peek() != '"' {
			return nil, r.errorHere(UnquotedDictionaryKey)
		}
		key, err := r.decodeString()
		if err != nil {
			return nil, err
		}
		if err := r.skipInsignificant(); err != nil {
			return nil, err
		}
		if r.peek() != ':' {
			return nil, r.errorHere(SyntaxError)
		}
		r.advance()
		if err := r.skipInsignificant(); err != nil {
			return nil, err
		}
		elem, err := r.parseValue()
		if err != nil {
			return nil, err
		}
		// Duplicate keys: last write wins.
		dict.Set(key, elem)
		if err := r.skipInsignificant(); err != nil {
			return nil, err
		}
		switch r.peek() {
		case ',':
			r.advance()
			if err := r.skipInsignificant(); err != nil {
				return nil, err
			}
			if r.peek() == '}' {
				if !r.allowTrailingCommas {
					return nil, r.errorHere(TrailingComma)
				}
				r.advance()
				return dict, nil
			}
		case '}':
			r.advance()
			return dict, nil
		default:
			return nil, r.errorHere(SyntaxError)
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
