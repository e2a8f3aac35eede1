package parser

import "fmt"

// ErrorKind identifies the first violation encountered during a parse.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	SyntaxError
	InvalidEscape
	TooMuchNesting
	TrailingComma
	UnquotedDictionaryKey
	BadRootElementType
	UnexpectedDataAfterRoot
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case InvalidEscape:
		return "InvalidEscape"
	case TooMuchNesting:
		return "TooMuchNesting"
	case TrailingComma:
		return "TrailingComma"
	case UnquotedDictionaryKey:
		return "UnquotedDictionaryKey"
	case BadRootElementType:
		return "BadRootElementType"
	case UnexpectedDataAfterRoot:
		return "UnexpectedDataAfterRoot"
	}
	return "UnknownError"
}

func (k ErrorKind) description() string {
	switch k {
	case SyntaxError:
		return "Syntax error."
	case InvalidEscape:
		return "Invalid escape sequence."
	case TooMuchNesting:
		return "Too much nesting."
	case TrailingComma:
		return "Trailing comma not allowed."
	case UnquotedDictionaryKey:
		return "Dictionary keys must be quoted."
	case BadRootElementType:
		return "Root value must be an array or object."
	case UnexpectedDataAfterRoot:
		return "Unexpected data after root element."
	}
	return "Unknown error."
}

// Error reports where and why a parse failed. Line and Column are 1-based;
// columns count decoded characters, not bytes.
type Error struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// FormatErrorMessage renders a position and a description the way Message
// is built for every Error.
func FormatErrorMessage(line, column int, description string) string {
	return fmt.Sprintf("Line: %d, column: %d, %s", line, column, description)
}

func newError(kind ErrorKind, line, column int) *Error {
	return &Error{
		Kind:    kind,
		Line:    line,
		Column:  column,
		Message: FormatErrorMessage(line, column, kind.description()),
	}
}
