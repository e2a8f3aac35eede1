// Package parser reads JSON text into a value tree, validating syntax
// against RFC 4627 with two leniency extensions: C-style comments are
// always accepted, and trailing commas are accepted when enabled with
// WithTrailingCommas.
//
// Parsing is a single pass: a character cursor tracking the 1-based line
// and column feeds a recursive-descent parser that builds nested values
// directly, without a separate token stream. Nesting is bounded at 100
// levels, so adversarial input fails with a reported error instead of
// exhausting the call stack.
//
// On failure the parser stops at the first violation and reports an
// *Error with an ErrorKind, the position of the offending character, and
// a formatted message:
//
//	root, err := parser.ParseWithDiagnostics([]byte(`[1,]`))
//	// err.Kind == parser.TrailingComma
//	// err.Message == "Line: 1, column: 4, Trailing comma not allowed."
//
// Beyond comments and trailing commas, string literals accept three
// non-standard escapes: \v, \/ and \xHH (the code point U+00HH). Raw
// bytes inside string literals must be valid UTF-8; invalid sequences,
// including overlong encodings, are rejected rather than replaced.
package parser
