package parser

import (
	"testing"

	"github.com/dhamidi/jsonr/value"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"43", value.Int(43)},
		{"0", value.Int(0)},
		{"-1", value.Int(-1)},
		{"2147483647", value.Int(2147483647)},
		{"-2147483648", value.Int(-2147483648)},

		// Out of int32 range: promoted to double.
		{"2147483648", value.Double(2147483648)},
		{"-2147483649", value.Double(-2147483649)},

		{"43.1", value.Double(43.1)},
		{"4.3e-1", value.Double(0.43)},
		{"2.1e0", value.Double(2.1)},
		{"2.1e+0001", value.Double(21.0)},
		{"0.01", value.Double(0.01)},
		{"1.00", value.Double(1.0)},
		{"-0.5e2", value.Double(-50)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := mustParse(t, tt.input, WithAnyRoot())
			if got.Kind() != tt.want.Kind() {
				t.Fatalf("kind: got %v, want %v", got.Kind(), tt.want.Kind())
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidNumbers(t *testing.T) {
	inputs := []string{
		// Leading zeros and hex are not RFC 4627.
		"043",
		"0x43",
		"00",

		// Fractions need digits on both sides of the point.
		"1.",
		".1",
		"1.e10",

		// Exponents need at least one digit.
		"1e",
		"1E",
		"1e1.",
		"1e1.0",

		// Values overflowing to infinity are rejected, not clamped.
		"1e1000",
		"-1e1000",

		// Barewords are never numbers.
		"NaN",
		"nan",
		"inf",
		"Infinity",

		"4.3.1",
		"4e3.1",
		"-",
		"--1",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			mustFail(t, input, WithAnyRoot())
		})
	}
}

func TestInvalidNumbersNested(t *testing.T) {
	for _, input := range []string{"[043]", "[1.]", "[1e]", "[1e1000]", "[0x43]"} {
		t.Run(input, func(t *testing.T) {
			mustFail(t, input)
		})
	}
}
