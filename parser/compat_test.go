package parser

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/dhamidi/jsonr/value"
)

// toGeneric flattens a value tree into the shape encoding/json produces for
// untyped unmarshaling. All numbers become float64.
func toGeneric(v value.Value) any {
	switch x := v.(type) {
	case value.Null:
		return nil
	case value.Bool:
		return bool(x)
	case value.Int:
		return float64(x)
	case value.Double:
		return float64(x)
	case value.String:
		return string(x)
	case value.List:
		out := make([]any, len(x))
		for i := range x {
			out[i] = toGeneric(x[i])
		}
		return out
	case *value.Dict:
		out := make(map[string]any, x.Len())
		for _, key := range x.Keys() {
			elem, _ := x.Get(key)
			out[key] = toGeneric(elem)
		}
		return out
	}
	return nil
}

// Strict RFC-conformant inputs must decode to the same trees as the
// standard library decoder.
func TestAgreesWithReferenceDecoder(t *testing.T) {
	inputs := []string{
		"[]",
		"{}",
		"[true, false, null]",
		`[0, 43, -1, 43.1, 4.3e-1, 2147483648, -2147483649]`,
		`["hello world", "", " \"\\\/\b\f\n\r\t", "ሴ", "😀"]`,
		`{"number":9.87654321, "null":null, "s":"str"}`,
		`{"inner":{"array":[true]},"false":false,"d":{}}`,
		`{"a.b":3,"c":2,"d.e.f":{"g.h.i.j":1}}`,
		"[[true], [], [false, [], [null]], null]",
		"[\n0,\n1,\n2,\n3\n]",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			root, perr := ParseWithDiagnostics([]byte(input))
			if perr != nil {
				t.Fatalf("parse: %v", perr)
			}
			var want any
			if err := json.Unmarshal([]byte(input), &want); err != nil {
				t.Fatalf("reference decoder: %v", err)
			}
			got := toGeneric(root)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("trees differ:\ngot  %#v\nwant %#v", got, want)
			}
		})
	}
}
