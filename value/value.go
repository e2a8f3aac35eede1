// Package value defines the tree of values produced by parsing JSON.
//
// A Value is one of seven variants: Null, Bool, Int, Double, String, List
// or Dict. The set is closed; every variant supports deep equality and
// deep copying.
package value

type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	}
	return "invalid"
}

// Value is a node in a parsed tree. Values of different kinds are never
// equal, even when numerically equivalent (Int(1) is not Double(1)).
type Value interface {
	Kind() Kind
	Equal(other Value) bool
	Clone() Value

	isValue()
}

type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) isValue()   {}

func (Null) Equal(other Value) bool {
	return other != nil && other.Kind() == KindNull
}

func (n Null) Clone() Value { return n }

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) isValue()   {}

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

func (b Bool) Clone() Value { return b }

// Int holds numbers that fit the signed 32-bit range; anything wider is
// represented as a Double.
type Int int32

func (Int) Kind() Kind { return KindInt }
func (Int) isValue()   {}

func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i == o
}

func (i Int) Clone() Value { return i }

type Double float64

func (Double) Kind() Kind { return KindDouble }
func (Double) isValue()   {}

func (d Double) Equal(other Value) bool {
	o, ok := other.(Double)
	return ok && d == o
}

func (d Double) Clone() Value { return d }

// String holds decoded text. It may contain NUL bytes; its length is
// explicit.
type String string

func (String) Kind() Kind { return KindString }
func (String) isValue()   {}

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func (s String) Clone() Value { return s }

type List []Value

func (List) Kind() Kind { return KindList }
func (List) isValue()   {}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (l List) Clone() Value {
	out := make(List, len(l))
	for i := range l {
		out[i] = l[i].Clone()
	}
	return out
}

// Dict maps unique string keys to values. Keys iterate in insertion order;
// setting an existing key replaces its value but keeps its position.
// Equality is key-set based and ignores insertion order.
type Dict struct {
	keys    []string
	entries map[string]Value
}

func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

func (*Dict) Kind() Kind { return KindDict }
func (*Dict) isValue()   {}

func (d *Dict) Set(key string, v Value) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = v
}

func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

func (d *Dict) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

func (d *Dict) Equal(other Value) bool {
	o, ok := other.(*Dict)
	if !ok || d.Len() != o.Len() {
		return false
	}
	for key, v := range d.entries {
		ov, ok := o.entries[key]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (d *Dict) Clone() Value {
	out := NewDict()
	for _, key := range d.keys {
		out.Set(key, d.entries[key].Clone())
	}
	return out
}
