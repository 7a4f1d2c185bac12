package spacetime

import (
	"strconv"
	"strings"

	"github.com/tesseractdb/go-tesseract/errors"
)

// ValueKind names one of the engine's three storable value types. It doubles
// as the key type in CreateKey. The zero value is reserved so an unset Value
// is recognizably invalid.
type ValueKind uint8

const (
	valueKindUnset ValueKind = iota
	KindInt
	KindText
	KindBool
)

// String returns the engine's tag for the kind: INT, TEXT, or BOOLEAN.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "INT"
	case KindText:
		return "TEXT"
	case KindBool:
		return "BOOLEAN"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// ParseValueKind maps a user-facing kind name ("int", "text", "bool",
// "boolean", or an engine tag) to its ValueKind.
func ParseValueKind(s string) (ValueKind, error) {
	switch strings.ToLower(s) {
	case "int":
		return KindInt, nil
	case "text":
		return KindText, nil
	case "bool", "boolean":
		return KindBool, nil
	}
	return valueKindUnset, errors.Newf("unknown value kind %q (want int, text, or bool)", s)
}

// Value is a kind-tagged scalar stored at a region. Exactly one payload is
// meaningful, selected by Kind. Built via IntValue, TextValue, or BoolValue;
// the zero value is invalid and rejected at encode time.
type Value struct {
	kind ValueKind
	i    int64
	s    string
	b    bool
}

// IntValue returns an INT value.
func IntValue(n int64) Value { return Value{kind: KindInt, i: n} }

// TextValue returns a TEXT value.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// BoolValue returns a BOOLEAN value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the value type.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the payload of an INT value.
func (v Value) Int() int64 { return v.i }

// Text returns the payload of a TEXT value.
func (v Value) Text() string { return v.s }

// Bool returns the payload of a BOOLEAN value.
func (v Value) Bool() bool { return v.b }

// String renders the payload for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindText:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// MarshalJSON renders the payload as its bare JSON scalar, or null when the
// value is unset. The kind-tagged wire form lives in the wire package.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return jsonCodec.Marshal(v.i)
	case KindText:
		return jsonCodec.Marshal(v.s)
	case KindBool:
		return jsonCodec.Marshal(v.b)
	}
	return []byte("null"), nil
}
