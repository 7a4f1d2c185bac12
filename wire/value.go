package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/internal/util"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Value mirrors the engine's kind-tagged scalar: {"INT": n}, {"TEXT": s},
// or {"BOOLEAN": b}.
type Value struct {
	Int     *int64  `json:"INT,omitempty"`
	Text    *string `json:"TEXT,omitempty"`
	Boolean *bool   `json:"BOOLEAN,omitempty"`
}

// EncodeValue translates a canonical value to its wire form. An unset value
// (the zero Value) is an encoding error.
func EncodeValue(v spacetime.Value) (Value, error) {
	switch v.Kind() {
	case spacetime.KindInt:
		return Value{Int: util.Ptr(v.Int())}, nil
	case spacetime.KindText:
		return Value{Text: util.Ptr(v.Text())}, nil
	case spacetime.KindBool:
		return Value{Boolean: util.Ptr(v.Bool())}, nil
	}
	return Value{}, errors.Encodingf("cannot encode value without a kind")
}

// Decode translates the wire form back to a canonical value. A value with
// no recognized kind tag is a decoding error.
func (w Value) Decode() (spacetime.Value, error) {
	switch {
	case w.Int != nil:
		return spacetime.IntValue(*w.Int), nil
	case w.Text != nil:
		return spacetime.TextValue(*w.Text), nil
	case w.Boolean != nil:
		return spacetime.BoolValue(*w.Boolean), nil
	}
	return spacetime.Value{}, errors.Decodingf("value carries no recognized kind tag (want INT, TEXT, or BOOLEAN)")
}
