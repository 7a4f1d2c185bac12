package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/internal/util"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Filter mirrors the engine's filter union: one kind tag (BOOLEAN, INT,
// TEXT) wrapping one predicate. Filters only travel toward the engine, so
// no decoder is defined.
type Filter struct {
	Boolean *BoolPredicate `json:"BOOLEAN,omitempty"`
	Int     *IntPredicate  `json:"INT,omitempty"`
	Text    *TextPredicate `json:"TEXT,omitempty"`
}

// BoolPredicate is the bool predicate union. IsTrue and IsFalse are unit
// variants and serialize as bare strings, so the type carries a custom
// marshaller.
type BoolPredicate struct {
	IsTrue    bool
	IsFalse   bool
	Equals    *bool
	NotEquals *bool
}

func (p BoolPredicate) MarshalJSON() ([]byte, error) {
	switch {
	case p.IsTrue:
		return []byte(`"IsTrue"`), nil
	case p.IsFalse:
		return []byte(`"IsFalse"`), nil
	case p.Equals != nil:
		return JSON.Marshal(struct {
			Equals bool `json:"Equals"`
		}{*p.Equals})
	case p.NotEquals != nil:
		return JSON.Marshal(struct {
			NotEquals bool `json:"NotEquals"`
		}{*p.NotEquals})
	}
	return nil, errors.Encodingf("bool predicate carries no variant")
}

// IntPredicate is the int predicate union. All variants carry payloads, so
// plain omitempty serialization suffices. In and NotIn are pointers to
// distinguish an unset variant from a deliberately empty list.
type IntPredicate struct {
	Equal        *int64    `json:"Equal,omitempty"`
	NotEqual     *int64    `json:"NotEqual,omitempty"`
	GreaterThan  *int64    `json:"GreaterThan,omitempty"`
	GreaterEqual *int64    `json:"GreaterEqual,omitempty"`
	LessThan     *int64    `json:"LessThan,omitempty"`
	LessEqual    *int64    `json:"LessEqual,omitempty"`
	Between      *[2]int64 `json:"Between,omitempty"`
	In           *[]int64  `json:"In,omitempty"`
	NotIn        *[]int64  `json:"NotIn,omitempty"`
}

// TextPredicate is the text predicate union.
type TextPredicate struct {
	Equal                *string `json:"Equal,omitempty"`
	NotEqual             *string `json:"NotEqual,omitempty"`
	Contains             *string `json:"Contains,omitempty"`
	NotContains          *string `json:"NotContains,omitempty"`
	StartsWith           *string `json:"StartsWith,omitempty"`
	EndsWith             *string `json:"EndsWith,omitempty"`
	CaseInsensitiveEqual *string `json:"CaseInsensitiveEqual,omitempty"`
}

// EncodeFilter translates a canonical filter to its wire form. A filter
// outside the twenty constructed shapes (such as the zero value) is an
// encoding error naming the offending payload.
func EncodeFilter(f spacetime.Filter) (Filter, error) {
	switch f.Kind() {
	case spacetime.FilterBool:
		p, err := encodeBoolPredicate(f)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Boolean: &p}, nil
	case spacetime.FilterInt:
		p, err := encodeIntPredicate(f)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Int: &p}, nil
	case spacetime.FilterText:
		p, err := encodeTextPredicate(f)
		if err != nil {
			return Filter{}, err
		}
		return Filter{Text: &p}, nil
	}
	return Filter{}, errors.Encodingf("cannot encode %s", f)
}

func encodeBoolPredicate(f spacetime.Filter) (BoolPredicate, error) {
	switch f.Op() {
	case spacetime.OpIsTrue:
		return BoolPredicate{IsTrue: true}, nil
	case spacetime.OpIsFalse:
		return BoolPredicate{IsFalse: true}, nil
	case spacetime.OpEquals:
		return BoolPredicate{Equals: util.Ptr(f.BoolArg())}, nil
	case spacetime.OpNotEquals:
		return BoolPredicate{NotEquals: util.Ptr(f.BoolArg())}, nil
	}
	return BoolPredicate{}, errors.Encodingf("cannot encode %s", f)
}

func encodeIntPredicate(f spacetime.Filter) (IntPredicate, error) {
	switch f.Op() {
	case spacetime.OpEqual:
		return IntPredicate{Equal: util.Ptr(f.IntArg())}, nil
	case spacetime.OpNotEqual:
		return IntPredicate{NotEqual: util.Ptr(f.IntArg())}, nil
	case spacetime.OpGreaterThan:
		return IntPredicate{GreaterThan: util.Ptr(f.IntArg())}, nil
	case spacetime.OpGreaterEqual:
		return IntPredicate{GreaterEqual: util.Ptr(f.IntArg())}, nil
	case spacetime.OpLessThan:
		return IntPredicate{LessThan: util.Ptr(f.IntArg())}, nil
	case spacetime.OpLessEqual:
		return IntPredicate{LessEqual: util.Ptr(f.IntArg())}, nil
	case spacetime.OpBetween:
		lo, hi := f.IntBounds()
		return IntPredicate{Between: &[2]int64{lo, hi}}, nil
	case spacetime.OpIn:
		return IntPredicate{In: util.Ptr(nonNilInts(f.IntList()))}, nil
	case spacetime.OpNotIn:
		return IntPredicate{NotIn: util.Ptr(nonNilInts(f.IntList()))}, nil
	}
	return IntPredicate{}, errors.Encodingf("cannot encode %s", f)
}

func encodeTextPredicate(f spacetime.Filter) (TextPredicate, error) {
	arg := util.Ptr(f.TextArg())
	switch f.Op() {
	case spacetime.OpEqual:
		return TextPredicate{Equal: arg}, nil
	case spacetime.OpNotEqual:
		return TextPredicate{NotEqual: arg}, nil
	case spacetime.OpContains:
		return TextPredicate{Contains: arg}, nil
	case spacetime.OpNotContains:
		return TextPredicate{NotContains: arg}, nil
	case spacetime.OpStartsWith:
		return TextPredicate{StartsWith: arg}, nil
	case spacetime.OpEndsWith:
		return TextPredicate{EndsWith: arg}, nil
	case spacetime.OpCaseInsensitiveEqual:
		return TextPredicate{CaseInsensitiveEqual: arg}, nil
	}
	return TextPredicate{}, errors.Encodingf("cannot encode %s", f)
}

// nonNilInts keeps an In/NotIn list serializing as [] rather than null.
func nonNilInts(ns []int64) []int64 {
	if ns == nil {
		return []int64{}
	}
	return ns
}
