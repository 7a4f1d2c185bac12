package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Expr mirrors the engine's range expression union. Slice variants are
// pointers so an empty combinator still serializes as its tag with an empty
// array. Expressions only travel toward the engine; replies carry flat leaf
// IDs, decoded by ID and Record.
type Expr struct {
	IDs      *[]ID         `json:"IDs,omitempty"`
	And      *[]Expr       `json:"AND,omitempty"`
	Or       *[]Expr       `json:"OR,omitempty"`
	Xor      *[]Expr       `json:"XOR,omitempty"`
	Not      *[]Expr       `json:"NOT,omitempty"`
	Filter   *FilterClause `json:"Filter,omitempty"`
	HasValue *SpaceKey     `json:"HasValue,omitempty"`
}

// FilterClause is the payload of the Filter expression variant.
type FilterClause struct {
	Space  string `json:"space"`
	Key    string `json:"key"`
	Filter Filter `json:"filter"`
}

// SpaceKey names a space/key pair. Payload of the HasValue expression
// variant and of the DropKey command.
type SpaceKey struct {
	Space string `json:"space"`
	Key   string `json:"key"`
}

// EncodeExpr translates a canonical expression tree to its wire form,
// recursing through combinators with child order preserved. A single ID
// leaf becomes the one-element IDs set form. A FilterExpr without a filter
// expresses bare existence and folds to the HasValue form. Anything outside
// the sealed variant set is an encoding error.
func EncodeExpr(e spacetime.Expr) (Expr, error) {
	switch v := e.(type) {
	case spacetime.ID:
		return Expr{IDs: &[]ID{EncodeID(v)}}, nil
	case spacetime.And:
		kids, err := encodeChildren(v.Exprs)
		if err != nil {
			return Expr{}, err
		}
		return Expr{And: &kids}, nil
	case spacetime.Or:
		kids, err := encodeChildren(v.Exprs)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Or: &kids}, nil
	case spacetime.Xor:
		kids, err := encodeChildren(v.Exprs)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Xor: &kids}, nil
	case spacetime.Not:
		kids, err := encodeChildren(v.Exprs)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Not: &kids}, nil
	case spacetime.FilterExpr:
		if v.Filter == nil {
			return Expr{HasValue: &SpaceKey{Space: v.Space, Key: v.Key}}, nil
		}
		f, err := EncodeFilter(*v.Filter)
		if err != nil {
			return Expr{}, err
		}
		return Expr{Filter: &FilterClause{Space: v.Space, Key: v.Key, Filter: f}}, nil
	case spacetime.HasValueExpr:
		return Expr{HasValue: &SpaceKey{Space: v.Space, Key: v.Key}}, nil
	case nil:
		return Expr{}, errors.Encodingf("unrecognized range expression: nil")
	}
	return Expr{}, errors.Encodingf("unrecognized range expression %T", e)
}

func encodeChildren(exprs []spacetime.Expr) ([]Expr, error) {
	out := make([]Expr, 0, len(exprs))
	for i, child := range exprs {
		enc, err := EncodeExpr(child)
		if err != nil {
			return nil, errors.Wrapf(err, "child %d", i)
		}
		out = append(out, enc)
	}
	return out, nil
}
