package wire

import (
	"bytes"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/internal/util"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Range mirrors the engine's dimension range union. Any is the unit variant
// and serializes as the bare string "Any"; the others are single-key
// objects. Exactly one variant is set on every value produced by
// EncodeRange or UnmarshalJSON.
type Range struct {
	Any                bool
	Single             *int64
	LimitRange         *[2]int64
	BeforeUnLimitRange *int64
	AfterUnLimitRange  *int64
}

// rangeObject is the object form shared by marshalling and unmarshalling.
type rangeObject struct {
	Single             *int64    `json:"Single,omitempty"`
	LimitRange         *[2]int64 `json:"LimitRange,omitempty"`
	BeforeUnLimitRange *int64    `json:"BeforeUnLimitRange,omitempty"`
	AfterUnLimitRange  *int64    `json:"AfterUnLimitRange,omitempty"`
}

// EncodeRange translates a canonical dimension range to its wire form.
// Every DimensionRange variant has a wire form, so this cannot fail.
func EncodeRange(r spacetime.DimensionRange) Range {
	lo, hi := r.Bounds()
	switch r.Kind() {
	case spacetime.RangeSingle:
		return Range{Single: util.Ptr(lo)}
	case spacetime.RangeInterval:
		return Range{LimitRange: &[2]int64{lo, hi}}
	case spacetime.RangeBefore:
		return Range{BeforeUnLimitRange: util.Ptr(hi)}
	case spacetime.RangeAfter:
		return Range{AfterUnLimitRange: util.Ptr(lo)}
	}
	return Range{Any: true}
}

// Decode translates the wire form back to the canonical range. A Range with
// no recognized variant set is a decoding error.
func (r Range) Decode() (spacetime.DimensionRange, error) {
	switch {
	case r.Any:
		return spacetime.AnyRange(), nil
	case r.Single != nil:
		return spacetime.Single(*r.Single), nil
	case r.LimitRange != nil:
		return spacetime.Interval(r.LimitRange[0], r.LimitRange[1]), nil
	case r.BeforeUnLimitRange != nil:
		return spacetime.Before(*r.BeforeUnLimitRange), nil
	case r.AfterUnLimitRange != nil:
		return spacetime.After(*r.AfterUnLimitRange), nil
	}
	return spacetime.DimensionRange{}, errors.Decodingf(
		"dimension range carries no recognized variant tag (want Any, Single, LimitRange, BeforeUnLimitRange, or AfterUnLimitRange)")
}

// MarshalJSON renders the externally-tagged form, with the Any unit variant
// as a bare string.
func (r Range) MarshalJSON() ([]byte, error) {
	if r.Any {
		return []byte(`"Any"`), nil
	}
	return JSON.Marshal(rangeObject{
		Single:             r.Single,
		LimitRange:         r.LimitRange,
		BeforeUnLimitRange: r.BeforeUnLimitRange,
		AfterUnLimitRange:  r.AfterUnLimitRange,
	})
}

// UnmarshalJSON accepts both syntactic shapes of the union: the bare string
// unit variant and the single-key object form.
func (r *Range) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag string
		if err := JSON.Unmarshal(trimmed, &tag); err != nil {
			return err
		}
		if tag != "Any" {
			return errors.Decodingf("unknown dimension range tag %q", tag)
		}
		*r = Range{Any: true}
		return nil
	}

	var obj rangeObject
	if err := JSON.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = Range{
		Single:             obj.Single,
		LimitRange:         obj.LimitRange,
		BeforeUnLimitRange: obj.BeforeUnLimitRange,
		AfterUnLimitRange:  obj.AfterUnLimitRange,
	}
	return nil
}
