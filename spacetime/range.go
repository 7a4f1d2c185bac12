// Package spacetime defines the canonical typed model for Tesseract
// space-time queries: dimension ranges, four-dimensional identifiers,
// recursive range expressions, value filters, and the records the engine
// returns for matched regions.
//
// All types here are transient value objects. Invariants are enforced at
// construction; once built, values are safe to copy and share. Geometry is
// never interpreted on this side of the boundary: the engine owns quadtree
// semantics, set algebra, and bound validation.
package spacetime

import (
	"bytes"
	"encoding/json"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/tesseractdb/go-tesseract/errors"
)

// jsonCodec parses caller-authored compact notation. Standard-library
// semantics, shared with the wire layer's serializer.
var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// RangeKind identifies which dimension range variant is active.
type RangeKind uint8

const (
	// RangeAny matches every index on the axis. The zero value.
	RangeAny RangeKind = iota
	// RangeSingle matches exactly one index.
	RangeSingle
	// RangeInterval matches the closed interval [lo, hi].
	RangeInterval
	// RangeBefore matches every index up to and including hi.
	RangeBefore
	// RangeAfter matches every index from lo upward.
	RangeAfter
)

func (k RangeKind) String() string {
	switch k {
	case RangeAny:
		return "Any"
	case RangeSingle:
		return "Single"
	case RangeInterval:
		return "Interval"
	case RangeBefore:
		return "UnboundedBefore"
	case RangeAfter:
		return "UnboundedAfter"
	}
	return "RangeKind(" + strconv.Itoa(int(k)) + ")"
}

// DimensionRange constrains one scalar axis of a space-time identifier.
// Exactly one of the five variants is active; the zero value is the
// unconstrained Any range. The struct is comparable, so two ranges can be
// checked with ==.
//
// Bounds are carried as given. Ordering (lo <= hi) is the engine's concern,
// not this layer's.
type DimensionRange struct {
	kind RangeKind
	lo   int64
	hi   int64
}

// AnyRange returns the unconstrained range. Identical to the zero value.
func AnyRange() DimensionRange {
	return DimensionRange{}
}

// Single returns a range matching exactly the index v.
func Single(v int64) DimensionRange {
	return DimensionRange{kind: RangeSingle, lo: v, hi: v}
}

// Interval returns the closed range [lo, hi].
func Interval(lo, hi int64) DimensionRange {
	return DimensionRange{kind: RangeInterval, lo: lo, hi: hi}
}

// Before returns the half-open range matching every index up to and
// including hi.
func Before(hi int64) DimensionRange {
	return DimensionRange{kind: RangeBefore, hi: hi}
}

// After returns the half-open range matching every index from lo upward.
func After(lo int64) DimensionRange {
	return DimensionRange{kind: RangeAfter, lo: lo}
}

// Kind reports the active variant.
func (r DimensionRange) Kind() RangeKind {
	return r.kind
}

// Bounds returns the raw bounds. Which is meaningful depends on Kind:
// RangeSingle uses lo (hi mirrors it), RangeInterval uses both, RangeBefore
// uses hi, RangeAfter uses lo. For RangeAny both are zero and meaningless.
func (r DimensionRange) Bounds() (lo, hi int64) {
	return r.lo, r.hi
}

// String renders the compact text form used inside ID.String(): "-" for
// Any, "5" for Single, "5:10" for Interval, "-:10" and "5:-" for the
// half-open variants.
func (r DimensionRange) String() string {
	switch r.kind {
	case RangeSingle:
		return strconv.FormatInt(r.lo, 10)
	case RangeInterval:
		return strconv.FormatInt(r.lo, 10) + ":" + strconv.FormatInt(r.hi, 10)
	case RangeBefore:
		return "-:" + strconv.FormatInt(r.hi, 10)
	case RangeAfter:
		return strconv.FormatInt(r.lo, 10) + ":-"
	}
	return "-"
}

// unboundedMarker is the string element that stands for a missing bound in
// the compact array notation.
const unboundedMarker = `"-"`

// MarshalJSON renders the compact array notation: ["-"] for Any, [v] for
// Single, [lo,hi] for Interval, ["-",hi] and [lo,"-"] for the half-open
// variants. Every constructed range has a valid form, so this never fails.
func (r DimensionRange) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case RangeSingle:
		return []byte("[" + strconv.FormatInt(r.lo, 10) + "]"), nil
	case RangeInterval:
		return []byte("[" + strconv.FormatInt(r.lo, 10) + "," + strconv.FormatInt(r.hi, 10) + "]"), nil
	case RangeBefore:
		return []byte(`["-",` + strconv.FormatInt(r.hi, 10) + "]"), nil
	case RangeAfter:
		return []byte("[" + strconv.FormatInt(r.lo, 10) + `,"-"]`), nil
	}
	return []byte(`["-"]`), nil
}

// UnmarshalJSON parses the compact array notation. Any shape outside the
// five-form bijection is an encoding error.
func (r *DimensionRange) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRangeArray(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRangeArray decodes one compact-notation array into a DimensionRange:
//
//	[v]       -> Single(v)
//	[lo, hi]  -> Interval(lo, hi)
//	["-", hi] -> Before(hi)
//	[lo, "-"] -> After(lo)
//	["-"]     -> AnyRange()
//
// Every other shape, including [], ["-","-"], three elements, and
// non-integer elements, fails with an encoding error.
func ParseRangeArray(data []byte) (DimensionRange, error) {
	var elems []json.RawMessage
	if err := jsonCodec.Unmarshal(data, &elems); err != nil {
		return DimensionRange{}, errors.Encodingf("invalid dimension range %s: not an array", string(data))
	}

	switch len(elems) {
	case 1:
		if isUnbounded(elems[0]) {
			return AnyRange(), nil
		}
		v, ok := parseBound(elems[0])
		if !ok {
			return DimensionRange{}, errors.Encodingf("invalid dimension range %s: element is not an integer", string(data))
		}
		return Single(v), nil

	case 2:
		loOpen := isUnbounded(elems[0])
		hiOpen := isUnbounded(elems[1])
		switch {
		case loOpen && hiOpen:
			return DimensionRange{}, errors.Encodingf(`invalid dimension range %s: use ["-"] for the unconstrained range`, string(data))
		case loOpen:
			hi, ok := parseBound(elems[1])
			if !ok {
				return DimensionRange{}, errors.Encodingf("invalid dimension range %s: upper bound is not an integer", string(data))
			}
			return Before(hi), nil
		case hiOpen:
			lo, ok := parseBound(elems[0])
			if !ok {
				return DimensionRange{}, errors.Encodingf("invalid dimension range %s: lower bound is not an integer", string(data))
			}
			return After(lo), nil
		default:
			lo, okLo := parseBound(elems[0])
			hi, okHi := parseBound(elems[1])
			if !okLo || !okHi {
				return DimensionRange{}, errors.Encodingf("invalid dimension range %s: bound is not an integer", string(data))
			}
			return Interval(lo, hi), nil
		}
	}

	return DimensionRange{}, errors.Encodingf("invalid dimension range %s: expected 1 or 2 elements", string(data))
}

func isUnbounded(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == unboundedMarker
}

func parseBound(raw json.RawMessage) (int64, bool) {
	v, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
