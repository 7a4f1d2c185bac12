package spacetime

import (
	"encoding/json"
	"strconv"

	"github.com/tesseractdb/go-tesseract/errors"
)

// ID identifies a region of four-dimensional space-time at a given quadtree
// resolution. Z (the resolution level) is always explicit. I is the time
// interval length: zero marks a purely spatial ID, non-zero a space-time ID
// whose T axis indexes intervals of I seconds. The four axis ranges default
// to Any.
//
// The JSON form is the compact notation object, e.g.
// {"z":3,"i":0,"f":["-"],"x":[5],"y":[2,4],"t":["-"]}. When parsing
// caller-authored JSON, i and the axes may be omitted (defaulting to 0 and
// Any); a missing z is an encoding error. Marshalling always emits all six
// fields.
type ID struct {
	Z int            `json:"z"`
	I int64          `json:"i"`
	F DimensionRange `json:"f"`
	X DimensionRange `json:"x"`
	Y DimensionRange `json:"y"`
	T DimensionRange `json:"t"`
}

// NewSpatialID returns a purely spatial ID (interval length zero).
func NewSpatialID(z int, f, x, y DimensionRange) ID {
	return ID{Z: z, F: f, X: x, Y: y}
}

// NewSpaceTimeID returns an ID with a time dimension of interval length i.
func NewSpaceTimeID(z int, i int64, f, x, y, t DimensionRange) ID {
	return ID{Z: z, I: i, F: f, X: x, Y: y, T: t}
}

// IsSpatial reports whether the ID has no time dimension.
func (id ID) IsSpatial() bool {
	return id.I == 0
}

// String renders "z/f/x/y" for spatial IDs and "z/f/x/y_i/t" for space-time
// IDs, each axis in its compact text form.
func (id ID) String() string {
	s := strconv.Itoa(id.Z) + "/" +
		id.F.String() + "/" +
		id.X.String() + "/" +
		id.Y.String()
	if id.IsSpatial() {
		return s
	}
	return s + "_" + strconv.FormatInt(id.I, 10) + "/" + id.T.String()
}

// UnmarshalJSON parses the compact notation object, applying the caller
// defaults (i = 0, axes = Any) and requiring z.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw struct {
		Z *int            `json:"z"`
		I *int64          `json:"i"`
		F json.RawMessage `json:"f"`
		X json.RawMessage `json:"x"`
		Y json.RawMessage `json:"y"`
		T json.RawMessage `json:"t"`
	}
	if err := jsonCodec.Unmarshal(data, &raw); err != nil {
		return errors.Encodingf("invalid space-time id %s: %v", string(data), err)
	}
	if raw.Z == nil {
		return errors.Encodingf("invalid space-time id %s: missing required field z", string(data))
	}

	out := ID{Z: *raw.Z}
	if raw.I != nil {
		out.I = *raw.I
	}
	axes := []struct {
		name string
		raw  json.RawMessage
		dst  *DimensionRange
	}{
		{"f", raw.F, &out.F},
		{"x", raw.X, &out.X},
		{"y", raw.Y, &out.Y},
		{"t", raw.T, &out.T},
	}
	for _, axis := range axes {
		if len(axis.raw) == 0 {
			continue
		}
		dr, err := ParseRangeArray(axis.raw)
		if err != nil {
			return errors.Wrapf(err, "axis %s", axis.name)
		}
		*axis.dst = dr
	}
	*id = out
	return nil
}
