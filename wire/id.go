package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// ID mirrors the engine's space-time identifier. All six fields are always
// present on the wire; defaults are a caller-side convenience that never
// crosses this boundary.
type ID struct {
	Z int   `json:"z"`
	I int64 `json:"i"`
	F Range `json:"f"`
	X Range `json:"x"`
	Y Range `json:"y"`
	T Range `json:"t"`
}

// EncodeID translates a canonical ID to its wire form, emitting every field
// concretely. Bounds are passed through unvalidated; ordering is the
// engine's concern.
func EncodeID(id spacetime.ID) ID {
	return ID{
		Z: id.Z,
		I: id.I,
		F: EncodeRange(id.F),
		X: EncodeRange(id.X),
		Y: EncodeRange(id.Y),
		T: EncodeRange(id.T),
	}
}

// Decode translates the wire form back to a canonical ID, failing on the
// first malformed axis.
func (w ID) Decode() (spacetime.ID, error) {
	out := spacetime.ID{Z: w.Z, I: w.I}
	axes := []struct {
		name string
		src  Range
		dst  *spacetime.DimensionRange
	}{
		{"f", w.F, &out.F},
		{"x", w.X, &out.X},
		{"y", w.Y, &out.Y},
		{"t", w.T, &out.T},
	}
	for _, axis := range axes {
		dr, err := axis.src.Decode()
		if err != nil {
			return spacetime.ID{}, errors.Wrapf(err, "axis %s", axis.name)
		}
		*axis.dst = dr
	}
	return out, nil
}
