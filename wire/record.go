package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Record mirrors one matched region in a SelectValue reply. Geometry fields
// are slices rather than fixed arrays so that a wrong-length payload fails
// loudly instead of zero-filling.
type Record struct {
	SpaceTimeID ID          `json:"spacetimeid"`
	Vertex      [][]float64 `json:"vertex,omitempty"`
	Center      []float64   `json:"center,omitempty"`
	IDString    *string     `json:"id_string,omitempty"`
}

// ValueRecord mirrors one matched region in a GetValue reply.
type ValueRecord struct {
	Record
	Value *Value `json:"value,omitempty"`
}

// Decode translates the wire record into the canonical form, validating
// geometry strictly: a vertex is exactly 8 points of exactly 3 coordinates,
// a center exactly 3 coordinates. Absent annotations decode to zero values,
// never to nulls.
func (w Record) Decode() (spacetime.Record, error) {
	id, err := w.SpaceTimeID.Decode()
	if err != nil {
		return spacetime.Record{}, errors.Wrap(err, "spacetimeid")
	}
	out := spacetime.Record{ID: id}

	if w.Vertex != nil {
		if len(w.Vertex) != 8 {
			return spacetime.Record{}, errors.ResponseShapef("vertex has %d points, want 8", len(w.Vertex))
		}
		var vertex [8]spacetime.Point
		for i, p := range w.Vertex {
			if len(p) != 3 {
				return spacetime.Record{}, errors.ResponseShapef("vertex point %d has %d coordinates, want 3", i, len(p))
			}
			vertex[i] = spacetime.Point{p[0], p[1], p[2]}
		}
		out.Vertex = &vertex
	}

	if w.Center != nil {
		if len(w.Center) != 3 {
			return spacetime.Record{}, errors.ResponseShapef("center has %d coordinates, want 3", len(w.Center))
		}
		out.Center = &spacetime.Point{w.Center[0], w.Center[1], w.Center[2]}
	}

	if w.IDString != nil {
		out.IDString = *w.IDString
	}
	return out, nil
}

// Decode translates the wire record and its stored value into the canonical
// form.
func (w ValueRecord) Decode() (spacetime.ValueRecord, error) {
	rec, err := w.Record.Decode()
	if err != nil {
		return spacetime.ValueRecord{}, err
	}
	out := spacetime.ValueRecord{Record: rec}
	if w.Value != nil {
		v, err := w.Value.Decode()
		if err != nil {
			return spacetime.ValueRecord{}, errors.Wrap(err, "value")
		}
		out.Value = &v
	}
	return out, nil
}
