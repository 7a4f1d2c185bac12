package spacetime

// OutputOptions selects the geometric annotations the engine attaches to
// each matched region. The zero value requests none.
type OutputOptions struct {
	// Vertex requests the eight corner points of the region's bounding box.
	Vertex bool
	// Center requests the region's center point.
	Center bool
	// IDString requests the engine's canonical text rendering of each ID.
	IDString bool
	// IDPure requests normalized, non-overlapping result IDs.
	IDPure bool
}

// Point is one geometric coordinate: longitude, latitude, altitude.
type Point [3]float64

// Record is one matched region in a Select or SelectValue reply. Optional
// annotations are nil or empty when the query did not request them or the
// engine omitted them.
type Record struct {
	ID       ID        `json:"id"`
	Vertex   *[8]Point `json:"vertex,omitempty"`
	Center   *Point    `json:"center,omitempty"`
	IDString string    `json:"id_string,omitempty"`
}

// ValueRecord is one matched region in a GetValue reply, carrying the
// stored value when the engine returned one.
type ValueRecord struct {
	Record
	Value *Value `json:"value,omitempty"`
}
