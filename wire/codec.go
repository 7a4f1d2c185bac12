// Package wire defines the engine's tagged-union wire vocabulary and the
// codecs between it and the spacetime model.
//
// The engine serializes unions in the externally-tagged style: a struct
// variant is a single-key object {"VariantName": payload}, a unit variant a
// bare string "VariantName". Encoders here translate canonical spacetime
// values into that form; decoders validate shape strictly and classify
// failures through the errors taxonomy (ErrDecoding for unknown variant
// tags, ErrResponseShape for structural drift such as malformed geometry).
//
// Encoding is the only direction defined for expressions and filters; the
// engine replies with flat leaf data, never with expression trees.
package wire

import jsoniter "github.com/json-iterator/go"

// JSON is the wire serializer: standard-library semantics with a cheaper
// encode/decode path. Every request and response passes through it.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary
