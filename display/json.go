// Package display renders command results for the tesseract CLI, either as
// indented JSON or as colored terminal output.
package display

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON renders v as indented JSON for terminal output.
func MarshalJSON(v interface{}) ([]byte, error) {
	return jsonCodec.MarshalIndent(v, "", "  ")
}
