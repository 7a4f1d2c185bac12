// Package errors provides error handling for go-tesseract.
//
// It re-exports github.com/cockroachdb/errors (stack traces, wrapping,
// errors.Is/As) and defines the protocol error taxonomy:
//
//   - ErrEncoding: a caller-supplied range, filter, or expression has a
//     shape this layer cannot encode. Always a local programming bug.
//   - ErrDecoding: an engine payload does not match the expected wire shape
//     for a single codec (an unknown dimension tag, a malformed ID field).
//   - ErrResponseShape: the response envelope or an operation payload is
//     structurally wrong (missing result, wrong output tag, bad geometry).
//     Both decoding and shape errors indicate protocol drift or an
//     engine-side bug, never a data-dependent outcome.
//   - CommandError: the engine explicitly answered {"Error": msg}. This is
//     a legitimate runtime outcome; the message is preserved verbatim so
//     callers can branch on it.
//
// Usage:
//
//	if err := doEncode(); err != nil {
//	    return errors.Wrap(err, "encode range expression")
//	}
//
//	if errors.Is(err, errors.ErrEncoding) {
//	    // caller bug, fix the query construction
//	}
//
//	if cmdErr, ok := errors.AsCommandError(err); ok {
//	    // engine-reported failure, message verbatim
//	}
package errors

import (
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap

	WithHint   = crdb.WithHint
	WithDetail = crdb.WithDetail
)

// Sentinel errors for the protocol taxonomy. Wrap these with errors.Wrap to
// add context while preserving the class for errors.Is checks.
var (
	// ErrEncoding indicates malformed caller-supplied input to an encoder.
	ErrEncoding = New("encoding error")

	// ErrDecoding indicates an engine payload outside the known wire shapes.
	ErrDecoding = New("decoding error")

	// ErrResponseShape indicates a structurally invalid response envelope
	// or operation payload.
	ErrResponseShape = New("response shape error")
)

// Encodingf returns an ErrEncoding with a formatted description.
func Encodingf(format string, args ...interface{}) error {
	return Wrap(ErrEncoding, Newf(format, args...).Error())
}

// Decodingf returns an ErrDecoding with a formatted description.
func Decodingf(format string, args ...interface{}) error {
	return Wrap(ErrDecoding, Newf(format, args...).Error())
}

// ResponseShapef returns an ErrResponseShape with a formatted description.
func ResponseShapef(format string, args ...interface{}) error {
	return Wrap(ErrResponseShape, Newf(format, args...).Error())
}

// IsEncoding reports whether err is or wraps ErrEncoding.
func IsEncoding(err error) bool {
	return err != nil && Is(err, ErrEncoding)
}

// IsDecoding reports whether err is or wraps ErrDecoding.
func IsDecoding(err error) bool {
	return err != nil && Is(err, ErrDecoding)
}

// IsResponseShape reports whether err is or wraps ErrResponseShape.
func IsResponseShape(err error) bool {
	return err != nil && Is(err, ErrResponseShape)
}

// CommandError carries a failure the engine reported through the protocol's
// {"Error": message} result variant. Error() returns the engine's message
// verbatim, with no added prefix, so callers can match on exact content.
type CommandError struct {
	Message string
}

// NewCommandError wraps an engine-reported message.
func NewCommandError(message string) *CommandError {
	return &CommandError{Message: message}
}

func (e *CommandError) Error() string {
	return e.Message
}

// AsCommandError unwraps err to a CommandError if one is in the chain.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if err != nil && As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}

// IsCommandError reports whether err is or wraps a CommandError.
func IsCommandError(err error) bool {
	_, ok := AsCommandError(err)
	return ok
}

// IsAlreadyExists reports whether err is an engine command error signalling
// that a value is already stored at the target region. The engine phrases
// this as "... already exists"; the check is substring-based because the
// message also names the space and key.
func IsAlreadyExists(err error) bool {
	cmdErr, ok := AsCommandError(err)
	return ok && strings.Contains(cmdErr.Message, "already exists")
}
