package wire

import (
	"bytes"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Result is one element of the response array: {"Success": Output} or
// {"Error": message}.
type Result struct {
	Success *Output `json:"Success,omitempty"`
	Error   *string `json:"Error,omitempty"`
}

// ParseResponse parses the engine's reply envelope, a JSON array of
// results. A reply that is not an array is a response shape error; element
// validation happens in Unwrap.
func ParseResponse(raw string) ([]Result, error) {
	var results []Result
	if err := JSON.Unmarshal([]byte(raw), &results); err != nil {
		return nil, errors.ResponseShapef("response is not a result array: %v", err)
	}
	return results, nil
}

// Unwrap narrows the result to its Output, converting an engine-reported
// failure into a CommandError carrying the message verbatim. A result with
// neither tag is a response shape error.
func (r Result) Unwrap() (*Output, error) {
	switch {
	case r.Error != nil:
		return nil, errors.NewCommandError(*r.Error)
	case r.Success != nil:
		return r.Success, nil
	}
	return nil, errors.ResponseShapef("result carries neither Success nor Error")
}

// Output is the engine's operation payload union. The bare string "Success"
// is the payload-free unit variant. Outputs only travel from the engine, so
// only unmarshalling is defined; narrowing into the wrong payload kind is a
// response shape error naming both tags.
type Output struct {
	Success        bool
	SpaceNames     *[]string
	KeyNames       *[]string
	Version        *string
	SpaceTimeIdSet *IDSet
	SelectValue    *[]Record
	GetValue       *[]ValueRecord
}

// IDSet is the SpaceTimeIdSet payload.
type IDSet struct {
	IDs []ID `json:"ids"`
}

type outputObject struct {
	SpaceNames     *[]string      `json:"SpaceNames"`
	KeyNames       *[]string      `json:"KeyNames"`
	Version        *string        `json:"Version"`
	SpaceTimeIdSet *IDSet         `json:"SpaceTimeIdSet"`
	SelectValue    *[]Record      `json:"SelectValue"`
	GetValue       *[]ValueRecord `json:"GetValue"`
}

// UnmarshalJSON accepts both syntactic shapes of the union: the bare
// "Success" unit variant and the single-key payload object.
func (o *Output) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag string
		if err := JSON.Unmarshal(trimmed, &tag); err != nil {
			return err
		}
		if tag != "Success" {
			return errors.Decodingf("unknown output tag %q", tag)
		}
		*o = Output{Success: true}
		return nil
	}

	var obj outputObject
	if err := JSON.Unmarshal(data, &obj); err != nil {
		return err
	}
	*o = Output{
		SpaceNames:     obj.SpaceNames,
		KeyNames:       obj.KeyNames,
		Version:        obj.Version,
		SpaceTimeIdSet: obj.SpaceTimeIdSet,
		SelectValue:    obj.SelectValue,
		GetValue:       obj.GetValue,
	}
	return nil
}

// Tag returns the name of the set variant, for logging and shape errors.
func (o *Output) Tag() string {
	switch {
	case o == nil:
		return "none"
	case o.Success:
		return "Success"
	case o.SpaceNames != nil:
		return "SpaceNames"
	case o.KeyNames != nil:
		return "KeyNames"
	case o.Version != nil:
		return "Version"
	case o.SpaceTimeIdSet != nil:
		return "SpaceTimeIdSet"
	case o.SelectValue != nil:
		return "SelectValue"
	case o.GetValue != nil:
		return "GetValue"
	}
	return "unrecognized"
}

func (o *Output) narrowError(want string) error {
	return errors.ResponseShapef("expected %s output, engine sent %s", want, o.Tag())
}

// AsSuccess expects the payload-free Success variant.
func (o *Output) AsSuccess() error {
	if o == nil || !o.Success {
		return o.narrowError("Success")
	}
	return nil
}

// AsSpaceNames narrows to the SpaceNames payload.
func (o *Output) AsSpaceNames() ([]string, error) {
	if o == nil || o.SpaceNames == nil {
		return nil, o.narrowError("SpaceNames")
	}
	return *o.SpaceNames, nil
}

// AsKeyNames narrows to the KeyNames payload.
func (o *Output) AsKeyNames() ([]string, error) {
	if o == nil || o.KeyNames == nil {
		return nil, o.narrowError("KeyNames")
	}
	return *o.KeyNames, nil
}

// AsVersion narrows to the Version payload.
func (o *Output) AsVersion() (string, error) {
	if o == nil || o.Version == nil {
		return "", o.narrowError("Version")
	}
	return *o.Version, nil
}

// AsIDSet narrows to the SpaceTimeIdSet payload and decodes its IDs.
func (o *Output) AsIDSet() ([]spacetime.ID, error) {
	if o == nil || o.SpaceTimeIdSet == nil {
		return nil, o.narrowError("SpaceTimeIdSet")
	}
	ids := make([]spacetime.ID, 0, len(o.SpaceTimeIdSet.IDs))
	for i, w := range o.SpaceTimeIdSet.IDs {
		id, err := w.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "id %d", i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// AsRecords narrows to the SelectValue payload and decodes its records.
func (o *Output) AsRecords() ([]spacetime.Record, error) {
	if o == nil || o.SelectValue == nil {
		return nil, o.narrowError("SelectValue")
	}
	records := make([]spacetime.Record, 0, len(*o.SelectValue))
	for i, w := range *o.SelectValue {
		rec, err := w.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

// AsValueRecords narrows to the GetValue payload and decodes its records.
func (o *Output) AsValueRecords() ([]spacetime.ValueRecord, error) {
	if o == nil || o.GetValue == nil {
		return nil, o.narrowError("GetValue")
	}
	records := make([]spacetime.ValueRecord, 0, len(*o.GetValue))
	for i, w := range *o.GetValue {
		rec, err := w.Decode()
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i)
		}
		records = append(records, rec)
	}
	return records, nil
}
