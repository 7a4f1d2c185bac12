package wire

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

// Command is the engine's command union. Version and SpaceNames are unit
// variants (bare strings on the wire); every other variant is a single-key
// object. Marshalling enforces that exactly one variant is set.
type Command struct {
	Version     bool
	SpaceNames  bool
	CreateSpace *SpaceArg
	DropSpace   *SpaceArg
	CreateKey   *CreateKeyArgs
	DropKey     *SpaceKey
	KeyNames    *SpaceArg
	PutValue    *ValueArgs
	SetValue    *ValueArgs
	DeleteValue *RegionArgs
	GetValue    *GetArgs
	SelectValue *SelectValueArgs
	Select      *SelectArgs
}

// SpaceArg names one space. Payload of CreateSpace, DropSpace, and
// KeyNames.
type SpaceArg struct {
	Space string `json:"space"`
}

// CreateKeyArgs is the CreateKey payload. Type is the engine kind tag
// (INT, TEXT, or BOOLEAN).
type CreateKeyArgs struct {
	Space string `json:"space"`
	Key   string `json:"key"`
	Type  string `json:"type"`
}

// ValueArgs is the PutValue/SetValue payload.
type ValueArgs struct {
	Space string `json:"space"`
	Key   string `json:"key"`
	Range Expr   `json:"range"`
	Value Value  `json:"value"`
}

// RegionArgs is the DeleteValue payload.
type RegionArgs struct {
	Space string `json:"space"`
	Key   string `json:"key"`
	Range Expr   `json:"range"`
}

// GetArgs is the GetValue payload.
type GetArgs struct {
	Space   string        `json:"space"`
	Key     string        `json:"key"`
	Range   Expr          `json:"range"`
	Options OutputOptions `json:"options"`
}

// SelectValueArgs is the SelectValue payload.
type SelectValueArgs struct {
	Range   Expr          `json:"range"`
	Options OutputOptions `json:"options"`
}

// SelectArgs is the Select payload.
type SelectArgs struct {
	Range Expr `json:"range"`
}

// OutputOptions mirrors the engine's output option flags; false flags are
// omitted from the wire.
type OutputOptions struct {
	Vertex   bool `json:"vertex,omitempty"`
	Center   bool `json:"center,omitempty"`
	IDString bool `json:"id_string,omitempty"`
	IDPure   bool `json:"id_pure,omitempty"`
}

// EncodeOutputOptions translates the canonical option set.
func EncodeOutputOptions(o spacetime.OutputOptions) OutputOptions {
	return OutputOptions{
		Vertex:   o.Vertex,
		Center:   o.Center,
		IDString: o.IDString,
		IDPure:   o.IDPure,
	}
}

// MarshalJSON renders the externally-tagged command form and rejects any
// Command that does not have exactly one variant set.
func (c Command) MarshalJSON() ([]byte, error) {
	type variant struct {
		tag     string
		set     bool
		payload interface{}
	}
	variants := []variant{
		{"Version", c.Version, nil},
		{"SpaceNames", c.SpaceNames, nil},
		{"CreateSpace", c.CreateSpace != nil, c.CreateSpace},
		{"DropSpace", c.DropSpace != nil, c.DropSpace},
		{"CreateKey", c.CreateKey != nil, c.CreateKey},
		{"DropKey", c.DropKey != nil, c.DropKey},
		{"KeyNames", c.KeyNames != nil, c.KeyNames},
		{"PutValue", c.PutValue != nil, c.PutValue},
		{"SetValue", c.SetValue != nil, c.SetValue},
		{"DeleteValue", c.DeleteValue != nil, c.DeleteValue},
		{"GetValue", c.GetValue != nil, c.GetValue},
		{"SelectValue", c.SelectValue != nil, c.SelectValue},
		{"Select", c.Select != nil, c.Select},
	}

	var chosen *variant
	for i := range variants {
		if !variants[i].set {
			continue
		}
		if chosen != nil {
			return nil, errors.Encodingf("command sets both %s and %s variants", chosen.tag, variants[i].tag)
		}
		chosen = &variants[i]
	}
	if chosen == nil {
		return nil, errors.Encodingf("command sets no variant")
	}

	if chosen.payload == nil {
		return JSON.Marshal(chosen.tag)
	}
	return JSON.Marshal(map[string]interface{}{chosen.tag: chosen.payload})
}

// Tag returns the name of the set variant, for logging.
func (c Command) Tag() string {
	switch {
	case c.Version:
		return "Version"
	case c.SpaceNames:
		return "SpaceNames"
	case c.CreateSpace != nil:
		return "CreateSpace"
	case c.DropSpace != nil:
		return "DropSpace"
	case c.CreateKey != nil:
		return "CreateKey"
	case c.DropKey != nil:
		return "DropKey"
	case c.KeyNames != nil:
		return "KeyNames"
	case c.PutValue != nil:
		return "PutValue"
	case c.SetValue != nil:
		return "SetValue"
	case c.DeleteValue != nil:
		return "DeleteValue"
	case c.GetValue != nil:
		return "GetValue"
	case c.SelectValue != nil:
		return "SelectValue"
	case c.Select != nil:
		return "Select"
	}
	return "unset"
}

// VersionCommand asks the engine for its version string.
func VersionCommand() Command { return Command{Version: true} }

// SpaceNamesCommand lists all spaces.
func SpaceNamesCommand() Command { return Command{SpaceNames: true} }

// CreateSpaceCommand creates a space.
func CreateSpaceCommand(space string) Command {
	return Command{CreateSpace: &SpaceArg{Space: space}}
}

// DropSpaceCommand drops a space.
func DropSpaceCommand(space string) Command {
	return Command{DropSpace: &SpaceArg{Space: space}}
}

// CreateKeyCommand creates a key of the given kind within a space.
func CreateKeyCommand(space, key string, kind spacetime.ValueKind) Command {
	return Command{CreateKey: &CreateKeyArgs{Space: space, Key: key, Type: kind.String()}}
}

// DropKeyCommand drops a key from a space.
func DropKeyCommand(space, key string) Command {
	return Command{DropKey: &SpaceKey{Space: space, Key: key}}
}

// KeyNamesCommand lists the keys of a space.
func KeyNamesCommand(space string) Command {
	return Command{KeyNames: &SpaceArg{Space: space}}
}

// PutValueCommand stores a value into the region, failing on occupied
// regions.
func PutValueCommand(space, key string, region spacetime.Expr, value spacetime.Value) (Command, error) {
	args, err := encodeValueArgs(space, key, region, value)
	if err != nil {
		return Command{}, err
	}
	return Command{PutValue: args}, nil
}

// SetValueCommand stores a value into the region, overwriting existing
// values.
func SetValueCommand(space, key string, region spacetime.Expr, value spacetime.Value) (Command, error) {
	args, err := encodeValueArgs(space, key, region, value)
	if err != nil {
		return Command{}, err
	}
	return Command{SetValue: args}, nil
}

// DeleteValueCommand removes the values stored in the region.
func DeleteValueCommand(space, key string, region spacetime.Expr) (Command, error) {
	expr, err := EncodeExpr(region)
	if err != nil {
		return Command{}, err
	}
	return Command{DeleteValue: &RegionArgs{Space: space, Key: key, Range: expr}}, nil
}

// GetValueCommand reads the values stored in the region.
func GetValueCommand(space, key string, region spacetime.Expr, opts spacetime.OutputOptions) (Command, error) {
	expr, err := EncodeExpr(region)
	if err != nil {
		return Command{}, err
	}
	return Command{GetValue: &GetArgs{
		Space:   space,
		Key:     key,
		Range:   expr,
		Options: EncodeOutputOptions(opts),
	}}, nil
}

// SelectValueCommand evaluates the expression and returns annotated matched
// regions.
func SelectValueCommand(region spacetime.Expr, opts spacetime.OutputOptions) (Command, error) {
	expr, err := EncodeExpr(region)
	if err != nil {
		return Command{}, err
	}
	return Command{SelectValue: &SelectValueArgs{
		Range:   expr,
		Options: EncodeOutputOptions(opts),
	}}, nil
}

// SelectCommand evaluates the expression and returns the matched ID set.
func SelectCommand(region spacetime.Expr) (Command, error) {
	expr, err := EncodeExpr(region)
	if err != nil {
		return Command{}, err
	}
	return Command{Select: &SelectArgs{Range: expr}}, nil
}

func encodeValueArgs(space, key string, region spacetime.Expr, value spacetime.Value) (*ValueArgs, error) {
	expr, err := EncodeExpr(region)
	if err != nil {
		return nil, err
	}
	val, err := EncodeValue(value)
	if err != nil {
		return nil, err
	}
	return &ValueArgs{Space: space, Key: key, Range: expr, Value: val}, nil
}

// Request is the protocol envelope. The engine accepts a command batch;
// this client always sends exactly one element so that replies stay
// unambiguous, but the array shape keeps per-element results independent
// for a future batch extension.
type Request struct {
	Command []Command `json:"command"`
}

// EncodeRequest serializes a single-command request envelope. Failures are
// always caller-side construction bugs, so they classify as encoding
// errors.
func EncodeRequest(cmd Command) (string, error) {
	data, err := JSON.Marshal(Request{Command: []Command{cmd}})
	if err != nil {
		return "", errors.Encodingf("encode %s request: %v", cmd.Tag(), err)
	}
	return string(data), nil
}
