// Package client is the high-level Tesseract operation surface: spaces,
// keys, values, and space-time selection, typed end to end.
//
// A Client owns no engine lifecycle; callers create an engine (usually
// wasm.Load), hand it over, and close it themselves:
//
//	engine, err := wasm.Load(ctx, "tesseract.wasm")
//	if err != nil { ... }
//	defer engine.Close()
//
//	c, err := client.New(engine)
//	if err != nil { ... }
//
//	region := spacetime.NewSpatialID(4, spacetime.AnyRange(), spacetime.Single(5), spacetime.Single(2))
//	err = c.Put("weather", "temp", region, spacetime.IntValue(25))
//
// Operations carry no business logic: they encode the command, dispatch it
// through the gateway, and decode the reply. Engine-reported failures
// surface as *errors.CommandError with the engine's message verbatim.
package client

import (
	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/gateway"
	"github.com/tesseractdb/go-tesseract/spacetime"
	"github.com/tesseractdb/go-tesseract/wire"
)

// Client executes typed operations against one engine.
type Client struct {
	gw *gateway.Gateway
}

// New builds a client around an engine. Options pass through to the
// gateway, which probes the engine version once during construction.
func New(engine gateway.Engine, opts ...gateway.Option) (*Client, error) {
	gw, err := gateway.New(engine, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{gw: gw}, nil
}

// Version asks the engine for its version string.
func (c *Client) Version() (string, error) {
	out, err := c.gw.Execute(wire.VersionCommand())
	if err != nil {
		return "", err
	}
	return out.AsVersion()
}

// EngineVersion returns the version probed at construction, or "" when the
// probe failed.
func (c *Client) EngineVersion() string {
	return c.gw.EngineVersion()
}

// Compatible reports whether the probed engine version is inside the
// supported window.
func (c *Client) Compatible() bool {
	return c.gw.Compatible()
}

// CreateSpace creates a space.
func (c *Client) CreateSpace(name string) error {
	return c.expectSuccess(wire.CreateSpaceCommand(name))
}

// DropSpace drops a space and everything in it.
func (c *Client) DropSpace(name string) error {
	return c.expectSuccess(wire.DropSpaceCommand(name))
}

// Spaces lists all space names.
func (c *Client) Spaces() ([]string, error) {
	out, err := c.gw.Execute(wire.SpaceNamesCommand())
	if err != nil {
		return nil, err
	}
	return out.AsSpaceNames()
}

// CreateKey creates a key of the given kind within a space.
func (c *Client) CreateKey(space, key string, kind spacetime.ValueKind) error {
	switch kind {
	case spacetime.KindInt, spacetime.KindText, spacetime.KindBool:
	default:
		return errors.Encodingf("unknown key kind %s", kind)
	}
	return c.expectSuccess(wire.CreateKeyCommand(space, key, kind))
}

// DropKey drops a key and its stored values from a space.
func (c *Client) DropKey(space, key string) error {
	return c.expectSuccess(wire.DropKeyCommand(space, key))
}

// Keys lists the key names of a space.
func (c *Client) Keys(space string) ([]string, error) {
	out, err := c.gw.Execute(wire.KeyNamesCommand(space))
	if err != nil {
		return nil, err
	}
	return out.AsKeyNames()
}

// Put stores a value into the region, failing with an engine command error
// when any part of the region already holds one. Branch on the failure with
// errors.IsAlreadyExists.
func (c *Client) Put(space, key string, region spacetime.Expr, value spacetime.Value) error {
	cmd, err := wire.PutValueCommand(space, key, region, value)
	if err != nil {
		return err
	}
	return c.expectSuccess(cmd)
}

// Set stores a value into the region, overwriting anything present.
func (c *Client) Set(space, key string, region spacetime.Expr, value spacetime.Value) error {
	cmd, err := wire.SetValueCommand(space, key, region, value)
	if err != nil {
		return err
	}
	return c.expectSuccess(cmd)
}

// PutOrSet tries Put first and falls back to Set exactly when the engine
// reports the region already occupied. Any other failure returns as is.
func (c *Client) PutOrSet(space, key string, region spacetime.Expr, value spacetime.Value) error {
	err := c.Put(space, key, region, value)
	if errors.IsAlreadyExists(err) {
		return c.Set(space, key, region, value)
	}
	return err
}

// Delete removes the values stored in the region.
func (c *Client) Delete(space, key string, region spacetime.Expr) error {
	cmd, err := wire.DeleteValueCommand(space, key, region)
	if err != nil {
		return err
	}
	return c.expectSuccess(cmd)
}

// Get reads the values stored in the region, one record per matched ID.
func (c *Client) Get(space, key string, region spacetime.Expr, opts spacetime.OutputOptions) ([]spacetime.ValueRecord, error) {
	cmd, err := wire.GetValueCommand(space, key, region, opts)
	if err != nil {
		return nil, err
	}
	out, err := c.gw.Execute(cmd)
	if err != nil {
		return nil, err
	}
	return out.AsValueRecords()
}

// Select evaluates the expression and returns the matched regions with the
// requested annotations.
func (c *Client) Select(region spacetime.Expr, opts spacetime.OutputOptions) ([]spacetime.Record, error) {
	cmd, err := wire.SelectValueCommand(region, opts)
	if err != nil {
		return nil, err
	}
	out, err := c.gw.Execute(cmd)
	if err != nil {
		return nil, err
	}
	return out.AsRecords()
}

// SelectIDs evaluates the expression and returns only the matched ID set.
func (c *Client) SelectIDs(region spacetime.Expr) ([]spacetime.ID, error) {
	cmd, err := wire.SelectCommand(region)
	if err != nil {
		return nil, err
	}
	out, err := c.gw.Execute(cmd)
	if err != nil {
		return nil, err
	}
	return out.AsIDSet()
}

func (c *Client) expectSuccess(cmd wire.Command) error {
	out, err := c.gw.Execute(cmd)
	if err != nil {
		return err
	}
	return out.AsSuccess()
}
