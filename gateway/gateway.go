// Package gateway implements the command protocol in front of a Tesseract
// engine: build the request envelope, dispatch one command, unwrap the
// first result, and classify failures. It also performs the one-time engine
// version compatibility check at construction.
package gateway

import (
	"github.com/google/uuid"
	goversion "github.com/hashicorp/go-version"
	"go.uber.org/zap"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/logger"
	"github.com/tesseractdb/go-tesseract/wire"
)

// Engine is the opaque boundary to a Tesseract engine build: one
// synchronous entry point, request JSON in, response JSON out. Errors from
// Execute are transport failures; engine-level failures travel inside the
// response as {"Error": message}.
type Engine interface {
	Execute(request string) (string, error)
}

// Inclusive engine version window this client is built against. Engine
// versions are dotted integer sequences (not semver; a fourth segment like
// 0.0.1.5 is legal), compared component-wise with missing trailing
// components read as zero.
const (
	MinEngineVersion = "0.0.1"
	MaxEngineVersion = "0.0.3"
)

// Gateway dispatches commands to an engine. Construction probes the engine
// version once; a version outside the supported window logs a warning and
// nothing else, because a drifted engine usually still answers most
// commands. After construction the gateway is immutable and safe for
// concurrent use whenever its Engine is.
type Gateway struct {
	engine Engine
	log    *zap.SugaredLogger
	debug  bool

	minVersion string
	maxVersion string

	engineVersion string
	compatible    bool
}

// Option configures a Gateway during New.
type Option func(*Gateway)

// WithDebug toggles verbatim request/response tracing through the logger.
// Tracing never affects control flow.
func WithDebug(debug bool) Option {
	return func(g *Gateway) { g.debug = debug }
}

// WithCompatWindow overrides the built-in engine version window.
func WithCompatWindow(min, max string) Option {
	return func(g *Gateway) {
		g.minVersion = min
		g.maxVersion = max
	}
}

// WithLogger replaces the gateway's logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(g *Gateway) { g.log = log }
}

// New wires a gateway to an engine and probes its version. The probe
// outcome only logs: New returns a usable gateway even when the probe
// fails or the version falls outside the window.
func New(engine Engine, opts ...Option) (*Gateway, error) {
	if engine == nil {
		return nil, errors.New("gateway requires an engine")
	}

	g := &Gateway{
		engine:     engine,
		minVersion: MinEngineVersion,
		maxVersion: MaxEngineVersion,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.log == nil {
		g.log = logger.Named("gateway")
	}

	g.probeVersion()
	return g, nil
}

// Execute dispatches a single command and narrows the reply to its Output.
// An engine-reported failure comes back as a *errors.CommandError carrying
// the message verbatim; envelope drift comes back as a response shape
// error.
func (g *Gateway) Execute(cmd wire.Command) (*wire.Output, error) {
	request, err := wire.EncodeRequest(cmd)
	if err != nil {
		return nil, err
	}

	var traceID string
	if g.debug {
		traceID = uuid.New().String()
		g.log.Debugw("engine request",
			logger.FieldTraceID, traceID,
			logger.FieldCommand, cmd.Tag(),
			logger.FieldRequest, request,
		)
	}

	response, err := g.engine.Execute(request)
	if err != nil {
		return nil, errors.Wrapf(err, "execute %s", cmd.Tag())
	}

	if g.debug {
		g.log.Debugw("engine response",
			logger.FieldTraceID, traceID,
			logger.FieldCommand, cmd.Tag(),
			logger.FieldResponse, response,
		)
	}

	results, err := wire.ParseResponse(response)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.ResponseShapef("response array is empty")
	}
	return results[0].Unwrap()
}

// EngineVersion returns the version string the engine reported at
// construction, or "" when the probe failed.
func (g *Gateway) EngineVersion() string {
	return g.engineVersion
}

// Compatible reports whether the probed engine version fell inside the
// supported window.
func (g *Gateway) Compatible() bool {
	return g.compatible
}

// probeVersion asks the engine for its version and records the
// compatibility verdict. Every failure path is a warning: compatibility
// findings inform, they never block.
func (g *Gateway) probeVersion() {
	out, err := g.Execute(wire.VersionCommand())
	if err != nil {
		g.log.Warnw("engine version probe failed",
			logger.FieldError, err.Error(),
		)
		return
	}

	v, err := out.AsVersion()
	if err != nil {
		g.log.Warnw("engine version probe returned unexpected output",
			logger.FieldError, err.Error(),
		)
		return
	}
	g.engineVersion = v

	window := "[" + g.minVersion + ", " + g.maxVersion + "]"
	engineVer, err := goversion.NewVersion(v)
	if err != nil {
		g.log.Warnw("engine version is not a dotted integer sequence",
			logger.FieldEngineVersion, v,
			logger.FieldError, err.Error(),
		)
		return
	}
	lower, err := goversion.NewVersion(g.minVersion)
	if err != nil {
		g.log.Warnw("invalid compatibility window minimum",
			logger.FieldCompatWindow, window,
			logger.FieldError, err.Error(),
		)
		return
	}
	upper, err := goversion.NewVersion(g.maxVersion)
	if err != nil {
		g.log.Warnw("invalid compatibility window maximum",
			logger.FieldCompatWindow, window,
			logger.FieldError, err.Error(),
		)
		return
	}

	if engineVer.LessThan(lower) || engineVer.GreaterThan(upper) {
		g.log.Warnw("engine version outside supported window",
			logger.FieldEngineVersion, v,
			logger.FieldCompatWindow, window,
		)
		return
	}
	g.compatible = true
}
