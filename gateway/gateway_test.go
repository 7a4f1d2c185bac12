package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/logger"
	"github.com/tesseractdb/go-tesseract/wire"
)

// fakeEngine answers each Execute call with the next scripted reply.
type fakeEngine struct {
	requests []string
	replies  []string
	errs     []error
}

func (f *fakeEngine) Execute(request string) (string, error) {
	i := len(f.requests)
	f.requests = append(f.requests, request)

	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var reply string
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return reply, err
}

func versionReply(v string) string {
	return `[{"Success":{"Version":"` + v + `"}}]`
}

func TestNewProbesVersionOnce(t *testing.T) {
	engine := &fakeEngine{replies: []string{versionReply("0.0.2")}}

	g, err := New(engine)
	require.NoError(t, err)

	require.Len(t, engine.requests, 1)
	assert.Equal(t, `{"command":["Version"]}`, engine.requests[0])
	assert.Equal(t, "0.0.2", g.EngineVersion())
	assert.True(t, g.Compatible())
}

func TestNewNilEngine(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestVersionWindow(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
	}{
		{"window minimum", "0.0.1", true},
		{"inside window", "0.0.2", true},
		{"window maximum", "0.0.3", true},
		{"four segments inside", "0.0.1.5", true},
		{"four segments above maximum", "0.0.3.1", false},
		{"below window", "0.0.0.9", false},
		{"above window", "0.1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{replies: []string{versionReply(tt.version)}}
			g, err := New(engine)
			require.NoError(t, err)

			assert.Equal(t, tt.version, g.EngineVersion())
			assert.Equal(t, tt.compatible, g.Compatible())
		})
	}
}

func TestWithCompatWindow(t *testing.T) {
	engine := &fakeEngine{replies: []string{versionReply("1.5")}}

	g, err := New(engine, WithCompatWindow("1.0", "2.0"))
	require.NoError(t, err)
	assert.True(t, g.Compatible())
}

func TestNewSurvivesProbeFailure(t *testing.T) {
	engine := &fakeEngine{
		errs:    []error{errors.New("engine unavailable")},
		replies: []string{"", `[{"Success":{"SpaceNames":[]}}]`},
	}

	g, err := New(engine)
	require.NoError(t, err, "probe failure must not fail construction")
	assert.Equal(t, "", g.EngineVersion())
	assert.False(t, g.Compatible())

	// The gateway stays usable.
	out, err := g.Execute(wire.SpaceNamesCommand())
	require.NoError(t, err)
	names, err := out.AsSpaceNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewSurvivesWrongProbeOutput(t *testing.T) {
	engine := &fakeEngine{replies: []string{`[{"Success":{"SpaceNames":[]}}]`}}

	g, err := New(engine)
	require.NoError(t, err)
	assert.Equal(t, "", g.EngineVersion())
	assert.False(t, g.Compatible())
}

func TestExecuteCommandErrorVerbatim(t *testing.T) {
	engine := &fakeEngine{replies: []string{
		versionReply("0.0.2"),
		`[{"Error":"value already exists in space weather key temp"}]`,
	}}

	g, err := New(engine)
	require.NoError(t, err)

	_, err = g.Execute(wire.CreateSpaceCommand("weather"))
	require.Error(t, err)

	cmdErr, ok := errors.AsCommandError(err)
	require.True(t, ok, "want CommandError, got %v", err)
	assert.Equal(t, "value already exists in space weather key temp", cmdErr.Error())
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestExecuteResponseShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"empty array", `[]`, "response array is empty"},
		{"non-array", `{"Success":"Success"}`, "not a result array"},
		{"neither tag", `[{"Neither":1}]`, "neither Success nor Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{replies: []string{versionReply("0.0.2"), tt.reply}}
			g, err := New(engine)
			require.NoError(t, err)

			_, err = g.Execute(wire.SpaceNamesCommand())
			require.Error(t, err)
			assert.True(t, errors.IsResponseShape(err), "want response shape error, got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExecuteTransportError(t *testing.T) {
	engine := &fakeEngine{
		replies: []string{versionReply("0.0.2")},
		errs:    []error{nil, errors.New("trap: out of bounds")},
	}

	g, err := New(engine)
	require.NoError(t, err)

	_, err = g.Execute(wire.SpaceNamesCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute SpaceNames")
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestExecuteReadsFirstResult(t *testing.T) {
	engine := &fakeEngine{replies: []string{
		versionReply("0.0.2"),
		`[{"Success":{"KeyNames":["first"]}},{"Error":"second is ignored"}]`,
	}}

	g, err := New(engine)
	require.NoError(t, err)

	out, err := g.Execute(wire.KeyNamesCommand("weather"))
	require.NoError(t, err)

	names, err := out.AsKeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, names)
}

func TestDebugTracing(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	engine := &fakeEngine{replies: []string{
		versionReply("0.0.2"),
		`[{"Success":{"SpaceNames":["weather"]}}]`,
	}}

	g, err := New(engine,
		WithDebug(true),
		WithLogger(zap.New(core).Sugar()),
	)
	require.NoError(t, err)

	_, err = g.Execute(wire.SpaceNamesCommand())
	require.NoError(t, err)

	entries := logs.FilterMessage("engine request").All()
	require.NotEmpty(t, entries)

	// Request and response of one call share a trace id.
	last := logs.All()[len(logs.All())-1]
	assert.Equal(t, "engine response", last.Message)
	fields := last.ContextMap()
	traceID, ok := fields[logger.FieldTraceID]
	require.True(t, ok)
	assert.NotEmpty(t, traceID)

	reqFields := entries[len(entries)-1].ContextMap()
	assert.Equal(t, traceID, reqFields[logger.FieldTraceID])
	assert.Equal(t, "SpaceNames", reqFields[logger.FieldCommand])
}

func TestDebugOffLogsNothing(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	engine := &fakeEngine{replies: []string{versionReply("0.0.2")}}

	g, err := New(engine, WithLogger(zap.New(core).Sugar()))
	require.NoError(t, err)

	_, _ = g.Execute(wire.SpaceNamesCommand())
	assert.Empty(t, logs.FilterMessage("engine request").All())
}
