package wasm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyModule is the smallest valid WebAssembly binary: magic + version,
// no sections. It compiles and instantiates but exports nothing.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestNewRejectsGarbage(t *testing.T) {
	_, err := New(context.Background(), []byte("definitely not wasm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile engine module")

	_, err = New(context.Background(), nil)
	require.Error(t, err)
}

func TestNewAcceptsValidModule(t *testing.T) {
	e, err := New(context.Background(), emptyModule)
	require.NoError(t, err)
	defer e.Close()

	require.NotNil(t, e.mod)
}

func TestExecuteRequiresExports(t *testing.T) {
	e, err := New(context.Background(), emptyModule)
	require.NoError(t, err)
	defer e.Close()

	_, err = e.Execute(`{"command":["Version"]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing a required export")
}

func TestCloseIsIdempotent(t *testing.T) {
	e, err := New(context.Background(), emptyModule)
	require.NoError(t, err)

	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
}

func TestExecuteAfterClose(t *testing.T) {
	e, err := New(context.Background(), emptyModule)
	require.NoError(t, err)
	require.NoError(t, e.Close())

	_, err = e.Execute(`{"command":["Version"]}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine is closed")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.wasm")
	require.NoError(t, os.WriteFile(path, emptyModule, 0o644))

	e, err := Load(context.Background(), path)
	require.NoError(t, err)
	defer e.Close()
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.wasm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read engine module")
}
