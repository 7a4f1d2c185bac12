// Package wasm hosts a Tesseract engine build compiled to WebAssembly and
// adapts it to the gateway's Engine interface.
//
// All calls go through wazero (pure Go, no CGO). The module is compiled and
// instantiated once; a single instance serves every call, serialized by a
// mutex.
//
// Memory protocol: strings cross the boundary as (ptr, len) pairs in linear
// memory via the exported alloc/dealloc pair. The execute export returns
// its result packed as (ptr << 32) | len in a u64; the result is copied out
// of linear memory before being freed.
package wasm

import (
	"context"
	"os"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/tesseractdb/go-tesseract/errors"
)

// Exports required of every engine build.
const (
	exportAlloc   = "alloc"
	exportDealloc = "dealloc"
	exportExecute = "execute"
)

// Engine hosts one instantiated engine module. Safe for concurrent use;
// calls are serialized because the module's linear memory is shared state.
type Engine struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	mod      api.Module

	mu     sync.Mutex
	closed bool
}

// New compiles and instantiates an engine module from its raw bytes.
func New(ctx context.Context, wasmBytes []byte) (*Engine, error) {
	r := wazero.NewRuntime(ctx)

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		_ = r.Close(ctx)
		return nil, errors.Wrap(err, "compile engine module")
	}

	mod, err := r.InstantiateModule(ctx, compiled,
		wazero.NewModuleConfig().WithName("tesseract"))
	if err != nil {
		_ = r.Close(ctx)
		return nil, errors.Wrap(err, "instantiate engine module")
	}

	return &Engine{
		runtime:  r,
		compiled: compiled,
		mod:      mod,
	}, nil
}

// Load reads an engine module from disk and instantiates it.
func Load(ctx context.Context, path string) (*Engine, error) {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read engine module %s", path)
	}
	return New(ctx, wasmBytes)
}

// Close releases the runtime and every module it hosts. Safe to call more
// than once.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true
	return e.runtime.Close(context.Background())
}

// Execute passes one serialized request through the engine's execute export
// and returns the serialized response. Implements gateway.Engine.
func (e *Engine) Execute(request string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", errors.New("engine is closed")
	}
	return callExecute(context.Background(), e.mod, request)
}

// callExecute handles the shared-memory protocol for the string-in,
// string-out execute call.
func callExecute(ctx context.Context, mod api.Module, input string) (string, error) {
	allocFn := mod.ExportedFunction(exportAlloc)
	deallocFn := mod.ExportedFunction(exportDealloc)
	executeFn := mod.ExportedFunction(exportExecute)

	if allocFn == nil || deallocFn == nil || executeFn == nil {
		return "", errors.Newf("engine module is missing a required export (%s, %s, %s)",
			exportAlloc, exportDealloc, exportExecute)
	}

	inputBytes := []byte(input)
	inputSize := uint64(len(inputBytes))

	var inputPtr uint64
	if inputSize > 0 {
		results, err := allocFn.Call(ctx, inputSize)
		if err != nil {
			return "", errors.Wrapf(err, "alloc request buffer (size=%d)", inputSize)
		}
		inputPtr = results[0]
		if inputPtr == 0 {
			return "", errors.Newf("alloc returned null for request buffer (size=%d)", inputSize)
		}

		if !mod.Memory().Write(uint32(inputPtr), inputBytes) {
			// Best effort to free; the write failure is the error that matters.
			if _, freeErr := deallocFn.Call(ctx, inputPtr, inputSize); freeErr != nil {
				return "", errors.Wrapf(freeErr, "request write out of range at ptr=%d size=%d (dealloc also failed)", inputPtr, inputSize)
			}
			return "", errors.Newf("request write out of range at ptr=%d size=%d", inputPtr, inputSize)
		}
	}

	results, err := executeFn.Call(ctx, inputPtr, inputSize)
	if err != nil {
		if inputSize > 0 {
			if _, freeErr := deallocFn.Call(ctx, inputPtr, inputSize); freeErr != nil {
				return "", errors.Wrapf(err, "execute failed (request buffer at ptr=%d size=%d also leaked: %v)", inputPtr, inputSize, freeErr)
			}
		}
		return "", errors.Wrap(err, "execute")
	}

	if inputSize > 0 {
		if _, err := deallocFn.Call(ctx, inputPtr, inputSize); err != nil {
			return "", errors.Wrapf(err, "request buffer leaked at ptr=%d size=%d", inputPtr, inputSize)
		}
	}

	// Unpack (ptr << 32) | len.
	packed := results[0]
	resultPtr := uint32(packed >> 32)
	resultLen := uint32(packed & 0xFFFFFFFF)

	if resultPtr == 0 || resultLen == 0 {
		return "", errors.Newf("execute returned a null response (ptr=%d, len=%d)", resultPtr, resultLen)
	}

	resultBytes, ok := mod.Memory().Read(resultPtr, resultLen)
	if !ok {
		return "", errors.Newf("response read out of range at ptr=%d len=%d", resultPtr, resultLen)
	}

	// Copy before freeing; the slice aliases linear memory.
	output := make([]byte, len(resultBytes))
	copy(output, resultBytes)

	if _, err := deallocFn.Call(ctx, uint64(resultPtr), uint64(resultLen)); err != nil {
		return "", errors.Wrapf(err, "response buffer leaked at ptr=%d size=%d", resultPtr, resultLen)
	}

	return string(output), nil
}
