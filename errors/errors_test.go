package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrEncoding, "invalid dimension range")

	assert.True(t, Is(err, ErrEncoding))
	assert.False(t, Is(err, ErrDecoding))
	assert.Contains(t, err.Error(), "invalid dimension range")
}

func TestEncodingf(t *testing.T) {
	err := Encodingf("unrecognized filter payload: %v", map[string]int{"bogus": 1})

	require.Error(t, err)
	assert.True(t, IsEncoding(err))
	assert.Contains(t, err.Error(), "unrecognized filter payload")
}

func TestDecodingf(t *testing.T) {
	err := Decodingf("unknown dimension tag %q", "Weird")

	assert.True(t, IsDecoding(err))
	assert.False(t, IsEncoding(err))
}

func TestResponseShapef(t *testing.T) {
	err := ResponseShapef("vertex has %d points, want 8", 7)

	assert.True(t, IsResponseShape(err))
	assert.Contains(t, err.Error(), "7 points")
}

func TestTaxonomyIsDisjoint(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"encoding", Encodingf("bad input")},
		{"decoding", Decodingf("bad wire")},
		{"shape", ResponseShapef("bad envelope")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matches := 0
			for _, fn := range []func(error) bool{IsEncoding, IsDecoding, IsResponseShape} {
				if fn(tc.err) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "each taxonomy class matches exactly one sentinel")
		})
	}
}

func TestCommandErrorMessageVerbatim(t *testing.T) {
	err := NewCommandError("key not found")

	assert.Equal(t, "key not found", err.Error())
}

func TestAsCommandErrorThroughWrapping(t *testing.T) {
	base := NewCommandError("space does not exist")
	wrapped := Wrap(base, "create key")

	cmdErr, ok := AsCommandError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "space does not exist", cmdErr.Message)

	assert.True(t, IsCommandError(wrapped))
	assert.False(t, IsCommandError(New("plain")))
}

func TestIsAlreadyExists(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"exact phrase", NewCommandError("value already exists"), true},
		{"with context", NewCommandError(`value already exists in space "fleet" key "speed"`), true},
		{"wrapped", Wrap(NewCommandError("value already exists"), "put"), true},
		{"other command error", NewCommandError("key not found"), false},
		{"non-command error", New("already exists"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsAlreadyExists(tc.err))
		})
	}
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))

	_, ok := AsCommandError(nil)
	assert.False(t, ok)
	assert.False(t, IsEncoding(nil))
	assert.False(t, IsDecoding(nil))
	assert.False(t, IsResponseShape(nil))
}

func ExampleAsCommandError() {
	err := NewCommandError("key not found")

	if cmdErr, ok := AsCommandError(err); ok {
		fmt.Println(cmdErr.Message)
	}
	// Output: key not found
}
