package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseractdb/go-tesseract/spacetime"
)

func TestEncodeIDEmitsAllFields(t *testing.T) {
	id := spacetime.NewSpaceTimeID(4, 60,
		spacetime.Single(0),
		spacetime.Interval(5, 10),
		spacetime.AnyRange(),
		spacetime.After(100),
	)

	data, err := JSON.Marshal(EncodeID(id))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"z": 4,
		"i": 60,
		"f": {"Single": 0},
		"x": {"LimitRange": [5, 10]},
		"y": "Any",
		"t": {"AfterUnLimitRange": 100}
	}`, string(data))
}

func TestIDWireRoundTrip(t *testing.T) {
	ids := []spacetime.ID{
		{Z: 0},
		spacetime.NewSpatialID(3, spacetime.Single(1), spacetime.Before(9), spacetime.AnyRange()),
		spacetime.NewSpaceTimeID(7, 3600, spacetime.AnyRange(), spacetime.Single(5), spacetime.Single(6), spacetime.Interval(0, 23)),
	}

	for _, id := range ids {
		data, err := JSON.Marshal(EncodeID(id))
		require.NoError(t, err)

		var w ID
		require.NoError(t, JSON.Unmarshal(data, &w))

		back, err := w.Decode()
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestIDDecodeNamesBadAxis(t *testing.T) {
	var w ID
	require.NoError(t, JSON.Unmarshal([]byte(`{"z":3,"i":0,"f":"Any","x":"Any","y":{},"t":"Any"}`), &w))

	_, err := w.Decode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "axis y")
}
