package spacetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseractdb/go-tesseract/errors"
)

func TestIDUnmarshalAppliesDefaults(t *testing.T) {
	var id ID
	require.NoError(t, jsonCodec.Unmarshal([]byte(`{"z":3}`), &id))

	assert.Equal(t, 3, id.Z)
	assert.Equal(t, int64(0), id.I)
	assert.Equal(t, AnyRange(), id.F)
	assert.Equal(t, AnyRange(), id.X)
	assert.Equal(t, AnyRange(), id.Y)
	assert.Equal(t, AnyRange(), id.T)
	assert.True(t, id.IsSpatial())
}

func TestIDUnmarshalFullForm(t *testing.T) {
	var id ID
	data := `{"z":4,"i":60,"f":[0],"x":[5,10],"y":["-",3],"t":[100,"-"]}`
	require.NoError(t, jsonCodec.Unmarshal([]byte(data), &id))

	want := ID{
		Z: 4,
		I: 60,
		F: Single(0),
		X: Interval(5, 10),
		Y: Before(3),
		T: After(100),
	}
	assert.Equal(t, want, id)
	assert.False(t, id.IsSpatial())
}

func TestIDUnmarshalMissingZ(t *testing.T) {
	var id ID
	err := jsonCodec.Unmarshal([]byte(`{"x":[5]}`), &id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field z")
}

func TestIDUnmarshalBadAxis(t *testing.T) {
	var id ID
	err := id.UnmarshalJSON([]byte(`{"z":3,"y":[1,2,3]}`))
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err), "want encoding error, got %v", err)
	assert.Contains(t, err.Error(), "axis y")
}

func TestIDJSONRoundTrip(t *testing.T) {
	ids := []ID{
		{Z: 0},
		NewSpatialID(3, Single(1), Interval(5, 10), AnyRange()),
		NewSpaceTimeID(5, 60, AnyRange(), Single(8), Single(9), After(1000)),
	}

	for _, id := range ids {
		data, err := jsonCodec.Marshal(id)
		require.NoError(t, err)

		var back ID
		require.NoError(t, jsonCodec.Unmarshal(data, &back))
		assert.Equal(t, id, back, "round trip through %s", string(data))
	}
}

func TestIDMarshalEmitsAllFields(t *testing.T) {
	data, err := jsonCodec.Marshal(ID{Z: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":2,"i":0,"f":["-"],"x":["-"],"y":["-"],"t":["-"]}`, string(data))
}

func TestIDString(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want string
	}{
		{
			"spatial all any",
			ID{Z: 3},
			"3/-/-/-",
		},
		{
			"spatial concrete",
			NewSpatialID(4, Single(0), Interval(5, 10), Single(2)),
			"4/0/5:10/2",
		},
		{
			"space-time",
			NewSpaceTimeID(4, 60, Single(0), Single(5), Single(2), Interval(10, 20)),
			"4/0/5/2_60/10:20",
		},
		{
			"space-time half-open time",
			NewSpaceTimeID(2, 3600, AnyRange(), AnyRange(), AnyRange(), After(48)),
			"2/-/-/-_3600/48:-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())
		})
	}
}
