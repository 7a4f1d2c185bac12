package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

func TestEncodeRangeWireForms(t *testing.T) {
	tests := []struct {
		name string
		r    spacetime.DimensionRange
		want string
	}{
		{"any", spacetime.AnyRange(), `"Any"`},
		{"single", spacetime.Single(5), `{"Single":5}`},
		{"interval", spacetime.Interval(5, 10), `{"LimitRange":[5,10]}`},
		{"before", spacetime.Before(10), `{"BeforeUnLimitRange":10}`},
		{"after", spacetime.After(5), `{"AfterUnLimitRange":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := JSON.Marshal(EncodeRange(tt.r))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestRangeWireRoundTrip(t *testing.T) {
	ranges := []spacetime.DimensionRange{
		spacetime.AnyRange(),
		spacetime.Single(-7),
		spacetime.Interval(0, 3),
		spacetime.Before(99),
		spacetime.After(-99),
	}

	for _, r := range ranges {
		data, err := JSON.Marshal(EncodeRange(r))
		require.NoError(t, err)

		var w Range
		require.NoError(t, JSON.Unmarshal(data, &w))

		back, err := w.Decode()
		require.NoError(t, err)
		assert.Equal(t, r, back, "round trip through %s", string(data))
	}
}

func TestRangeUnknownStringTag(t *testing.T) {
	var w Range
	err := w.UnmarshalJSON([]byte(`"Anything"`))
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err), "want decoding error, got %v", err)
	assert.Contains(t, err.Error(), `"Anything"`)
}

func TestRangeUnknownObjectTag(t *testing.T) {
	var w Range
	require.NoError(t, w.UnmarshalJSON([]byte(`{"Weird":5}`)))

	_, err := w.Decode()
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err), "want decoding error, got %v", err)
	assert.Contains(t, err.Error(), "no recognized variant tag")
}

func TestRangeZeroValueDecodeFails(t *testing.T) {
	_, err := Range{}.Decode()
	require.Error(t, err)
	assert.True(t, errors.IsDecoding(err))
}
