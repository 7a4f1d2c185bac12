package spacetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseractdb/go-tesseract/errors"
)

func TestDimensionRangeConstructors(t *testing.T) {
	assert.Equal(t, RangeAny, AnyRange().Kind())
	assert.Equal(t, DimensionRange{}, AnyRange(), "AnyRange must equal the zero value")

	s := Single(7)
	assert.Equal(t, RangeSingle, s.Kind())
	lo, hi := s.Bounds()
	assert.Equal(t, int64(7), lo)
	assert.Equal(t, int64(7), hi)

	iv := Interval(3, 9)
	assert.Equal(t, RangeInterval, iv.Kind())
	lo, hi = iv.Bounds()
	assert.Equal(t, int64(3), lo)
	assert.Equal(t, int64(9), hi)

	b := Before(12)
	assert.Equal(t, RangeBefore, b.Kind())
	_, hi = b.Bounds()
	assert.Equal(t, int64(12), hi)

	a := After(4)
	assert.Equal(t, RangeAfter, a.Kind())
	lo, _ = a.Bounds()
	assert.Equal(t, int64(4), lo)
}

func TestDimensionRangeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		r    DimensionRange
		want string
	}{
		{"any", AnyRange(), `["-"]`},
		{"zero value is any", DimensionRange{}, `["-"]`},
		{"single", Single(5), `[5]`},
		{"single negative", Single(-3), `[-3]`},
		{"interval", Interval(5, 10), `[5,10]`},
		{"before", Before(10), `["-",10]`},
		{"after", After(5), `[5,"-"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestParseRangeArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DimensionRange
	}{
		{"any", `["-"]`, AnyRange()},
		{"single", `[5]`, Single(5)},
		{"single negative", `[-17]`, Single(-17)},
		{"interval", `[5,10]`, Interval(5, 10)},
		{"before", `["-",10]`, Before(10)},
		{"after", `[5,"-"]`, After(5)},
		{"whitespace tolerated", `[ 5 , 10 ]`, Interval(5, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRangeArray([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRangeArrayRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty array", `[]`},
		{"three elements", `[1,2,3]`},
		{"double unbounded", `["-","-"]`},
		{"float element", `[1.5]`},
		{"string element", `["north"]`},
		{"wrong marker", `["*"]`},
		{"float upper bound", `[1,2.5]`},
		{"bare number", `5`},
		{"object", `{"lo":1}`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRangeArray([]byte(tt.in))
			require.Error(t, err)
			assert.True(t, errors.IsEncoding(err), "want encoding error, got %v", err)
			assert.Contains(t, err.Error(), "invalid dimension range")
		})
	}
}

func TestDimensionRangeJSONRoundTrip(t *testing.T) {
	ranges := []DimensionRange{
		AnyRange(),
		Single(0),
		Single(42),
		Single(-1),
		Interval(-5, 5),
		Before(100),
		After(-100),
	}

	for _, r := range ranges {
		data, err := jsonCodec.Marshal(r)
		require.NoError(t, err)

		var back DimensionRange
		require.NoError(t, jsonCodec.Unmarshal(data, &back))
		assert.Equal(t, r, back, "round trip through %s", string(data))
	}
}

func TestDimensionRangeString(t *testing.T) {
	assert.Equal(t, "-", AnyRange().String())
	assert.Equal(t, "5", Single(5).String())
	assert.Equal(t, "5:10", Interval(5, 10).String())
	assert.Equal(t, "-:10", Before(10).String())
	assert.Equal(t, "5:-", After(5).String())
}

func TestRangeKindString(t *testing.T) {
	assert.Equal(t, "Any", RangeAny.String())
	assert.Equal(t, "Single", RangeSingle.String())
	assert.Equal(t, "Interval", RangeInterval.String())
	assert.Equal(t, "UnboundedBefore", RangeBefore.String())
	assert.Equal(t, "UnboundedAfter", RangeAfter.String())
}
