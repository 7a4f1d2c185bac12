package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesseractdb/go-tesseract/errors"
	"github.com/tesseractdb/go-tesseract/spacetime"
)

func TestEncodeExprLeafID(t *testing.T) {
	id := spacetime.NewSpatialID(2, spacetime.AnyRange(), spacetime.Single(1), spacetime.Single(3))

	w, err := EncodeExpr(id)
	require.NoError(t, err)

	data, err := JSON.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"IDs":[{"z":2,"i":0,"f":"Any","x":{"Single":1},"y":{"Single":3},"t":"Any"}]}`, string(data))
}

func TestEncodeExprNestedTree(t *testing.T) {
	region := spacetime.NewSpatialID(2, spacetime.AnyRange(), spacetime.Single(1), spacetime.Single(3))

	expr := spacetime.AndOf(
		region,
		spacetime.OrOf(
			spacetime.FilterOf("weather", "temp", spacetime.IntGreaterThan(20)),
			spacetime.HasValue("weather", "humidity"),
		),
		spacetime.NotOf(spacetime.XorOf(region)),
	)

	w, err := EncodeExpr(expr)
	require.NoError(t, err)

	data, err := JSON.Marshal(w)
	require.NoError(t, err)

	idJSON := `{"z":2,"i":0,"f":"Any","x":{"Single":1},"y":{"Single":3},"t":"Any"}`
	assert.JSONEq(t, `{"AND":[
		{"IDs":[`+idJSON+`]},
		{"OR":[
			{"Filter":{"space":"weather","key":"temp","filter":{"INT":{"GreaterThan":20}}}},
			{"HasValue":{"space":"weather","key":"humidity"}}
		]},
		{"NOT":[{"XOR":[{"IDs":[`+idJSON+`]}]}]}
	]}`, string(data))
}

func TestEncodeExprChildOrderPreserved(t *testing.T) {
	a := spacetime.HasValue("s", "a")
	b := spacetime.HasValue("s", "b")
	c := spacetime.HasValue("s", "c")

	w, err := EncodeExpr(spacetime.OrOf(c, a, b))
	require.NoError(t, err)

	data, err := JSON.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t,
		`{"OR":[{"HasValue":{"space":"s","key":"c"}},{"HasValue":{"space":"s","key":"a"}},{"HasValue":{"space":"s","key":"b"}}]}`,
		string(data))
}

func TestEncodeExprEmptyCombinatorKeepsTag(t *testing.T) {
	w, err := EncodeExpr(spacetime.AndOf())
	require.NoError(t, err)

	data, err := JSON.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, `{"AND":[]}`, string(data))
}

func TestEncodeExprNilFilterFoldsToHasValue(t *testing.T) {
	w, err := EncodeExpr(spacetime.FilterExpr{Space: "s", Key: "k"})
	require.NoError(t, err)

	data, err := JSON.Marshal(w)
	require.NoError(t, err)
	assert.Equal(t, `{"HasValue":{"space":"s","key":"k"}}`, string(data))
}

func TestEncodeExprRejectsUnknownVariants(t *testing.T) {
	_, err := EncodeExpr(nil)
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err))

	// Pointer variants are outside the sealed value set.
	_, err = EncodeExpr(&spacetime.And{})
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err), "want encoding error, got %v", err)
	assert.Contains(t, err.Error(), "unrecognized range expression")
}

func TestEncodeExprBadFilterNamesChild(t *testing.T) {
	expr := spacetime.AndOf(
		spacetime.HasValue("s", "k"),
		spacetime.FilterOf("s", "k", spacetime.Filter{}),
	)

	_, err := EncodeExpr(expr)
	require.Error(t, err)
	assert.True(t, errors.IsEncoding(err))
	assert.Contains(t, err.Error(), "child 1")
}
