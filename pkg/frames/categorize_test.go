package frames

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeFirstAppearance(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"blue", "red", "blue", "green", "red"}, series.String, "color"),
	)
	original := df.Col("color").Records()

	decode, err := Categorize(&df, []string{"color"}, "")
	require.NoError(t, err)

	require.Equal(t, []string{"blue", "red", "green"}, decode["color"])
	assert.Equal(t, series.Int, df.Col("color").Type())

	codes := df.Col("color").Float()
	assert.Equal(t, []float64{0, 1, 0, 2, 1}, codes)

	// Round trip: decoding code i and re-encoding yields i again.
	for row, c := range codes {
		assert.Equal(t, original[row], decode["color"][int(c)])
	}
}

func TestCategorizeCast(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b", "a"}, series.String, "k"),
	)
	_, err := Categorize(&df, []string{"k"}, series.Float)
	require.NoError(t, err)
	assert.Equal(t, series.Float, df.Col("k").Type())
	assert.Equal(t, []float64{0, 1, 0}, df.Col("k").Float())
}

func TestCategorizeNulls(t *testing.T) {
	df := dataframe.New(
		series.New([]float64{2.5, math.NaN(), 2.5, 7.0}, series.Float, "v"),
	)
	decode, err := Categorize(&df, []string{"v"}, "")
	require.NoError(t, err)

	assert.Len(t, decode["v"], 2)
	assert.Equal(t, []float64{0, -1, 0, 1}, df.Col("v").Float())
}

func TestCategorizeUnknownColumn(t *testing.T) {
	df := dataframe.New(series.New([]string{"a"}, series.String, "k"))
	_, err := Categorize(&df, []string{"missing"}, "")
	assert.Error(t, err)
}

func TestCategorizeMultipleColumns(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"a", "b"}, series.String, "first"),
		series.New([]string{"y", "y"}, series.String, "second"),
	)
	decode, err := Categorize(&df, []string{"first", "second"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, decode["first"])
	assert.Equal(t, []string{"y"}, decode["second"])
}
