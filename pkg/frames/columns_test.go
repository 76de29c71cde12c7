package frames

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]int{1, 2, 3}, series.Int, "id"),
		series.New([]string{"x", "y", "z"}, series.String, "name"),
		series.New([]float64{0.1, 0.2, 0.3}, series.Float, "score"),
	)
}

func TestDropColumns(t *testing.T) {
	df := sampleFrame()
	res, err := DropColumns(&df, []string{"name"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "score"}, res.Names())
	assert.Equal(t, 3, df.Ncol(), "inplace=false must leave the input frame alone")
}

func TestDropColumnsInplace(t *testing.T) {
	df := sampleFrame()
	res, err := DropColumns(&df, []string{"name", "score"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, res.Names())
	assert.Equal(t, []string{"id"}, df.Names())
}

func TestDropColumnsUnknown(t *testing.T) {
	df := sampleFrame()
	_, err := DropColumns(&df, []string{"nope"}, false)
	assert.Error(t, err)
}

func TestDropColumnsEmptyFrame(t *testing.T) {
	var df dataframe.DataFrame
	res, err := DropColumns(&df, []string{"anything", "at", "all"}, false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Ncol())
}

func TestColumnCut(t *testing.T) {
	df := sampleFrame()
	sel, rest, err := ColumnCut(df, []string{"score", "id"})
	require.NoError(t, err)

	assert.Equal(t, []string{"score", "id"}, sel.Names(), "selected columns keep the requested order")
	assert.Equal(t, []string{"name"}, rest.Names())

	// Lossless partition: no shared names, values untouched.
	for _, n := range sel.Names() {
		assert.NotContains(t, rest.Names(), n)
		assert.Equal(t, df.Col(n).Records(), sel.Col(n).Records())
	}
	for _, n := range rest.Names() {
		assert.Equal(t, df.Col(n).Records(), rest.Col(n).Records())
	}
	assert.Equal(t, df.Ncol(), sel.Ncol()+rest.Ncol())
	assert.Equal(t, df.Nrow(), sel.Nrow())
	assert.Equal(t, df.Nrow(), rest.Nrow())
}

func TestColumnCutUnknown(t *testing.T) {
	_, _, err := ColumnCut(sampleFrame(), []string{"ghost"})
	assert.Error(t, err)
}
