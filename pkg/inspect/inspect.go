// Package inspect summarizes the columns of a dataframe: dtype, null and
// uniqueness statistics, and a preview of distinct values drawn from a
// random row subsample.
package inspect

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	defaultSamples = 33
	maxSampleRows  = 10_000
	maxPreview     = 1_000
)

// Info returns a summary frame with one row per column of df and the columns
// column, dtype, samples, frac_nan, num_nan, num_notnan, frac_unique and
// num_unique. The samples preview lists up to nSamples distinct values seen
// in a uniform subsample of at most min(10000, nrow/10) rows; num_unique is
// exact over the full column regardless of the subsample. nSamples <= 0
// selects the default of 33. The frame's shape is printed to stdout.
func Info(df dataframe.DataFrame, nSamples int) dataframe.DataFrame {
	if nSamples <= 0 {
		nSamples = defaultSamples
	}
	nrow, ncol := df.Dims()

	sampleCap := nrow / 10
	if sampleCap > maxSampleRows {
		sampleCap = maxSampleRows
	}
	previewCap := nSamples
	if previewCap > maxPreview {
		previewCap = maxPreview
	}
	if previewCap > sampleCap {
		previewCap = sampleCap
	}

	var sampled dataframe.DataFrame
	if previewCap > 0 {
		sampled = df.Subset(rand.Perm(nrow)[:sampleCap])
	}

	names := df.Names()
	dtypes := make([]string, ncol)
	samples := make([]string, ncol)
	fracNaN := make([]float64, ncol)
	numNaN := make([]int, ncol)
	numNotNaN := make([]int, ncol)
	fracUnique := make([]float64, ncol)
	numUnique := make([]int, ncol)

	for i, name := range names {
		col := df.Col(name)
		nan := 0
		for _, isNaN := range col.IsNaN() {
			if isNaN {
				nan++
			}
		}
		notNaN := col.Len() - nan
		uq := countUnique(col)

		dtypes[i] = string(col.Type())
		numNaN[i] = nan
		numNotNaN[i] = notNaN
		numUnique[i] = uq
		// 0/0 is deliberately NaN here, e.g. frac_unique of an all-null column.
		fracNaN[i] = float64(nan) / float64(nrow)
		fracUnique[i] = float64(uq) / float64(notNaN)
		if previewCap > 0 {
			samples[i] = preview(sampled.Col(name), previewCap)
		} else {
			samples[i] = "[]"
		}
	}

	res := dataframe.New(
		series.New(names, series.String, "column"),
		series.New(dtypes, series.String, "dtype"),
		series.New(samples, series.String, "samples"),
		series.New(fracNaN, series.Float, "frac_nan"),
		series.New(numNaN, series.Int, "num_nan"),
		series.New(numNotNaN, series.Int, "num_notnan"),
		series.New(fracUnique, series.Float, "frac_unique"),
		series.New(numUnique, series.Int, "num_unique"),
	)

	fmt.Printf("shape = (%d, %d)\n", nrow, ncol)
	return res
}

// countUnique counts distinct non-null values over the whole column.
func countUnique(col series.Series) int {
	isNaN := col.IsNaN()
	seen := make(map[string]struct{})
	for i, r := range col.Records() {
		if isNaN[i] {
			continue
		}
		seen[r] = struct{}{}
	}
	return len(seen)
}

// preview lists up to limit distinct values in first-appearance order.
func preview(col series.Series, limit int) string {
	if limit <= 0 {
		return "[]"
	}
	seen := make(map[string]struct{})
	vals := make([]string, 0, limit)
	for _, r := range col.Records() {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		vals = append(vals, r)
		if len(vals) == limit {
			break
		}
	}
	return "[" + strings.Join(vals, " ") + "]"
}
