package qq

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// lineFit is the least-squares line through a probability plot.
type lineFit struct {
	slope, intercept, r float64
}

// probplot orders the sample and pairs it with theoretical standard-normal
// quantiles at Filliben plotting positions, returning the quantiles, the
// ordered sample and the least-squares line through the pairs. NaN entries
// are dropped first.
func probplot(sample []float64) (x, y []float64, f lineFit) {
	y = make([]float64, 0, len(sample))
	for _, v := range sample {
		if !math.IsNaN(v) {
			y = append(y, v)
		}
	}
	sort.Float64s(y)

	x = plottingPositions(len(y))
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for i, p := range x {
		x[i] = norm.Quantile(p)
	}

	if len(y) > 1 {
		f.intercept, f.slope = stat.LinearRegression(x, y, nil, false)
		f.r = stat.Correlation(x, y, nil)
	}
	return x, y, f
}

// plottingPositions returns Filliben's order-statistic medians for n points.
func plottingPositions(n int) []float64 {
	m := make([]float64, n)
	if n == 0 {
		return m
	}
	if n == 1 {
		m[0] = 0.5
		return m
	}
	m[n-1] = math.Pow(0.5, 1/float64(n))
	m[0] = 1 - m[n-1]
	for i := 1; i < n-1; i++ {
		m[i] = (float64(i+1) - 0.3175) / (float64(n) + 0.365)
	}
	return m
}
