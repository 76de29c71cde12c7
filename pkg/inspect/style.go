package inspect

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/muesli/termenv"

	"github.com/gcwl/eda/pkg/palette"
)

const (
	barWidth      = 12
	barNaNColor   = "#8395a7"
	barUniqColor  = "#cad3c8"
	alertColor    = "#ff0000"
	regularColor  = "#000000"
	samplesWidth  = 40
	fracNaNAlert  = 0.5 // red when frac_nan exceeds this
	fracUniqAlert = 0.1 // red when frac_unique falls below this
)

// Styled computes the same summary as Info and renders it decorated for
// terminal display: dtype cells carry the palette background, the two
// fraction columns flip to red past their alert thresholds and carry a bar
// scaled to the column's observed maximum. before, when non-nil, transforms
// the summary first (sorting it, say). The rendering is display-only; use
// Info for the raw numbers.
func Styled(df dataframe.DataFrame, nSamples int, before func(dataframe.DataFrame) dataframe.DataFrame) string {
	res := Info(df, nSamples)
	if before != nil {
		res = before(res)
	}
	return render(res)
}

func render(res dataframe.DataFrame) string {
	profile := termenv.ColorProfile()
	bg := func(text, hex string) string {
		return termenv.String(text).Background(profile.Color(hex)).String()
	}
	fg := func(text, hex string) string {
		return termenv.String(text).Foreground(profile.Color(hex)).String()
	}

	cols := res.Col("column").Records()
	dtypes := res.Col("dtype").Records()
	samples := res.Col("samples").Records()
	fracNaN := res.Col("frac_nan").Float()
	numNaN := res.Col("num_nan").Records()
	numNotNaN := res.Col("num_notnan").Records()
	fracUnique := res.Col("frac_unique").Float()
	numUnique := res.Col("num_unique").Records()

	maxNaN := maxIgnoringNaN(fracNaN)
	maxUniq := maxIgnoringNaN(fracUnique)

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-8s %-*s %-*s %8s %10s %-*s %10s\n",
		"column", "dtype", samplesWidth, "samples",
		8+1+barWidth, "frac_nan", "num_nan", "num_notnan",
		8+1+barWidth, "frac_unique", "num_unique")

	for i := range cols {
		dtypeCell := bg(fmt.Sprintf("%-8s", dtypes[i]), palette.Color(series.Type(dtypes[i])))

		nanCell := fracCell(fg, fracNaN[i], maxNaN, barNaNColor,
			fracNaN[i] > fracNaNAlert)
		uniqCell := fracCell(fg, fracUnique[i], maxUniq, barUniqColor,
			fracUnique[i] < fracUniqAlert)

		fmt.Fprintf(&b, "%-20s %s %-*s %s %8s %10s %s %10s\n",
			truncate(cols[i], 20), dtypeCell,
			samplesWidth, truncate(samples[i], samplesWidth),
			nanCell, numNaN[i], numNotNaN[i], uniqCell, numUnique[i])
	}
	return b.String()
}

// fracCell formats a fraction with its bar, red when alerting.
func fracCell(fg func(string, string) string, v, max float64, barHex string, alert bool) string {
	text := fmt.Sprintf("%8.4f", v)
	if alert {
		text = fg(text, alertColor)
	} else {
		text = fg(text, regularColor)
	}
	return text + " " + fg(fmt.Sprintf("%-*s", barWidth, bar(v, max)), barHex)
}

// bar scales v against the column maximum into a block-character run.
func bar(v, max float64) string {
	if math.IsNaN(v) || max <= 0 || math.IsNaN(max) {
		return ""
	}
	n := int(math.Round(v / max * barWidth))
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n)
}

func maxIgnoringNaN(xs []float64) float64 {
	max := math.NaN()
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if math.IsNaN(max) || x > max {
			max = x
		}
	}
	return max
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
