// Package qq renders quantile-quantile diagnostics: observed quantiles of a
// column against theoretical normal quantiles, with a least-squares
// reference line overlaid.
package qq

import (
	"fmt"
	"image"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gcwl/eda/pkg/palette"
)

const (
	plotsPerRow = 5
	figWidth    = 19 * vg.Inch
	rowHeight   = 3.6 * vg.Inch
	lineColor   = "#4b4b4b"
)

// Figure is the in-process rendering produced by Plot. The caller decides
// where it ends up: Image for further processing, WriteTo for a PNG stream.
type Figure struct {
	canvas *vgimg.Canvas
}

// Image returns the rendered figure as an image.
func (f *Figure) Image() image.Image { return f.canvas.Image() }

// WriteTo encodes the figure as PNG into w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: f.canvas}
	return png.WriteTo(w)
}

// Plot draws quantile-quantile diagnostics for data, which must be either a
// single series.Series or a dataframe.DataFrame. A series yields one plot
// titled with its name; a frame yields one plot per non-string column, laid
// out in a grid of at most 5 plots per row, 19in wide and 3.6in per row.
// Any other input kind is an error.
func Plot(data any) (*Figure, error) {
	switch v := data.(type) {
	case dataframe.DataFrame:
		return plotFrame(v)
	case series.Series:
		return plotSeries(v)
	default:
		return nil, fmt.Errorf("qq: unknown input %T: want dataframe.DataFrame or series.Series", data)
	}
}

func plotSeries(s series.Series) (*Figure, error) {
	p, err := makePlot(s)
	if err != nil {
		return nil, err
	}
	canvas := vgimg.New(figWidth/plotsPerRow, rowHeight)
	p.Draw(draw.New(canvas))
	return &Figure{canvas: canvas}, nil
}

func plotFrame(df dataframe.DataFrame) (*Figure, error) {
	var cols []series.Series
	for _, name := range df.Names() {
		col := df.Col(name)
		if col.Type() == series.String {
			continue
		}
		cols = append(cols, col)
	}
	ncol := len(cols)
	if ncol == 0 {
		return nil, fmt.Errorf("qq: frame has no numeric columns")
	}

	figCols := plotsPerRow
	if ncol < figCols {
		figCols = ncol
	}
	figRows := ncol / figCols
	if ncol%figCols != 0 {
		figRows++
	}

	plots := make([][]*plot.Plot, figRows)
	k := 0
	for r := range plots {
		plots[r] = make([]*plot.Plot, figCols)
		for c := 0; c < figCols && k < ncol; c++ {
			p, err := makePlot(cols[k])
			if err != nil {
				return nil, err
			}
			plots[r][c] = p
			k++
		}
	}

	canvas := vgimg.New(figWidth, vg.Length(figRows)*rowHeight)
	tiles := draw.Tiles{
		Rows: figRows,
		Cols: figCols,
		PadX: 2 * vg.Millimeter,
		PadY: 2 * vg.Millimeter,
	}
	cells := plot.Align(plots, tiles, draw.New(canvas))
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(cells[r][c])
			}
		}
	}
	return &Figure{canvas: canvas}, nil
}

// makePlot builds one quantile-quantile plot for a column, colored by its
// dtype and overlaid with the probability-plot fit line.
func makePlot(s series.Series) (*plot.Plot, error) {
	x, y, fit := probplot(s.Float())

	p := plot.New()
	p.Title.Text = s.Name
	p.Title.TextStyle.Font.Size = 10

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = palette.RGBA(palette.Color(s.Type()))
	scatter.GlyphStyle.Shape = draw.PlusGlyph{}
	scatter.GlyphStyle.Radius = 2
	p.Add(scatter)

	if len(x) > 1 {
		x0, x1 := x[0], x[len(x)-1]
		line, err := plotter.NewLine(plotter.XYs{
			{X: x0, Y: fit.slope*x0 + fit.intercept},
			{X: x1, Y: fit.slope*x1 + fit.intercept},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = palette.RGBA(lineColor)
		line.LineStyle.Width = 0.9
		p.Add(line)
	}
	return p, nil
}
