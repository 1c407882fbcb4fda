package renderers

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/layout"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GonumPlot draws line series on a gonum.org/v1/plot plot and labels each series next to its line.
type GonumPlot struct {
	Plot *plot.Plot

	// TextStyle is used to measure and draw the labels. The color is replaced by the series color.
	TextStyle draw.TextStyle

	series []gonumSeries
}

type gonumSeries struct {
	name  string
	xys   plotter.XYs
	color color.Color
}

// NewGonumPlot returns a new github.com/gonum/plot series labeler. Labels use the legend's text style in bold.
func NewGonumPlot(p *plot.Plot) *GonumPlot {
	sty := p.Legend.TextStyle
	sty.Font.Weight = xfont.WeightBold
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop
	return &GonumPlot{
		Plot:      p,
		TextStyle: sty,
	}
}

// AddSeries adds a line for the given points to the plot, colored by the default plotutil palette.
func (r *GonumPlot) AddSeries(name string, xys plotter.XYer) error {
	data, err := plotter.CopyXYs(xys)
	if err != nil {
		return fmt.Errorf("series %q: %w", name, err)
	}
	line, err := plotter.NewLine(data)
	if err != nil {
		return fmt.Errorf("series %q: %w", name, err)
	}

	col := plotutil.Color(len(r.series))
	line.LineStyle.Color = col
	r.Plot.Add(line)
	r.series = append(r.series, gonumSeries{name, data, col})
	return nil
}

// Measure returns the size of the label text in points.
func (r *GonumPlot) Measure(text string) labels.Size {
	return labels.Size{W: float64(r.TextStyle.Width(text)), H: float64(r.TextStyle.Height(text))}
}

// Series returns the series projected into the data area of the plot drawn on dc, in points with the origin at the top-left of the data area.
func (r *GonumPlot) Series(dc draw.Canvas) (labels.Size, []layout.Series) {
	da := r.Plot.DataCanvas(dc)
	size := labels.Size{W: float64(da.Max.X - da.Min.X), H: float64(da.Max.Y - da.Min.Y)}

	series := make([]layout.Series, 0, len(r.series))
	for _, s := range r.series {
		points := make([]labels.Point, 0, len(s.xys))
		for _, xy := range s.xys {
			x := da.X(r.Plot.X.Norm(xy.X)) - da.Min.X
			y := da.Max.Y - da.Y(r.Plot.Y.Norm(xy.Y))
			points = append(points, labels.Point{X: float64(x), Y: float64(y)})
		}
		series = append(series, layout.Series{Name: s.name, Points: points})
	}
	return size, series
}

// Draw draws the plot onto dc, places the labels using l and draws them in the color of their series. It returns the labels, unplaced labels are not drawn.
func (r *GonumPlot) Draw(dc draw.Canvas, l *layout.Labeler) []layout.Label {
	r.Plot.Draw(dc)

	size, series := r.Series(dc)
	ls := l.Label(size, series)

	da := r.Plot.DataCanvas(dc)
	for i, label := range ls {
		if !label.Placed() {
			continue
		}
		sty := r.TextStyle
		sty.Color = r.series[i].color
		pt := vg.Point{
			X: da.Min.X + vg.Length(label.Pos.X),
			Y: da.Max.Y - vg.Length(label.Pos.Y),
		}
		da.FillText(sty, pt, label.Series)
	}
	return ls
}

// Save draws the labeled plot with the given size to a file. The format is chosen by the file extension, see draw.NewFormattedCanvas.
func (r *GonumPlot) Save(w, h vg.Length, filename string, l *layout.Labeler) ([]layout.Label, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	ls := r.Draw(draw.New(c), l)

	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if _, err = c.WriteTo(f); err != nil {
		f.Close()
		return nil, err
	}
	return ls, f.Close()
}
