package renderers

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/layout"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// GoChart labels the continuous series of a github.com/wcharczuk/go-chart chart. Labels are placed and drawn by a chart element after the series have been rendered, so that the size of the canvas box is known.
type GoChart struct {
	Series []chart.ContinuousSeries

	Font     *truetype.Font // defaults to the chart's font
	FontSize float64        // defaults to chart.DefaultFontSize

	labeler  *layout.Labeler
	renderer chart.Renderer
	labels   []layout.Label
}

// NewGoChart returns a new github.com/wcharczuk/go-chart series labeler.
func NewGoChart(opts layout.Options) *GoChart {
	r := &GoChart{}
	r.labeler = layout.NewLabeler(r, opts)
	return r
}

// AddSeries adds a continuous series, colored by the default go-chart palette.
func (r *GoChart) AddSeries(name string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("series %q: %d x values but %d y values", name, len(xs), len(ys))
	}
	r.Series = append(r.Series, chart.ContinuousSeries{
		Name: name,
		Style: chart.Style{
			StrokeColor: chart.GetDefaultColor(len(r.Series)),
			StrokeWidth: chart.DefaultStrokeWidth,
		},
		XValues: xs,
		YValues: ys,
	})
	return nil
}

// Labels returns the labels of the last render.
func (r *GoChart) Labels() []layout.Label {
	return r.labels
}

// Measure returns the size of the label text in pixels, using the renderer of the current render. Outside of Render it returns a zero size.
func (r *GoChart) Measure(text string) labels.Size {
	if r.renderer == nil {
		return labels.Size{}
	}
	box := r.renderer.MeasureText(text)
	return labels.Size{W: float64(box.Width()), H: float64(box.Height())}
}

// Apply sets the series of the chart, pins both axes to the extent of the data and adds the label element.
func (r *GoChart) Apply(c *chart.Chart) {
	for _, s := range r.Series {
		c.Series = append(c.Series, s)
	}
	if xrange, ok := rangeOf(r.Series, true); ok {
		c.XAxis.Range = &chart.ContinuousRange{Min: xrange[0], Max: xrange[1]}
	}
	if yrange, ok := rangeOf(r.Series, false); ok {
		c.YAxis.Range = &chart.ContinuousRange{Min: yrange[0], Max: yrange[1]}
	}
	c.Elements = append(c.Elements, r.Render)
}

// Render is a chart.Renderable that places and draws the labels inside the canvas box of the chart.
func (r *GoChart) Render(cr chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
	font := r.Font
	if font == nil {
		font = defaults.GetFont()
	}
	cr.SetFont(font)
	cr.SetFontSize(defaults.GetFontSize(chart.DefaultFontSize))
	if r.FontSize != 0.0 {
		cr.SetFontSize(r.FontSize)
	}

	r.renderer = cr
	defer func() {
		r.renderer = nil
	}()

	size, series := r.project(canvasBox)
	r.labels = r.labeler.Label(size, series)
	for i, label := range r.labels {
		if !label.Placed() {
			continue
		}
		col := r.Series[i].Style.StrokeColor
		if col.IsZero() {
			col = drawing.ColorBlack
		}
		cr.SetFontColor(col)

		// text is drawn from its baseline
		x := canvasBox.Left + int(math.Round(label.Pos.X))
		y := canvasBox.Top + int(math.Round(label.Pos.Y+label.Box.H))
		cr.Text(label.Series, x, y)
	}
}

func (r *GoChart) project(canvasBox chart.Box) (labels.Size, []layout.Series) {
	w, h := canvasBox.Width(), canvasBox.Height()
	xr := &chart.ContinuousRange{Domain: w}
	yr := &chart.ContinuousRange{Domain: h}
	if xrange, ok := rangeOf(r.Series, true); ok {
		xr.Min, xr.Max = xrange[0], xrange[1]
	}
	if yrange, ok := rangeOf(r.Series, false); ok {
		yr.Min, yr.Max = yrange[0], yrange[1]
	}

	series := make([]layout.Series, 0, len(r.Series))
	for _, s := range r.Series {
		points := make([]labels.Point, 0, len(s.XValues))
		for i := range s.XValues {
			x := xr.Translate(s.XValues[i])
			y := h - yr.Translate(s.YValues[i])
			points = append(points, labels.Point{X: float64(x), Y: float64(y)})
		}
		series = append(series, layout.Series{Name: s.Name, Points: points})
	}
	return labels.Size{W: float64(w), H: float64(h)}, series
}

// rangeOf returns the extent of the X or Y values of all series. A zero-width extent is widened by one unit on either side.
func rangeOf(series []chart.ContinuousSeries, x bool) ([2]float64, bool) {
	v := [2]float64{math.Inf(1), math.Inf(-1)}
	for _, s := range series {
		values := s.YValues
		if x {
			values = s.XValues
		}
		for _, f := range values {
			v[0], v[1] = math.Min(v[0], f), math.Max(v[1], f)
		}
	}
	if v[0] == v[1] {
		v[0], v[1] = v[0]-1.0, v[1]+1.0
	}
	return v, v[0] < v[1]
}

// Save renders the chart to a file, as PNG or SVG depending on the file extension.
func (r *GoChart) Save(c *chart.Chart, filename string) error {
	var provider chart.RendererProvider
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		provider = chart.PNG
	case ".svg":
		provider = chart.SVG
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := c.Render(provider, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFont parses a TrueType font file for use by go-chart.
func LoadFont(filename string) (*truetype.Font, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	font, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return font, nil
}
