package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/golang/freetype/truetype"
	"github.com/tdewolff/labels/layout"
	"github.com/tdewolff/labels/renderers"
	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// engine draws the dataset, places the labels and writes the chart to filename. An empty filename draws to memory only.
type engine func(cfg Config, ds Dataset, opts layout.Options, filename string) ([]layout.Label, error)

func engineFor(name string) (engine, error) {
	switch name {
	case EngineGonum:
		return gonumEngine, nil
	case EngineGoChart:
		return goChartEngine, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

func gonumFont(name string) (font.Typeface, error) {
	switch name {
	case FontDefault:
		return "", nil
	case FontLatinModern:
		fnt, err := renderers.RegisterLatinModern()
		return fnt.Typeface, err
	}
	typeface := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	fnt, err := renderers.RegisterFont(typeface, name)
	return fnt.Typeface, err
}

func gonumEngine(cfg Config, ds Dataset, opts layout.Options, filename string) ([]layout.Label, error) {
	p := plot.New()
	p.Title.Text = cfg.Title

	typeface, err := gonumFont(cfg.Font)
	if err != nil {
		return nil, err
	} else if typeface != "" {
		p.Title.TextStyle.Font.Typeface = typeface
		p.Legend.TextStyle.Font.Typeface = typeface
		p.X.Tick.Label.Font.Typeface = typeface
		p.Y.Tick.Label.Font.Typeface = typeface
	}

	r := renderers.NewGonumPlot(p)
	for i, name := range ds.Names {
		xys := make(plotter.XYs, len(ds.Lines[i]))
		for j, pt := range ds.Lines[i] {
			xys[j].X, xys[j].Y = pt.X(), pt.Y()
		}
		if err := r.AddSeries(name, xys); err != nil {
			return nil, err
		}
	}
	if ds.Bound.Min.X() < ds.Bound.Max.X() {
		p.X.Min, p.X.Max = ds.Bound.Min.X(), ds.Bound.Max.X()
	}
	if ds.Bound.Min.Y() < ds.Bound.Max.Y() {
		p.Y.Min, p.Y.Max = ds.Bound.Min.Y(), ds.Bound.Max.Y()
	}

	l := layout.NewLabeler(r, opts)
	w, h := vg.Length(cfg.Width), vg.Length(cfg.Height)
	if filename != "" {
		return r.Save(w, h, filename, l)
	}
	c, err := draw.NewFormattedCanvas(w, h, "png")
	if err != nil {
		return nil, err
	}
	return r.Draw(draw.New(c), l), nil
}

func goChartFont(name string) (*truetype.Font, error) {
	switch name {
	case FontDefault:
		return nil, nil
	case FontLatinModern:
		return truetype.Parse(lmroman10bold.TTF)
	}
	return renderers.LoadFont(name)
}

func goChartEngine(cfg Config, ds Dataset, opts layout.Options, filename string) ([]layout.Label, error) {
	fnt, err := goChartFont(cfg.Font)
	if err != nil {
		return nil, err
	}

	r := renderers.NewGoChart(opts)
	r.Font = fnt
	for i, name := range ds.Names {
		xs, ys := ds.XYs(i)
		if err := r.AddSeries(name, xs, ys); err != nil {
			return nil, err
		}
	}

	c := &chart.Chart{
		Title:  cfg.Title,
		Width:  int(cfg.Width),
		Height: int(cfg.Height),
		Font:   fnt,
	}
	r.Apply(c)
	if filename != "" {
		err = r.Save(c, filename)
	} else {
		err = c.Render(chart.PNG, io.Discard)
	}
	if err != nil {
		return nil, err
	}
	return r.Labels(), nil
}
