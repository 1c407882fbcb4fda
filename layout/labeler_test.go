package layout

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/tdewolff/labels"
	"github.com/tdewolff/test"
)

func fixedSize(w, h float64) Measurer {
	return MeasurerFunc(func(string) labels.Size {
		return labels.Size{w, h}
	})
}

func TestLabeler(t *testing.T) {
	lines := []string{}
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	l := NewLabeler(fixedSize(19.6, 10), Options{Logger: logger})
	test.Float(t, l.Options().Grain, 8.0)
	test.Float(t, l.Options().GridStep, 16.0)

	ls := l.Label(labels.Size{200, 200}, []Series{
		{"high", line(100, 0, 50, 100)},
		{"low", line(5, 0, 50, 100)},
	})
	test.T(t, len(ls), 2)

	test.String(t, ls[0].Series, "high")
	test.T(t, ls[0].Box, labels.Size{20, 10})
	test.T(t, ls[0].Strategy, Above)
	test.T(t, ls[0].Pos, labels.Point{90, 82})
	test.T(t, ls[0].Rect(), labels.Rect{90, 82, 20, 10})
	test.That(t, ls[0].Placed())

	test.String(t, ls[1].Series, "low")
	test.T(t, ls[1].Strategy, Below)
	test.T(t, ls[1].Pos, labels.Point{90, 13})

	test.T(t, len(lines), 3)
}

func TestLabelerNone(t *testing.T) {
	series := []Series{}
	for y := 0.0; y <= 200.0; y += 10.0 {
		series = append(series, Series{"stripe", line(y, 0, 200)})
	}

	l := NewLabeler(fixedSize(20, 10), DefaultOptions)
	ls := l.Label(labels.Size{200, 200}, series[:1])
	test.That(t, ls[0].Placed())

	ls = l.Label(labels.Size{200, 200}, series)
	test.That(t, !ls[0].Placed())
	test.T(t, ls[0].Pos, labels.Point{})
}

func TestLabelerKeepPrevious(t *testing.T) {
	series := []Series{}
	for y := 0.0; y <= 200.0; y += 10.0 {
		series = append(series, Series{"stripe", line(y, 0, 200)})
	}

	l := NewLabeler(fixedSize(20, 10), Options{KeepPrevious: true})
	ls := l.Label(labels.Size{200, 200}, []Series{{"stripe", line(100, 0, 100)}})
	test.T(t, ls[0].Strategy, Above)

	ls = l.Label(labels.Size{200, 200}, series[:1])
	test.T(t, ls[0].Strategy, Grid)
	pos := ls[0].Pos

	ls = l.Label(labels.Size{200, 200}, series)
	test.T(t, ls[0].Strategy, Previous)
	test.T(t, ls[0].Pos, pos)

	l.Reset()
	ls = l.Label(labels.Size{200, 200}, series)
	test.T(t, ls[0].Strategy, None)
}

func TestProjection(t *testing.T) {
	proj := PlotProjection(10, 20, 300, 200, false)
	test.T(t, proj.ToPlot(15, 30), labels.Point{5, 10})

	proj = PlotProjection(10, 20, 300, 200, true)
	test.T(t, proj, Projection{20, 200, 10, 300, true})
	test.T(t, proj.ToPlot(15, 30), labels.Point{190, 295})
}

func TestHitTest(t *testing.T) {
	ctx := NewContext(labels.Size{300, 200}, [][]labels.Point{line(50, 0, 100), line(150, 0, 100)}, DefaultOptions)
	proj := PlotProjection(10, 20, 300, 200, false)

	r, ok := ctx.HitTest(proj, 40, 75)
	test.That(t, ok)
	test.Float(t, r.Point.Y, 50.0)
	test.That(t, r.Dist.R < 8.0)

	r, _ = ctx.HitTest(proj, 40, 160)
	test.Float(t, r.Point.Y, 150.0)

	_, ok = NewContext(labels.Size{300, 200}, nil, DefaultOptions).HitTest(proj, 40, 75)
	test.That(t, !ok)
}
