package layout

import (
	"testing"

	"github.com/tdewolff/labels"
	"github.com/tdewolff/test"
)

func line(y float64, xs ...float64) []labels.Point {
	points := []labels.Point{}
	for _, x := range xs {
		points = append(points, labels.Point{x, y})
	}
	return points
}

// stripes returns horizontal lines every 10 units over a 200x200 plot. Lines from y=140 downwards start at x=60, leaving the bottom-left corner clear.
func stripes() [][]labels.Point {
	series := [][]labels.Point{}
	for y := 0.0; y <= 200.0; y += 10.0 {
		if y < 140.0 {
			series = append(series, line(y, 0, 200))
		} else {
			series = append(series, line(y, 60, 200))
		}
	}
	return series
}

func TestPlaceAbove(t *testing.T) {
	series := line(100, 0, 50, 100)
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{series}, DefaultOptions)
	c, s, ok := ctx.Place(series, labels.Size{20, 10})
	test.That(t, ok)
	test.T(t, s, Above)
	test.T(t, c.Pos(), labels.Point{90, 82})
	test.That(t, 8.0 <= c.Clearance)
}

func TestPlaceBelow(t *testing.T) {
	// no room above the line
	series := line(5, 0, 50, 100)
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{series}, DefaultOptions)
	c, s, ok := ctx.Place(series, labels.Size{20, 10})
	test.That(t, ok)
	test.T(t, s, Below)
	test.T(t, c.Pos(), labels.Point{90, 13})
}

func TestPlaceRightEdge(t *testing.T) {
	// the last point is too close to the right edge
	series := line(100, 0, 50, 100)
	ctx := NewContext(labels.Size{105, 200}, [][]labels.Point{series}, DefaultOptions)
	c, s, ok := ctx.Place(series, labels.Size{20, 10})
	test.That(t, ok)
	test.T(t, s, Above)
	test.T(t, c.Pos(), labels.Point{40, 82})
}

func TestPlaceSkipsFirstPoint(t *testing.T) {
	// a single point is never used as an anchor, only the grid search remains
	series := line(100, 100)
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{series}, DefaultOptions)
	_, s, ok := ctx.Place(series, labels.Size{20, 10})
	test.That(t, ok)
	test.T(t, s, Grid)
}

func TestPlaceBlockedAbove(t *testing.T) {
	// another series runs right above the last point
	series := line(100, 0, 50, 100)
	other := line(85, 60, 140)
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{series, other}, DefaultOptions)
	c, s, ok := ctx.Place(series, labels.Size{20, 10})
	test.That(t, ok)
	test.T(t, s, Below)
	test.T(t, c.Pos(), labels.Point{90, 108})
}

func TestPlaceGrid(t *testing.T) {
	series := stripes()
	ctx := NewContext(labels.Size{200, 200}, series, DefaultOptions)
	box := labels.Size{20, 10}

	// every anchor lies on the right edge, so the heuristics have nothing to try
	_, _, ok := ctx.placeNear(series[len(series)-1], box)
	test.That(t, !ok)

	c, s, ok := ctx.Place(series[len(series)-1], box)
	test.That(t, ok)
	test.T(t, s, Grid)

	// inside the clear corner, on the row closest to the full-width lines
	test.That(t, c.X == 4.0 || c.X == 20.0, c)
	test.Float(t, c.Y, 144.0)
	test.That(t, c.X+box.W <= 60.0-8.0, c)
	test.Float(t, c.Clearance, 14.0)

	// the chosen candidate has the smallest clearance of all grid candidates
	for x := 200.0 - box.W; 0.0 <= x; x -= 16.0 {
		for y := 0.0; y < 200.0-box.H; y += 16.0 {
			if d, ok := ctx.CheckClearPoint(x, y, box); ok {
				test.That(t, 140.0 <= d.Y && d.X+box.W <= 60.0, d)
				test.That(t, c.Clearance <= d.Clearance, d)
			}
		}
	}
}

func TestPlaceNone(t *testing.T) {
	series := [][]labels.Point{}
	for y := 0.0; y <= 200.0; y += 10.0 {
		series = append(series, line(y, 0, 200))
	}
	ctx := NewContext(labels.Size{200, 200}, series, DefaultOptions)
	c, s, ok := ctx.Place(series[3], labels.Size{20, 10})
	test.That(t, !ok)
	test.T(t, s, None)
	test.T(t, c, Candidate{})
}

func TestStrategy(t *testing.T) {
	test.String(t, Above.String(), "above")
	test.String(t, Grid.String(), "grid")
	test.String(t, Previous.String(), "previous")
	test.String(t, Strategy(9).String(), "Strategy(9)")
}
