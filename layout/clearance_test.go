package layout

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/kdtree"
	"github.com/tdewolff/test"
)

func collectSteps(length, step float64) []float64 {
	vs := []float64{}
	steps(length, step, func(v float64) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

func TestSteps(t *testing.T) {
	test.T(t, collectSteps(20, 8), []float64{0, 8, 16, 20})
	test.T(t, collectSteps(16, 8), []float64{0, 8, 16})
	test.T(t, collectSteps(5, 8), []float64{0, 5})
	test.T(t, collectSteps(0, 8), []float64{0})
	test.T(t, collectSteps(-3, 8), []float64{0})
	test.T(t, collectSteps(math.NaN(), 8), []float64{0})

	n := 0
	test.That(t, !steps(100, 8, func(float64) bool {
		n++
		return n < 3
	}))
	test.T(t, n, 3)
}

func TestCheckClearPoint(t *testing.T) {
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{{{0, 0}}, {{100, 0}}}, DefaultOptions)
	test.T(t, len(ctx.PointsToAvoid()), 2)
	box := labels.Size{20, 10}

	c, ok := ctx.CheckClearPoint(50, 50, box)
	test.That(t, ok)
	test.T(t, c.Pos(), labels.Point{50, 50})
	test.That(t, 8.0 <= c.Clearance)
	test.Float(t, c.Clearance, math.Sqrt(30*30+50*50)) // sample (70,50) to (100,0)

	_, ok = ctx.CheckClearPoint(2, 2, box)
	test.That(t, !ok)
}

func TestCheckClearPointEdges(t *testing.T) {
	box := labels.Size{20, 10}

	// only the right edge at x=20 comes within reach of the point
	ctx := NewContext(labels.Size{200, 200}, [][]labels.Point{{{27, 5}}}, DefaultOptions)
	_, ok := ctx.CheckClearPoint(0, 0, box)
	test.That(t, !ok)

	ctx = NewContext(labels.Size{200, 200}, [][]labels.Point{{{29, 5}}}, DefaultOptions)
	c, ok := ctx.CheckClearPoint(0, 0, box)
	test.That(t, ok)
	test.Float(t, c.Clearance, math.Sqrt(9*9+3*3)) // sample (20,8)

	// bottom edge at y=10
	ctx = NewContext(labels.Size{200, 200}, [][]labels.Point{{{8, 17}}}, DefaultOptions)
	_, ok = ctx.CheckClearPoint(0, 0, box)
	test.That(t, !ok)
}

func TestCheckClearPointEmpty(t *testing.T) {
	ctx := NewContext(labels.Size{100, 100}, nil, Options{})
	c, ok := ctx.CheckClearPoint(10, 20, labels.Size{30, 10})
	test.That(t, ok)
	test.T(t, c, Candidate{10, 20, kdtree.Sentinel})
}

func TestCheckClearPointMonotone(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	box := labels.Size{24, 12}
	for k := 0; k < 20; k++ {
		series := make([][]labels.Point, 3)
		for i := range series {
			for j := 0; j < 10; j++ {
				series[i] = append(series[i], labels.Point{rng.Float64() * 100.0, rng.Float64() * 100.0})
			}
		}
		ctx := NewContext(labels.Size{500, 500}, series, DefaultOptions)

		// moving right and down only increases the distance to every point in [0,100]x[0,100]
		y0 := 100.0 + rng.Float64()*50.0
		passed := false
		prev := 0.0
		for x := 100.0; x < 200.0; x += 1.0 {
			c, ok := ctx.CheckClearPoint(x, y0+(x-100.0)*0.5, box)
			test.That(t, ok || !passed, "rejected after passing at", x)
			if ok {
				test.That(t, prev <= c.Clearance, "clearance decreased at", x)
				passed, prev = true, c.Clearance
			}
		}
		test.That(t, passed)
	}
}
