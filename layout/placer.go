package layout

import (
	"fmt"

	"github.com/tdewolff/labels"
)

// Strategy tells which search found a label's position.
type Strategy int

// see Strategy
const (
	None     Strategy = iota // no position found
	Above                    // centered above a point of the series
	Below                    // centered below a point of the series
	Grid                     // exhaustive search over the plot area
	Previous                 // position of the previous pass
)

func (s Strategy) String() string {
	switch s {
	case None:
		return "none"
	case Above:
		return "above"
	case Below:
		return "below"
	case Grid:
		return "grid"
	case Previous:
		return "previous"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Place finds the top-left position for a label of size box belonging to the series with the given points. It first tries positions centered above and then below each point, going from the last point back to the second. If none is clear, it tries every position of a GridStep spaced grid over the plot area and picks the clear candidate with the smallest clearance. It returns false if no position is clear.
func (ctx *Context) Place(points []labels.Point, box labels.Size) (Candidate, Strategy, bool) {
	if c, s, ok := ctx.placeNear(points, box); ok {
		return c, s, true
	}
	if c, ok := ctx.placeGrid(box); ok {
		return c, Grid, true
	}
	return Candidate{}, None, false
}

func (ctx *Context) placeNear(points []labels.Point, box labels.Size) (Candidate, Strategy, bool) {
	for i := len(points) - 1; 0 < i; i-- {
		x := points[i].X - box.W/2.0
		if ctx.plot.W-box.W < x {
			continue
		}

		if y := points[i].Y - box.H - ctx.Grain; 0.0 <= y {
			if c, ok := ctx.CheckClearPoint(x, y, box); ok {
				return c, Above, true
			}
		}
		if y := points[i].Y + ctx.Grain; y <= ctx.plot.H-box.H {
			if c, ok := ctx.CheckClearPoint(x, y, box); ok {
				return c, Below, true
			}
		}
	}
	return Candidate{}, None, false
}

// placeGrid scans x from right to left and y from top to bottom. Among equal clearances the first candidate wins.
func (ctx *Context) placeGrid(box labels.Size) (Candidate, bool) {
	best, found := Candidate{}, false
	for x := ctx.plot.W - box.W; 0.0 <= x; x -= ctx.GridStep {
		for y := 0.0; y < ctx.plot.H-box.H; y += ctx.GridStep {
			if c, ok := ctx.CheckClearPoint(x, y, box); ok && (!found || c.Clearance < best.Clearance) {
				best, found = c, true
			}
		}
	}
	return best, found
}
