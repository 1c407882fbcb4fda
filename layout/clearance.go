package layout

import (
	"fmt"

	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/kdtree"
)

// Candidate is a proposed top-left position for a label. Clearance is the smallest distance between any sampled point of the label box and the points to avoid.
type Candidate struct {
	X, Y      float64
	Clearance float64
}

// Pos returns the position of the candidate.
func (c Candidate) Pos() labels.Point {
	return labels.Point{c.X, c.Y}
}

func (c Candidate) String() string {
	return fmt.Sprintf("(%g,%g) clearance=%g", c.X, c.Y, c.Clearance)
}

// steps calls f for 0, step, 2*step, ... and finally length itself, stopping early when f returns false.
func steps(length, step float64, f func(float64) bool) bool {
	if !(0.0 < length) {
		return f(0.0)
	}
	for v := 0.0; ; v += step {
		if length < v {
			v = length
		}
		if !f(v) {
			return false
		} else if length <= v {
			return true
		}
	}
}

// CheckClearPoint samples the box with its top-left corner at (x,y) on a grid of Grain spacing, including its right and bottom edges. It rejects the position as soon as a sample lies closer than Grain to a point to avoid. Otherwise it returns the candidate with its clearance. Without points to avoid every position is clear with a clearance of kdtree.Sentinel.
func (ctx *Context) CheckClearPoint(x, y float64, box labels.Size) (Candidate, bool) {
	c := Candidate{x, y, kdtree.Sentinel}
	if ctx.tree.Len() == 0 {
		return c, true
	}

	ok := steps(box.W, ctx.Grain, func(labelX float64) bool {
		return steps(box.H, ctx.Grain, func(labelY float64) bool {
			r, _ := ctx.tree.Nearest(labels.Point{x + labelX, y + labelY})
			if r.Dist.R < ctx.Grain {
				return false
			} else if r.Dist.R < c.Clearance {
				c.Clearance = r.Dist.R
			}
			return true
		})
	})
	return c, ok
}
