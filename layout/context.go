// Package layout places series labels in a plot area, keeping them clear of the plotted lines.
package layout

import (
	"github.com/tdewolff/labels"
	"github.com/tdewolff/labels/kdtree"
)

// Context holds the state of a single layout pass: the plot area, the points every label must avoid and the index over them. Create a new context for every pass, it is never updated.
type Context struct {
	Options

	plot  labels.Size
	avoid []labels.Point
	tree  *kdtree.Tree
}

// NewContext densifies the points of all series into one set of points to avoid and indexes them. Points are in plot coordinates with the origin at the top-left of a plot area of size plot.
func NewContext(plot labels.Size, series [][]labels.Point, opts Options) *Context {
	opts = opts.withDefaults()

	n := 0
	for _, points := range series {
		n += len(points)
	}
	avoid := make([]labels.Point, 0, n)
	for _, points := range series {
		avoid = append(avoid, labels.PointsToAvoid(points, opts.Grain)...)
	}

	return &Context{
		Options: opts,
		plot:    plot,
		avoid:   avoid,
		tree: kdtree.Build(avoid, kdtree.Options{
			Axes:   opts.Axes,
			Metric: opts.Metric,
		}),
	}
}

// Plot returns the size of the plot area.
func (ctx *Context) Plot() labels.Size {
	return ctx.plot
}

// PointsToAvoid returns the densified points of all series.
func (ctx *Context) PointsToAvoid() []labels.Point {
	return ctx.avoid
}

// Tree returns the index over the points to avoid.
func (ctx *Context) Tree() *kdtree.Tree {
	return ctx.tree
}

// HitTest returns the avoided point nearest to a pointer position given in chart coordinates.
func (ctx *Context) HitTest(proj Projection, chartX, chartY float64) (kdtree.Result, bool) {
	return ctx.tree.Nearest(proj.ToPlot(chartX, chartY))
}
