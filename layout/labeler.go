package layout

import (
	"math"

	"github.com/tdewolff/labels"
)

// Measurer returns the size of a label's bounding box in plot units.
type Measurer interface {
	Measure(text string) labels.Size
}

// MeasurerFunc is a function that implements Measurer.
type MeasurerFunc func(string) labels.Size

// Measure calls f(text).
func (f MeasurerFunc) Measure(text string) labels.Size {
	return f(text)
}

// Series is a named series with its points projected into plot coordinates.
type Series struct {
	Name   string
	Points []labels.Point
}

// Label is the placement of a series' name.
type Label struct {
	Series    string
	Box       labels.Size
	Pos       labels.Point // top-left corner
	Clearance float64
	Strategy  Strategy
}

// Placed returns true if the label has a position.
func (l Label) Placed() bool {
	return l.Strategy != None
}

// Rect returns the bounding box of the label at its position.
func (l Label) Rect() labels.Rect {
	return labels.RectAt(l.Pos, l.Box)
}

// Labeler places the names of series next to their lines. Call Label after every (re)draw of the plot, when the projected points are known. A Labeler with KeepPrevious set remembers positions between passes and must not be used concurrently.
type Labeler struct {
	opts     Options
	measurer Measurer
	prev     map[string]labels.Point
}

// NewLabeler returns a labeler that measures label text with m.
func NewLabeler(m Measurer, opts Options) *Labeler {
	return &Labeler{
		opts:     opts.withDefaults(),
		measurer: m,
		prev:     map[string]labels.Point{},
	}
}

// Options returns the options of the labeler, with defaults filled in.
func (l *Labeler) Options() Options {
	return l.opts
}

// Reset forgets the positions of previous passes.
func (l *Labeler) Reset() {
	l.prev = map[string]labels.Point{}
}

// Label runs a layout pass over all series for a plot area of the given size and returns one label per series, in order. Labels for which no clear position exists are not Placed, unless KeepPrevious is set and an earlier pass placed them.
func (l *Labeler) Label(plot labels.Size, series []Series) []Label {
	points := make([][]labels.Point, len(series))
	for i, s := range series {
		points[i] = s.Points
	}
	ctx := NewContext(plot, points, l.opts)

	log := l.opts.Logger
	log.V(2).Info("layout pass", "series", len(series), "avoid", len(ctx.PointsToAvoid()), "depth", ctx.Tree().Depth(), "plot", plot)

	out := make([]Label, 0, len(series))
	for _, s := range series {
		box := l.measurer.Measure(s.Name)
		box.W = math.Round(box.W)

		label := Label{
			Series: s.Name,
			Box:    box,
		}
		if c, strategy, ok := ctx.Place(s.Points, box); ok {
			label.Pos = c.Pos()
			label.Clearance = c.Clearance
			label.Strategy = strategy
			if l.opts.KeepPrevious {
				l.prev[s.Name] = label.Pos
			}
			log.V(1).Info("placed label", "series", s.Name, "strategy", strategy, "x", c.X, "y", c.Y, "clearance", c.Clearance)
		} else if pos, ok := l.prev[s.Name]; ok && l.opts.KeepPrevious {
			label.Pos = pos
			label.Strategy = Previous
			log.V(1).Info("no clear position, keeping previous", "series", s.Name, "x", pos.X, "y", pos.Y)
		} else {
			log.V(1).Info("no clear position", "series", s.Name, "box", box)
		}
		out = append(out, label)
	}
	return out
}
