package kdtree

import (
	"fmt"
	"math"

	"github.com/tdewolff/labels"
)

// Sentinel is reported as the distance along an axis whose squared delta is exactly zero, and as the radial distance between coincident points.
const Sentinel = math.MaxFloat64

// Axis is a coordinate axis of the plot area.
type Axis int

// see Axis
const (
	X Axis = iota
	Y
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// coord returns the coordinate of p along axis a.
func coord(p labels.Point, a Axis) float64 {
	if a == Y {
		return p.Y
	}
	return p.X
}

////////////////////////////////////////////////////////////////

// Metric selects which distance is compared when searching the tree.
type Metric int

// see Metric
const (
	Radial Metric = iota
	Horizontal
	Vertical
)

// ParseMetric parses the names returned by Metric.String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "radial", "":
		return Radial, nil
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Radial, fmt.Errorf("unknown distance metric %q", s)
}

func (m Metric) String() string {
	switch m {
	case Radial:
		return "radial"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// bound returns a lower bound of the metric's distance to any point lying on the other side of a splitting plane orthogonal to axis at signed distance tdist. A bound of zero means the other side can never be pruned.
func (m Metric) bound(axis Axis, tdist float64) float64 {
	switch m {
	case Horizontal:
		if axis != X {
			return 0.0
		}
	case Vertical:
		if axis != Y {
			return 0.0
		}
	}
	return math.Abs(tdist)
}

////////////////////////////////////////////////////////////////

// Distance holds the distances between two points along each axis and radially.
type Distance struct {
	X, Y, R float64
}

// Dist returns the distance between p and q. Axes along which p and q coincide exactly report Sentinel instead of zero, so that they never become the minimum of a horizontal or vertical search. The radial distance is the Euclidean distance, or Sentinel for coincident points.
func Dist(p, q labels.Point) Distance {
	dx := (p.X - q.X) * (p.X - q.X)
	dy := (p.Y - q.Y) * (p.Y - q.Y)

	d := Distance{Sentinel, Sentinel, Sentinel}
	if dx != 0.0 {
		d.X = math.Sqrt(dx)
	}
	if dy != 0.0 {
		d.Y = math.Sqrt(dy)
	}
	if r := dx + dy; r != 0.0 {
		d.R = math.Sqrt(r)
	}
	return d
}

// Get returns the distance used by metric m.
func (d Distance) Get(m Metric) float64 {
	switch m {
	case Horizontal:
		return d.X
	case Vertical:
		return d.Y
	}
	return d.R
}

func (d Distance) String() string {
	return fmt.Sprintf("Distance{X: %g, Y: %g, R: %g}", d.X, d.Y, d.R)
}
