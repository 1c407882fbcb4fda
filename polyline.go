package labels

import "math"

// DefaultGrain is the default spacing used when densifying series and sampling label boxes, in plot units.
const DefaultGrain = 8.0

// Polyline is the ordered list of projected points of a single series.
type Polyline struct {
	coords []Point
}

// PolylineFromCoords returns a polyline over the given points. The slice is not copied.
func PolylineFromCoords(coords []Point) *Polyline {
	return &Polyline{coords}
}

// Empty returns true if the polyline has no points.
func (p *Polyline) Empty() bool {
	return len(p.coords) == 0
}

// Len returns the number of points.
func (p *Polyline) Len() int {
	return len(p.coords)
}

// Add adds a new point to the polyline.
func (p *Polyline) Add(x, y float64) *Polyline {
	p.coords = append(p.coords, Point{x, y})
	return p
}

// Coords returns the list of coordinates of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}

// Bounds returns the bounding rectangle of all points.
func (p *Polyline) Bounds() Rect {
	if len(p.coords) == 0 {
		return Rect{}
	}
	x0, y0 := p.coords[0].X, p.coords[0].Y
	x1, y1 := x0, y0
	for _, coord := range p.coords[1:] {
		x0 = math.Min(x0, coord.X)
		y0 = math.Min(y0, coord.Y)
		x1 = math.Max(x1, coord.X)
		y1 = math.Max(y1, coord.Y)
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// PointsToAvoid returns the points of the polyline together with interpolated points along every segment that is longer than grain, see PointsToAvoid.
func (p *Polyline) PointsToAvoid(grain float64) []Point {
	return PointsToAvoid(p.coords, grain)
}

// PointsToAvoid densifies an ordered list of points so that straight segments between distant points are represented as well. For every segment whose largest axis delta exceeds grain, ceil(delta/grain)-1 evenly spaced points are inserted between its end points. The first point is returned once, every following point is preceded by the points interpolated towards it.
func PointsToAvoid(points []Point, grain float64) []Point {
	if len(points) == 0 {
		return nil
	}

	avoid := make([]Point, 0, len(points))
	avoid = append(avoid, points[0])
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		delta := math.Max(math.Abs(cur.X-prev.X), math.Abs(cur.Y-prev.Y))
		if grain < delta {
			n := math.Ceil(delta / grain)
			for j := 1.0; j < n; j++ {
				avoid = append(avoid, prev.Interpolate(cur, j/n))
			}
		}
		avoid = append(avoid, cur)
	}
	return avoid
}
