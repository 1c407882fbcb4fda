package labels

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing coordinates.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in the plot area. X grows to the right and Y grows downwards, with the origin at the top-left corner of the plot area.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Size is the width and height of a label's bounding box.
type Size struct {
	W, H float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its top-left corner at (X,Y).
type Rect struct {
	X, Y, W, H float64
}

// RectAt returns the rectangle of size s with its top-left corner at p.
func RectAt(p Point, s Size) Rect {
	return Rect{p.X, p.Y, s.W, s.H}
}

// Move translates the rectangle by p.
func (r Rect) Move(p Point) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Add returns the smallest rectangle containing both R and Q. Empty rectangles are ignored.
func (r Rect) Add(q Rect) Rect {
	if q.W == 0.0 || q.H == 0 {
		return r
	} else if r.W == 0.0 || r.H == 0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// ContainsPoint returns true if p lies inside or on the boundary of R.
func (r Rect) ContainsPoint(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Contains returns true if Q lies completely inside R.
func (r Rect) Contains(q Rect) bool {
	return r.X <= q.X && q.X+q.W <= r.X+r.W && r.Y <= q.Y && q.Y+q.H <= r.Y+r.H
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X, r.Y, r.X+r.W, r.Y+r.H)
}
