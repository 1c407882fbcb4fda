package labels

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.Float(t, p.Length(), 5.0)
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.That(t, p.Equals(Point{3, 4 + 1e-12}))
	test.That(t, !p.Equals(Point{3, 4.001}))
	test.String(t, p.String(), "(3,4)")
}

func TestRect(t *testing.T) {
	r := Rect{0, 0, 5, 5}
	test.T(t, RectAt(Point{1, 2}, Size{3, 4}), Rect{1, 2, 3, 4})
	test.T(t, r.Move(Point{3, 3}), Rect{3, 3, 5, 5})
	test.T(t, r.Add(Rect{5, 5, 5, 5}), Rect{0, 0, 10, 10})
	test.T(t, r.Add(Rect{5, 5, 0, 5}), r)
	test.T(t, Rect{5, 5, 0, 5}.Add(r), r)
	test.That(t, r.ContainsPoint(Point{5, 0}))
	test.That(t, !r.ContainsPoint(Point{5.1, 0}))
	test.That(t, r.Contains(Rect{1, 1, 4, 4}))
	test.That(t, !r.Contains(Rect{1, 1, 4, 5}))
	test.String(t, r.String(), "(0,0)-(5,5)")
	test.String(t, Size{20, 10}.String(), "20x10")
}
