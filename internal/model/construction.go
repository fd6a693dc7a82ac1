package model

import (
	"fmt"
	"math"
)

// Point is an immutable 2-D coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the distance of p from the origin.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return q.Sub(p).Len()
}

// Polar returns the point at distance r from the origin in direction theta (radians).
func Polar(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Construction holds the vertices of the triangle ABC and the interior
// point M joined to all three of them.
type Construction struct {
	A Point `json:"A" yaml:"A"`
	B Point `json:"B" yaml:"B"`
	C Point `json:"C" yaml:"C"`
	M Point `json:"M" yaml:"M"`
}

// Points returns the four points in the order A, B, C, M.
func (c Construction) Points() [4]Point {
	return [4]Point{c.A, c.B, c.C, c.M}
}

// Centroid returns the centroid of the outer triangle ABC.
func (c Construction) Centroid() Point {
	return c.A.Add(c.B).Add(c.C).Scale(1.0 / 3)
}

// Bounds returns the axis-aligned bounding box of all four points.
func (c Construction) Bounds() (lo, hi Point) {
	pts := c.Points()
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// AngleAt returns the unsigned angle, in degrees, between the rays
// vertex→p and vertex→q.
func (c Construction) AngleAt(vertex, p, q Point) float64 {
	u := p.Sub(vertex)
	w := q.Sub(vertex)
	cross := u.X*w.Y - u.Y*w.X
	dot := u.X*w.X + u.Y*w.Y
	return RadToDeg(math.Abs(math.Atan2(cross, dot)))
}

// String lists the four points.
func (c Construction) String() string {
	return fmt.Sprintf("A=%s B=%s C=%s M=%s", c.A, c.B, c.C, c.M)
}
