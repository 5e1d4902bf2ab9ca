// Package geom provides the 2D primitives used by the unfolding engine.
//
// All coordinates are in model-scale inches unless a caller states
// otherwise. The types are plain values; operations return new values and
// never mutate their receivers.
package geom

import "math"

// Point is a 2D coordinate or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Length returns the Euclidean length of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Normal returns the perpendicular of p normalized to unit length:
// (-y, x)/|p| — the left of the direction of travel. Panel polygons are
// wound so that this faces outward on every edge.
// Returns the zero point when |p| is zero.
func (p Point) Normal() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{-p.Y / l, p.X / l}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// BoundsOf computes the tight bounding box of pts.
// Returns a zero Bounds for an empty slice.
func BoundsOf(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Area returns the signed area of the polygon pts via the shoelace
// formula. Positive for counterclockwise winding.
func Area(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
