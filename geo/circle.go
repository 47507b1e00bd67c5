package geo

import "math"

// Circle is a geodesic disk: a center point plus a radius in meters.
//
// The radius carries three sentinel meanings in addition to an ordinary
// positive value: negative infinity denotes the empty set, positive zero
// denotes a single point, and positive infinity denotes the entire
// surface of the earth.
type Circle struct {
	center Point
	radius float64
}

// NewCircle constructs a circle from a center and radius in meters.
// A negative, finite radius is normalized to the empty circle with a
// Notice diagnostic. NaN is an error.
func NewCircle(center Point, radius float64) (Circle, []Diagnostic, error) {
	if math.IsNaN(radius) {
		return Circle{}, nil, &ErrInvalidRadius{Radius: radius}
	}
	var diags []Diagnostic
	if radius < 0 && !math.IsInf(radius, -1) {
		diags = append(diags, Diagnostic{SeverityNotice, "negative radius collapsed to empty circle"})
		radius = math.Inf(-1)
	}
	return Circle{center: center, radius: radius}, diags, nil
}

// EmptyCircle returns the canonical empty circle.
func EmptyCircle() Circle {
	return Circle{radius: math.Inf(-1)}
}

// UniversalCircle returns a circle covering the entire earth.
func UniversalCircle() Circle {
	return Circle{radius: math.Inf(1)}
}

// Center returns the circle's center point.
func (c Circle) Center() Point { return c.center }

// Radius returns the circle's radius in meters, or -Inf/+Inf for the
// empty/universal sentinels.
func (c Circle) Radius() float64 { return c.radius }

// IsEmpty reports whether the circle denotes the empty set.
func (c Circle) IsEmpty() bool { return math.IsInf(c.radius, -1) }

// IsUniversal reports whether the circle covers the entire earth.
func (c Circle) IsUniversal() bool { return math.IsInf(c.radius, 1) }

// Contains reports whether p lies within the circle.
func (c Circle) Contains(p Point) bool {
	if c.IsEmpty() {
		return false
	}
	if c.IsUniversal() {
		return true
	}
	return c.center.DistanceTo(p) <= c.radius
}

// Overlaps reports whether two circles share at least one point.
func (c Circle) Overlaps(other Circle) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	if c.IsUniversal() || other.IsUniversal() {
		return true
	}
	return c.center.DistanceTo(other.center) <= c.radius+other.radius
}

// DistanceTo returns the distance from p to the nearest point of the
// circle's disk: 0 if p is inside, otherwise the distance to the
// boundary.
func (c Circle) DistanceTo(p Point) float64 {
	if c.IsUniversal() {
		return 0
	}
	if c.IsEmpty() {
		return math.Inf(1)
	}
	d := c.center.DistanceTo(p) - c.radius
	if d < 0 {
		return 0
	}
	return d
}
