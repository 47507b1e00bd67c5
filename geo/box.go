package geo

import "math"

// Box is an axis-aligned latitude/longitude rectangle. A box with
// lat_min > lat_max is empty. A non-empty box with lon_min > lon_max
// crosses the 180th meridian; the longitude range it covers is the
// complement of (lon_max, lon_min).
type Box struct {
	latMin, latMax float64
	lonMin, lonMax float64
}

// NewBox constructs a Box from two corner points, taking the min/max of
// each latitude pair so argument order does not matter.
//
// Longitude is not simply min/max. If either longitude is an explicit
// over-range value (beyond +-180, as FormatBox emits for the second
// corner of a crossing box so the printed pair round-trips), the caller's
// argument order is trusted verbatim: lon1 is lon_min, lon2 is lon_max,
// each wrapped back into range. Otherwise a box whose corners span 240
// degrees of longitude or more is assumed to cross the 180th meridian,
// and its min/max are swapped so CrossesAntimeridian reports true; a span
// strictly between 120 and 240 degrees is ambiguous and rejected, and a
// span of at most 120 degrees is taken as a non-crossing box.
func NewBox(lat1, lon1, lat2, lon2 float64) (Box, error) {
	if isInvalidCoord(lat1) || isInvalidCoord(lon1) || isInvalidCoord(lat2) || isInvalidCoord(lon2) {
		return Box{}, &ErrInvalidCoordinate{Lat: lat1, Lon: lon1}
	}
	latMin, latMax := lat1, lat2
	if latMin > latMax {
		latMin, latMax = latMax, latMin
	}

	var lonMin, lonMax float64
	if math.Abs(lon1) > 180 || math.Abs(lon2) > 180 {
		lonMin, lonMax = wrapLongitude(lon1), wrapLongitude(lon2)
	} else {
		lonMin, lonMax = lon1, lon2
		if lonMin > lonMax {
			lonMin, lonMax = lonMax, lonMin
		}
		dlon := round12(lonMax - lonMin)
		switch {
		case dlon >= 240:
			lonMin, lonMax = lonMax, lonMin
		case dlon > 120:
			return Box{}, &ErrAmbiguousBox{SpanDeg: dlon}
		}
	}

	b := Box{latMin: round12(latMin), latMax: round12(latMax), lonMin: round12(lonMin), lonMax: round12(lonMax)}
	if !b.CrossesAntimeridian() && b.lonMax-b.lonMin == 360 {
		b.lonMin, b.lonMax = -180, 180
	}
	return b, nil
}

// EmptyBox returns the canonical empty box.
func EmptyBox() Box {
	return Box{latMin: 1, latMax: 0}
}

// IsEmpty reports whether the box denotes the empty set.
func (b Box) IsEmpty() bool {
	return b.latMin > b.latMax
}

// CrossesAntimeridian reports whether the box wraps across the 180th
// meridian.
func (b Box) CrossesAntimeridian() bool {
	return !b.IsEmpty() && b.lonMin > b.lonMax
}

// LatMin, LatMax, LonMin, LonMax return the box's raw corner fields.
func (b Box) LatMin() float64 { return b.latMin }
func (b Box) LatMax() float64 { return b.latMax }
func (b Box) LonMin() float64 { return b.lonMin }
func (b Box) LonMax() float64 { return b.lonMax }

// Contains reports whether p lies within the box (inclusive of edges).
func (b Box) Contains(p Point) bool {
	if b.IsEmpty() {
		return false
	}
	if p.lat < b.latMin || p.lat > b.latMax {
		return false
	}
	if b.CrossesAntimeridian() {
		return p.lon >= b.lonMin || p.lon <= b.lonMax
	}
	return p.lon >= b.lonMin && p.lon <= b.lonMax
}

// lonIntervalsOverlap reports whether two longitude intervals (each
// possibly wrapping) share at least one point.
func lonIntervalsOverlap(aMin, aMax, bMin, bMax float64) bool {
	aWraps := aMin > aMax
	bWraps := bMin > bMax

	switch {
	case !aWraps && !bWraps:
		return aMin <= bMax && bMin <= aMax
	case aWraps && !bWraps:
		return bMax >= aMin || bMin <= aMax
	case !aWraps && bWraps:
		return aMax >= bMin || aMin <= bMax
	default:
		// Both wrap: both cover the antimeridian, so they always overlap there.
		return true
	}
}

// Overlaps reports whether the two boxes share at least one point.
func (b Box) Overlaps(other Box) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	if b.latMax < other.latMin || other.latMax < b.latMin {
		return false
	}
	return lonIntervalsOverlap(b.lonMin, b.lonMax, other.lonMin, other.lonMax)
}

// ToCluster decomposes the box into one polygon, or (if it crosses the
// antimeridian) two polygons split at the 180th meridian. No further
// split is made: if a resulting polygon spans 180 degrees of longitude
// or more, ToCluster returns an *ErrClusterSpan.
func (b Box) ToCluster() (Cluster, error) {
	if b.IsEmpty() {
		return newCluster(nil)
	}
	if !b.CrossesAntimeridian() {
		pts := []Point{
			{b.latMin, b.lonMin}, {b.latMin, b.lonMax},
			{b.latMax, b.lonMax}, {b.latMax, b.lonMin},
		}
		return newCluster([]clusterEntry{{kind: EntryPolygon, points: pts}})
	}
	west := []Point{
		{b.latMin, b.lonMin}, {b.latMin, 180},
		{b.latMax, 180}, {b.latMax, b.lonMin},
	}
	east := []Point{
		{b.latMin, -180}, {b.latMin, b.lonMax},
		{b.latMax, b.lonMax}, {b.latMax, -180},
	}
	return newCluster([]clusterEntry{
		{kind: EntryPolygon, points: west},
		{kind: EntryPolygon, points: east},
	})
}

func isInvalidCoord(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
