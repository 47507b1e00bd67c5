package geo

import (
	"math"

	"github.com/fathomline/geoindex/internal/geodesy"
)

// coordPrecision is the rounding applied to every stored coordinate so
// comparison, hashing, and text round-tripping are deterministic across
// platforms.
const coordPrecision = 1e12

func round12(x float64) float64 {
	return math.Round(x*coordPrecision) / coordPrecision
}

// Point is a location on the WGS-84 spheroid.
type Point struct {
	lat, lon float64
}

// NewPoint constructs a Point from a latitude and longitude in degrees.
//
// Latitude beyond ±90 is clamped to the nearest pole (a Warning
// diagnostic). Longitude outside (-180, 180] is wrapped into range (a
// Notice diagnostic), so -180 becomes 180. NaN or infinite input is an
// error.
func NewPoint(lat, lon float64) (Point, []Diagnostic, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Point{}, nil, &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}

	var diags []Diagnostic

	if lat > 90 || lat < -90 {
		diags = append(diags, Diagnostic{SeverityWarning, "latitude clamped to pole"})
		if lat > 90 {
			lat = 90
		} else {
			lat = -90
		}
	}

	wrapped := wrapLongitude(lon)
	if wrapped != lon {
		diags = append(diags, Diagnostic{SeverityNotice, "longitude wrapped into [-180, 180]"})
	}

	p := Point{lat: round12(lat), lon: round12(normalizeAtPole(wrapped, lat))}
	return p, diags, nil
}

// wrapLongitude reduces lon into (-180, 180].
func wrapLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon <= -180 {
		lon += 360
	}
	return lon
}

// normalizeAtPole collapses longitude to 0 at the poles, where every
// meridian denotes the same point.
func normalizeAtPole(lon, lat float64) float64 {
	if lat == 90 || lat == -90 {
		return 0
	}
	if lon == -180 {
		return 180
	}
	return lon
}

// Lat returns the latitude in degrees.
func (p Point) Lat() float64 { return p.lat }

// Lon returns the longitude in degrees.
func (p Point) Lon() float64 { return p.lon }

// Equal reports whether p and q denote the same location, accounting for
// the pole and antimeridian collapses.
func (p Point) Equal(q Point) bool {
	return p.lat == q.lat && p.lon == q.lon
}

// Less implements a total order over points: primarily by latitude, then
// by normalized longitude. Useful for deterministic sorting in indexes.
func (p Point) Less(q Point) bool {
	if p.lat != q.lat {
		return p.lat < q.lat
	}
	return p.lon < q.lon
}

// DistanceTo returns the WGS-84 surface distance in meters to another
// point.
func (p Point) DistanceTo(q Point) float64 {
	return geodesy.Distance(p.lat, p.lon, q.lat, q.lon)
}

// ToBox returns the degenerate box containing exactly this point.
func (p Point) ToBox() Box {
	return Box{latMin: p.lat, latMax: p.lat, lonMin: p.lon, lonMax: p.lon}
}

// ToCircle returns the degenerate circle (radius 0) centered on this
// point.
func (p Point) ToCircle() Circle {
	return Circle{center: p, radius: 0}
}

// ToCluster returns a single-point cluster containing this point.
func (p Point) ToCluster() Cluster {
	c, _ := newCluster([]clusterEntry{{kind: EntryPoint, points: []Point{p}}})
	return c
}
