package geo

import "math"

// EntryKind identifies the shape a cluster entry denotes.
type EntryKind int

const (
	// EntryPoint is a single vertex.
	EntryPoint EntryKind = iota
	// EntryPath is an open polyline: the last vertex does not close back
	// to the first.
	EntryPath
	// EntryOutline is a closed vertex loop that is not filled.
	EntryOutline
	// EntryPolygon is a closed vertex loop that is filled.
	EntryPolygon
)

func (k EntryKind) String() string {
	switch k {
	case EntryPoint:
		return "point"
	case EntryPath:
		return "path"
	case EntryOutline:
		return "outline"
	case EntryPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// clusterEntry is the internal, not-yet-validated representation of one
// entry passed to newCluster.
type clusterEntry struct {
	kind   EntryKind
	points []Point
}

// Entry is the exported, read-only view of one cluster entry.
type Entry struct {
	Kind   EntryKind
	Points []Point
}

// Cluster is an ordered sequence of point/path/outline/polygon entries
// treated as a single geometric value, with a bounding circle computed
// at construction time.
type Cluster struct {
	entries []clusterEntry
	center  Point
	radius  float64
}

// maxClusterPoints is the largest total vertex count a cluster may hold.
const maxClusterPoints = 16777216

// NewCluster constructs a Cluster from a list of entries, coercing
// degenerate entries (a 1-point Path/Outline/Polygon becomes a Point; a
// 2-point Outline/Polygon becomes a Path) and computing the bounding
// circle used for fast overlap rejection.
func NewCluster(entries []Entry) (Cluster, error) {
	internal := make([]clusterEntry, len(entries))
	for i, e := range entries {
		internal[i] = clusterEntry{kind: e.Kind, points: append([]Point(nil), e.Points...)}
	}
	return newCluster(internal)
}

func newCluster(entries []clusterEntry) (Cluster, error) {
	coerced := make([]clusterEntry, len(entries))
	total := 0
	for i, e := range entries {
		kind := e.kind
		switch {
		case len(e.points) == 0:
			return Cluster{}, &ErrEmptyEntry{EntryIndex: i}
		case len(e.points) == 1:
			kind = EntryPoint
		case len(e.points) == 2 && (kind == EntryOutline || kind == EntryPolygon):
			kind = EntryPath
		}
		if kind == EntryPoint && len(e.points) != 1 {
			return Cluster{}, &ErrPointTypeArity{EntryIndex: i, Count: len(e.points)}
		}
		coerced[i] = clusterEntry{kind: kind, points: e.points}
		total += len(e.points)
	}
	if total > maxClusterPoints {
		return Cluster{}, &ErrTooManyPoints{Count: total, Max: maxClusterPoints}
	}

	// Per-entry span check and unwrap, anchored on each entry's first vertex.
	for i, e := range coerced {
		_, span := unwrapEntry(e.points)
		if span >= 180 {
			return Cluster{}, &ErrClusterSpan{EntryIndex: i, SpanDeg: span}
		}
	}

	if len(coerced) == 0 {
		return Cluster{entries: coerced, center: Point{}, radius: math.Inf(-1)}, nil
	}

	center, radius, wholeEarth := finalizeBounds(coerced)
	if wholeEarth {
		return Cluster{entries: coerced, center: Point{lat: 0, lon: 0}, radius: math.Inf(1)}, nil
	}
	return Cluster{entries: coerced, center: center, radius: radius}, nil
}

// unwrapEntry re-expresses an entry's longitudes into a contiguous span
// around its first vertex and reports the resulting span in degrees.
func unwrapEntry(points []Point) ([]float64, float64) {
	base := points[0].lon
	unwrapped := make([]float64, len(points))
	lo, hi := base, base
	for i, p := range points {
		delta := normalizeDegrees(p.lon - base)
		lon := base + delta
		unwrapped[i] = lon
		if lon < lo {
			lo = lon
		}
		if lon > hi {
			hi = lon
		}
	}
	return unwrapped, hi - lo
}

// normalizeDegrees reduces a longitude delta to (-180, 180].
func normalizeDegrees(d float64) float64 {
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}

// finalizeBounds computes the cluster-wide center and bounding radius.
// wholeEarth is true if the cluster's combined longitude span reaches
// 180 degrees, in which case center/radius should fall back to the
// whole-earth sentinel.
func finalizeBounds(entries []clusterEntry) (center Point, radius float64, wholeEarth bool) {
	globalBase := entries[0].points[0].lon

	var sumLat, sumLon float64
	count := 0
	lo, hi := globalBase, globalBase

	type aligned struct {
		lat, lon float64
	}
	var allPoints []aligned

	for _, e := range entries {
		unwrapped, _ := unwrapEntry(e.points)
		anchor := unwrapped[0]
		shift := normalizeDegrees(anchor - globalBase)
		offset := shift - anchor + globalBase
		for i, p := range e.points {
			lon := unwrapped[i] + offset
			sumLat += p.lat
			sumLon += lon
			count++
			if lon < lo {
				lo = lon
			}
			if lon > hi {
				hi = lon
			}
			allPoints = append(allPoints, aligned{p.lat, lon})
		}
	}

	if hi-lo >= 180 {
		return Point{}, 0, true
	}

	meanLat := sumLat / float64(count)
	meanLon := sumLon / float64(count)
	center = Point{lat: round12(meanLat), lon: round12(normalizeAtPole(wrapLongitude(meanLon), meanLat))}

	maxDist := 0.0
	for _, a := range allPoints {
		d := center.DistanceTo(Point{lat: a.lat, lon: a.lon})
		if d > maxDist {
			maxDist = d
		}
	}
	return center, maxDist, false
}

// Entries returns a read-only snapshot of the cluster's entries.
func (c Cluster) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Kind: e.kind, Points: append([]Point(nil), e.points...)}
	}
	return out
}

// Center returns the cluster's bounding-circle center.
func (c Cluster) Center() Point { return c.center }

// Radius returns the cluster's bounding-circle radius in meters (+Inf if
// the cluster's combined longitude span reaches 180 degrees).
func (c Cluster) Radius() float64 { return c.radius }

// Contains reports whether p lies within the cluster: exactly on a vertex
// or edge of any entry, or inside the Polygon entries by the even-odd
// rule counted across all of them. Outline entries are not filled, so
// their interior is not contained.
func (c Cluster) Contains(p Point) bool {
	if !math.IsInf(c.radius, 1) && c.center.DistanceTo(p) > c.radius {
		return false
	}

	inside := false
	for _, e := range c.entries {
		unwrapped, _ := unwrapEntry(e.points)
		base := unwrapped[0]
		qlon := base + normalizeDegrees(p.lon-base)

		for i, pt := range e.points {
			if pt.lat == p.lat && round12(unwrapped[i]) == round12(qlon) {
				return true
			}
		}

		edges := entryEdges(e.kind, len(e.points))
		for _, edge := range edges {
			lat1, lon1 := e.points[edge[0]].lat, unwrapped[edge[0]]
			lat2, lon2 := e.points[edge[1]].lat, unwrapped[edge[1]]

			if lat1 == lat2 {
				if p.lat == lat1 {
					lo, hi := lon1, lon2
					if lo > hi {
						lo, hi = hi, lo
					}
					if qlon >= lo && qlon <= hi {
						return true
					}
				}
				continue
			}

			latLo, latHi := lat1, lat2
			if latLo > latHi {
				latLo, latHi = latHi, latLo
			}
			if p.lat < latLo || p.lat >= latHi {
				continue
			}

			t := (p.lat - lat1) / (lat2 - lat1)
			crossLon := lon1 + t*(lon2-lon1)
			if round12(crossLon) == round12(qlon) {
				return true
			}
			if e.kind == EntryPolygon && crossLon > qlon {
				inside = !inside
			}
		}
	}
	return inside
}

// entryEdges returns the vertex-index pairs forming an entry's edges.
// Point entries have none; Path entries omit the closing edge; Outline
// and Polygon entries include it.
func entryEdges(kind EntryKind, n int) [][2]int {
	if kind == EntryPoint || n < 2 {
		return nil
	}
	edges := make([][2]int, 0, n)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	if kind == EntryOutline || kind == EntryPolygon {
		edges = append(edges, [2]int{n - 1, 0})
	}
	return edges
}

// DistanceTo returns the minimum distance in meters from p to the
// cluster: 0 if p is contained.
func (c Cluster) DistanceTo(p Point) float64 {
	if c.Contains(p) {
		return 0
	}

	best := math.Inf(1)
	for _, e := range c.entries {
		unwrapped, _ := unwrapEntry(e.points)
		lo, hi := unwrapped[0], unwrapped[0]
		for _, l := range unwrapped {
			if l < lo {
				lo = l
			}
			if l > hi {
				hi = l
			}
		}
		mid := (lo + hi) / 2
		qlon := mid + normalizeDegrees(p.lon-mid)

		for i, pt := range e.points {
			d := p.DistanceTo(Point{lat: pt.lat, lon: round12(wrapLongitude(unwrapped[i]))})
			if d < best {
				best = d
			}
		}

		edges := entryEdges(e.kind, len(e.points))
		for _, edge := range edges {
			lat1, lon1 := e.points[edge[0]].lat, unwrapped[edge[0]]
			lat2, lon2 := e.points[edge[1]].lat, unwrapped[edge[1]]

			dLat, dLon := lat2-lat1, lon2-lon1
			denom := dLat*dLat + dLon*dLon
			if denom == 0 {
				continue
			}
			s := ((p.lat-lat1)*dLat + (qlon-lon1)*dLon) / denom
			if s <= 0 || s >= 1 {
				continue
			}
			projLat := lat1 + s*dLat
			projLon := lon1 + s*dLon
			d := p.DistanceTo(Point{lat: round12(projLat), lon: round12(wrapLongitude(projLon))})
			if d < best {
				best = d
			}
		}
	}
	return best
}
