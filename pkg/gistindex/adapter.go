package gistindex

import (
	"github.com/fathomline/geoindex/geo"
	"github.com/fathomline/geoindex/internal/geodesy"
	"github.com/fathomline/geoindex/pkg/gistkey"
)

// refRadius is the reference radius (REF) used throughout this package
// to translate between a circle/cluster radius and a key's logarithmic
// object-size band.
const refRadius = geodesy.ReferenceRadius

// Compress derives the AreaKey an index leaf stores for a geometry
// value. For a Point and a Circle the key addresses the value directly;
// for a Cluster it addresses the cluster's bounding circle, matching the
// "leaf-only transform" the original index support functions perform.
func Compress(g Geometry) gistkey.AreaKey {
	switch v := g.(type) {
	case geo.Point:
		return gistkey.EncodeCircle(v.Lat(), v.Lon(), 0, refRadius)
	case geo.Circle:
		if v.IsEmpty() {
			return gistkey.Empty()
		}
		if v.IsUniversal() {
			return gistkey.Universal()
		}
		return gistkey.EncodeCircle(v.Center().Lat(), v.Center().Lon(), v.Radius(), refRadius)
	case geo.Cluster:
		r := v.Radius()
		return gistkey.EncodeCircle(v.Center().Lat(), v.Center().Lon(), r, refRadius)
	default:
		return gistkey.Empty()
	}
}

// Decompress is the identity transform: AreaKeys are already in their
// on-disk, comparable form.
func Decompress(k gistkey.AreaKey) gistkey.AreaKey { return k }

// Union folds a set of child keys into the key describing their
// smallest common enclosing cell.
func Union(keys []gistkey.AreaKey) gistkey.AreaKey {
	if len(keys) == 0 {
		return gistkey.Empty()
	}
	u := keys[0]
	for _, k := range keys[1:] {
		u = gistkey.UniteAreaKeys(u, k)
	}
	return u
}

// Penalty measures the cost of inserting candidate under a node whose
// current key is existing: the reduction in common spatial prefix depth
// caused by uniting the two. Lower is better; see gistkey.Penalty for
// which unions score zero.
func Penalty(existing, candidate gistkey.AreaKey) int {
	return gistkey.Penalty(existing, candidate)
}

// Same reports whether two keys are identical after normalization.
func Same(a, b gistkey.AreaKey) bool {
	return gistkey.AreaKeySame(a, b)
}

// PickSplit partitions entries (indices into keys) into two groups for a
// node split. If the union is Universal because empty and non-empty keys
// are mixed, empty keys go left and non-empty keys go right. If every
// entry already shares the same key (no splitting bit remains), the
// entries are halved arbitrarily; otherwise the method refines the
// current union by one bit and routes entries by whether they fall on
// the 0 or 1 side of that bit.
func PickSplit(keys []gistkey.AreaKey) (left, right []int) {
	if len(keys) <= 1 {
		for i := range keys {
			left = append(left, i)
		}
		return left, nil
	}

	union := keys[0]
	for _, k := range keys[1:] {
		union = gistkey.UniteAreaKeys(union, k)
	}

	if union.IsUniversal() {
		for i, k := range keys {
			if k.IsEmpty() {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
		}
		if len(left) > 0 && len(right) > 0 {
			return left, right
		}
		left, right = nil, nil
	}

	splitBit := union.Depth()
	if splitBit >= 56 {
		mid := len(keys) / 2
		for i := range keys {
			if i < mid {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
		}
		return left, right
	}

	for i, k := range keys {
		if k.BitAt(splitBit) == 0 {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		mid := len(keys) / 2
		left = left[:0]
		right = right[:0]
		for i := range keys {
			if i < mid {
				left = append(left, i)
			} else {
				right = append(right, i)
			}
		}
	}
	return left, right
}

// Consistent evaluates whether a stored key can satisfy the query under
// the given strategy number. A true result is lossy and must be
// rechecked with the exact geo predicate before being returned to a
// caller. StrategyPointOverlapsBox takes a geo.Point query and reports
// whether it lies inside the key's center-prefix box; a box query is not
// accepted and yields false.
func Consistent(strategy int, key gistkey.AreaKey, query Geometry) bool {
	switch strategy {
	case StrategyPointEqPoint, StrategyCircleEqCircle:
		qk := Compress(query)
		return gistkey.AreaKeysOverlap(key, qk)

	case StrategyPointOverlapsPoint:
		p, ok := query.(geo.Point)
		if !ok {
			return false
		}
		return gistkey.EstimateKeyDistance(key, p.Lat(), p.Lon(), refRadius, geodesy.Distance) == 0

	case StrategyPointOverlapsBox:
		p, ok := query.(geo.Point)
		if !ok {
			return false
		}
		box := key.ToBox()
		return p.Lat() >= box.LatMin && p.Lat() <= box.LatMax &&
			p.Lon() >= box.LonMin && p.Lon() <= box.LonMax

	case StrategyPointOverlapsCircle:
		c, ok := query.(geo.Circle)
		if !ok {
			return false
		}
		d := gistkey.EstimateKeyDistance(key, c.Center().Lat(), c.Center().Lon(), refRadius, geodesy.Distance)
		return d <= c.Radius()

	case StrategyPointOverlapsCluster:
		cl, ok := query.(geo.Cluster)
		if !ok {
			return false
		}
		d := gistkey.EstimateKeyDistance(key, cl.Center().Lat(), cl.Center().Lon(), refRadius, geodesy.Distance)
		return d <= cl.Radius()

	default:
		return false
	}
}

// Distance returns an ordered-scan distance estimate from key to query
// under the given strategy, substituting UltraDistance for what would
// otherwise be an unbounded result.
func Distance(strategy int, key gistkey.AreaKey, query Geometry) float64 {
	var lat, lon, subtract float64
	switch strategy {
	case StrategyDistanceToPoint:
		p, ok := query.(geo.Point)
		if !ok {
			return geodesy.UltraDistance
		}
		lat, lon = p.Lat(), p.Lon()
	case StrategyDistanceToCircle:
		c, ok := query.(geo.Circle)
		if !ok {
			return geodesy.UltraDistance
		}
		lat, lon, subtract = c.Center().Lat(), c.Center().Lon(), c.Radius()
	case StrategyDistanceToCluster:
		cl, ok := query.(geo.Cluster)
		if !ok {
			return geodesy.UltraDistance
		}
		lat, lon, subtract = cl.Center().Lat(), cl.Center().Lon(), cl.Radius()
	default:
		return geodesy.UltraDistance
	}

	d := gistkey.EstimateKeyDistance(key, lat, lon, refRadius, geodesy.Distance)
	if subtract > 0 {
		d -= subtract
	}
	if d < 0 {
		d = 0
	}
	if d > geodesy.MaxDistance {
		return geodesy.UltraDistance
	}
	return d
}
