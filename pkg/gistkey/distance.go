package gistkey

import "math"

// fpeSafety compensates for floating-point rounding when an estimate
// must never exceed the true distance: both terms of the subtraction are
// scaled by this factor so rounding error cannot flip the comparison the
// wrong way.
const fpeSafety = 1 + 1e-14

// EstimatePointBoxDistance returns a lower bound on the geodesic
// distance from (lat, lon) to the nearest point of box, using the
// supplied distance function (expected to be the WGS-84 surface
// distance). The estimate is never larger than the true minimum
// distance from the point to any location inside the box.
func EstimatePointBoxDistance(lat, lon float64, box Box, dist func(lat1, lon1, lat2, lon2 float64) float64) float64 {
	if box.LonMax-box.LonMin > 180 {
		return 0
	}

	corners := [4][2]float64{
		{box.LatMin, box.LonMin}, {box.LatMin, box.LonMax},
		{box.LatMax, box.LonMin}, {box.LatMax, box.LonMax},
	}

	h := dist(box.LatMin, box.LonMin, box.LatMax, box.LonMin) / 2
	d := dist(box.LatMin, box.LonMin, box.LatMin, box.LonMax)
	D := math.Max(h, d)

	best := math.Inf(1)
	for _, c := range corners {
		e := dist(lat, lon, c[0], c[1]) - D
		if e < best {
			best = e
		}
	}
	if best < 0 {
		best = 0
	}
	return best
}

// EstimateKeyDistance returns a lower bound on the distance from
// (lat, lon) to any object whose AreaKey is k or a descendant of k,
// given the reference radius used to encode k and a distance function.
// The estimate never exceeds the true minimum distance, which is the
// property the adapter's ordered scan relies on.
func EstimateKeyDistance(k AreaKey, lat, lon float64, refRadius float64, dist func(lat1, lon1, lat2, lon2 float64) float64) float64 {
	if k.IsUniversal() {
		return 0
	}
	if k.IsEmpty() {
		return math.Inf(1)
	}

	box := k.ToBox()
	estimate := EstimatePointBoxDistance(lat, lon, box, dist) / fpeSafety
	maxR := k.MaxRadius(refRadius)
	if math.IsInf(maxR, 1) {
		return 0
	}
	result := estimate - maxR*fpeSafety
	if result < 0 {
		return 0
	}
	return result
}
