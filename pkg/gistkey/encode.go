package gistkey

import "math"

// fullDepth is the maximum number of interleaved lat/lon bits a key can
// carry (28 levels of lat plus 28 of lon).
const fullDepth = interleavedBits

// EncodePoint derives the full-depth PointKey addressing (lat, lon).
func EncodePoint(lat, lon float64) PointKey {
	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0

	bits := make([]int, fullDepth)
	for level := 0; level < fullDepth/2; level++ {
		latMid := (latMin + latMax) / 2
		var latBit int
		if lat >= latMid {
			latBit = 1
			latMin = latMid
		} else {
			latMax = latMid
		}
		lonMid := (lonMin + lonMax) / 2
		var lonBit int
		if lon >= lonMid {
			lonBit = 1
			lonMin = lonMid
		} else {
			lonMax = lonMid
		}
		bits[2*level] = latBit
		bits[2*level+1] = lonBit
	}
	return NewPointKey(func(i int) int { return bits[i] }, fullDepth)
}

// EncodeCircle derives the AreaKey addressing a circle of the given
// center and radius. refRadius is the reference radius (REF in the
// specification, earth_mean_diameter/3); radius bands below it are
// represented by successively halving the squared radius.
func EncodeCircle(lat, lon, radius, refRadius float64) AreaKey {
	if radius < 0 {
		return Empty()
	}
	if math.IsInf(radius, 1) {
		return Universal()
	}

	center := EncodePoint(lat, lon)
	bits := make([]int, fullDepth)
	for i := 0; i < fullDepth; i++ {
		bits[i] = center.BitAt(i)
	}

	objSize := 0
	if radius < refRadius {
		for l := 1; l <= 57; l++ {
			bandRadius := refRadius * math.Pow(2, -float64(l)/2)
			if radius >= bandRadius {
				objSize = l
				break
			}
			objSize = l
		}
	}

	return NewAreaKey(func(i int) int { return bits[i] }, fullDepth, objSize)
}
