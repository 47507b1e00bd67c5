package gistkey

import "math"

// Box is the axis-aligned rectangle a key's spatial prefix denotes.
type Box struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

func decodeBox(bitAt func(int) int, depth int) Box {
	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	levels := depth / 2
	for level := 0; level < levels; level++ {
		latMid := (latMin + latMax) / 2
		if bitAt(2*level) == 1 {
			latMin = latMid
		} else {
			latMax = latMid
		}
		lonMid := (lonMin + lonMax) / 2
		if bitAt(2*level+1) == 1 {
			lonMin = lonMid
		} else {
			lonMax = lonMid
		}
	}
	return Box{LatMin: latMin, LatMax: latMax, LonMin: lonMin, LonMax: lonMax}
}

// ToBox returns the rectangle a PointKey's prefix encloses.
func (k PointKey) ToBox() Box {
	return decodeBox(k.BitAt, k.Depth())
}

// ToBox returns the rectangle an AreaKey's center prefix encloses.
// EMPTY and UNIVERSAL keys return the whole-earth box.
func (k AreaKey) ToBox() Box {
	if k.IsEmpty() || k.IsUniversal() {
		return Box{LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180}
	}
	return decodeBox(k.BitAt, spatialDepth(k))
}

// MaxRadius returns the greatest possible radius (in meters) an object
// addressed by this key can have, given refRadius (REF, the reference
// radius). objSize==0 means radius >= REF with no upper bound, so
// MaxRadius is +Inf in that band.
func (k AreaKey) MaxRadius(refRadius float64) float64 {
	switch k.ObjSize() {
	case SizeEmpty:
		return 0
	case SizeUniversal:
		return math.Inf(1)
	case 0:
		return math.Inf(1)
	default:
		return refRadius * math.Pow(2, -(float64(k.ObjSize())-1)/2)
	}
}
