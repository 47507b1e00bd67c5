// Package gistkey implements the fractal, bit-interleaved spatial index
// keys used to address WGS-84 locations and areas in a generalized
// search tree: PointKey for exact locations, AreaKey for a location plus
// a logarithmic size band.
//
// Both key types are fixed-size byte arrays so they can be stored,
// compared, and transmitted without any packing/unpacking step beyond
// the accessor methods in this package.
package gistkey

// PointKey addresses a location via 56 bits of interleaved
// latitude/longitude plus a 6-bit node depth.
//
// Byte layout: bytes 0-6 hold the interleaved bit stream, most significant
// bit first (the high bit of byte 0 is interleaved-bit 0, the coarsest
// split); byte 7 holds the depth in its low 6 bits.
type PointKey [8]byte

// AreaKey addresses a center location, an object-type bit, a 7-bit node
// depth, and an 8-bit logarithmic object size.
//
// Byte layout: bytes 0-6 as PointKey; byte 7's high bit is the type bit,
// its low 7 bits are the depth; byte 8 is the object size.
type AreaKey [9]byte

// Object-size sentinels for AreaKey.
const (
	// SizeEmpty matches only other empty objects.
	SizeEmpty = 126
	// SizeUniversal matches everything, including empty objects.
	SizeUniversal = 127
)

const interleavedBits = 56

// bitAt returns bit i (0 = coarsest) of a 56-bit interleaved stream
// packed into the first 7 bytes of buf.
func bitAt(buf []byte, i int) int {
	byteIdx := i / 8
	bitIdx := 7 - (i % 8)
	return int((buf[byteIdx] >> uint(bitIdx)) & 1)
}

// setBitAt sets bit i of a 56-bit interleaved stream packed into the
// first 7 bytes of buf.
func setBitAt(buf []byte, i int, v int) {
	byteIdx := i / 8
	bitIdx := uint(7 - (i % 8))
	if v != 0 {
		buf[byteIdx] |= 1 << bitIdx
	} else {
		buf[byteIdx] &^= 1 << bitIdx
	}
}

// Depth returns the PointKey's node depth (number of significant
// interleaved bits, 0..56).
func (k PointKey) Depth() int {
	return int(k[7] & 0x3f)
}

// BitAt returns interleaved bit i (0 = coarsest split).
func (k PointKey) BitAt(i int) int {
	return bitAt(k[:7], i)
}

// NewPointKey builds a PointKey from interleaved bits and a depth.
func NewPointKey(bits func(i int) int, depth int) PointKey {
	var k PointKey
	for i := 0; i < depth; i++ {
		setBitAt(k[:7], i, bits(i))
	}
	k[7] = byte(depth & 0x3f)
	return k
}

// Depth returns the AreaKey's node depth: the number of significant
// interleaved center bits (0..56). Object-size bits are not counted here;
// the size band is kept separately in ObjSize.
func (k AreaKey) Depth() int {
	return int(k[7] & 0x7f)
}

// IsArea reports whether the key's type bit is set. NewAreaKey sets it on
// every key it builds, including keys derived from a point; the overlap,
// union and penalty functions in this package do not read it.
func (k AreaKey) IsArea() bool {
	return k[7]&0x80 != 0
}

// ObjSize returns the logarithmic object-size field (0..57, or one of
// SizeEmpty/SizeUniversal).
func (k AreaKey) ObjSize() int {
	return int(k[8])
}

// BitAt returns interleaved bit i (0 = coarsest split) of the center
// coordinate stream.
func (k AreaKey) BitAt(i int) int {
	return bitAt(k[:7], i)
}

// NewAreaKey builds an AreaKey from interleaved center bits, a depth,
// and an object size.
func NewAreaKey(bits func(i int) int, depth, objSize int) AreaKey {
	var k AreaKey
	n := depth
	if n > interleavedBits {
		n = interleavedBits
	}
	for i := 0; i < n; i++ {
		setBitAt(k[:7], i, bits(i))
	}
	k[7] = 0x80 | byte(depth&0x7f)
	k[8] = byte(objSize)
	return k
}

// Empty returns the AreaKey sentinel matching only empty objects.
func Empty() AreaKey {
	return NewAreaKey(func(int) int { return 0 }, 0, SizeEmpty)
}

// Universal returns the AreaKey sentinel matching everything.
func Universal() AreaKey {
	return NewAreaKey(func(int) int { return 0 }, 0, SizeUniversal)
}

// IsEmpty reports whether the key is the empty sentinel.
func (k AreaKey) IsEmpty() bool { return k.ObjSize() == SizeEmpty }

// IsUniversal reports whether the key is the universal sentinel.
func (k AreaKey) IsUniversal() bool { return k.ObjSize() == SizeUniversal }
