package geo

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// EncodePoint writes a point as two big-endian IEEE-754 doubles
// (lat, lon).
func EncodePoint(w io.Writer, p Point) error {
	return writeFloats(w, p.lat, p.lon)
}

// DecodePoint reads a point encoded by EncodePoint.
func DecodePoint(r io.Reader) (Point, error) {
	vals, err := readFloats(r, 2)
	if err != nil {
		return Point{}, err
	}
	return Point{lat: vals[0], lon: vals[1]}, nil
}

// EncodeBox writes a box as four big-endian IEEE-754 doubles
// (lat_min, lat_max, lon_min, lon_max).
func EncodeBox(w io.Writer, b Box) error {
	return writeFloats(w, b.latMin, b.latMax, b.lonMin, b.lonMax)
}

// DecodeBox reads a box encoded by EncodeBox.
func DecodeBox(r io.Reader) (Box, error) {
	vals, err := readFloats(r, 4)
	if err != nil {
		return Box{}, err
	}
	return Box{latMin: vals[0], latMax: vals[1], lonMin: vals[2], lonMax: vals[3]}, nil
}

// EncodeCircle writes a circle as three big-endian IEEE-754 doubles
// (lat, lon, radius).
func EncodeCircle(w io.Writer, c Circle) error {
	return writeFloats(w, c.center.lat, c.center.lon, c.radius)
}

// DecodeCircle reads a circle encoded by EncodeCircle.
func DecodeCircle(r io.Reader) (Circle, error) {
	vals, err := readFloats(r, 3)
	if err != nil {
		return Circle{}, err
	}
	return Circle{center: Point{lat: vals[0], lon: vals[1]}, radius: vals[2]}, nil
}

func writeFloats(w io.Writer, vals ...float64) error {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("write geo binary encoding: %w", err)
	}
	return nil
}

func readFloats(r io.Reader, n int) ([]float64, error) {
	buf := make([]byte, 8*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read geo binary encoding: %w", err)
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.BigEndian.Uint64(buf[i*8:]))
	}
	return vals, nil
}
