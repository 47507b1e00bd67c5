package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPoint renders a point as "{N|S}<deg> {E|W}<deg>" with 12
// fractional digits.
func FormatPoint(p Point) string {
	return formatLat(p.lat) + " " + formatLon(p.lon)
}

func formatLat(lat float64) string {
	hemi := "N"
	v := lat
	if math.Signbit(lat) && lat != 0 {
		hemi = "S"
		v = -lat
	}
	return hemi + formatDegrees(v)
}

func formatLon(lon float64) string {
	hemi := "E"
	v := lon
	if math.Signbit(lon) && lon != 0 {
		hemi = "W"
		v = -lon
	}
	return hemi + formatDegrees(v)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 12, 64)
}

// ParsePoint parses a point in the format produced by FormatPoint,
// accepting either coordinate first and case-insensitive hemisphere
// letters.
func ParsePoint(s string) (Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Point{}, &ErrParse{Kind: "point", Input: s, Want: "'{N|S}<deg> {E|W}<deg>'"}
	}
	var lat, lon float64
	var haveLat, haveLon bool
	for _, f := range fields {
		hemi, val, err := scanHemiValue(f)
		if err != nil {
			return Point{}, &ErrParse{Kind: "point", Input: s, Want: "'{N|S}<deg> {E|W}<deg>'"}
		}
		switch hemi {
		case 'N':
			lat, haveLat = val, true
		case 'S':
			lat, haveLat = -val, true
		case 'E':
			lon, haveLon = val, true
		case 'W':
			lon, haveLon = -val, true
		}
	}
	if !haveLat || !haveLon {
		return Point{}, &ErrParse{Kind: "point", Input: s, Want: "both a lat and a lon token"}
	}
	p, _, err := NewPoint(lat, lon)
	return p, err
}

// scanHemiValue parses a single "{N|S|E|W}<deg>" token.
func scanHemiValue(tok string) (byte, float64, error) {
	if len(tok) < 2 {
		return 0, 0, fmt.Errorf("token too short: %q", tok)
	}
	hemi := byte(strings.ToUpper(tok[:1])[0])
	switch hemi {
	case 'N', 'S', 'E', 'W':
	default:
		return 0, 0, fmt.Errorf("unknown hemisphere letter in %q", tok)
	}
	val, err := strconv.ParseFloat(tok[1:], 64)
	if err != nil {
		return 0, 0, err
	}
	return hemi, val, nil
}

// FormatBox renders a box as "<lat> <lon> <lat> <lon>", or "empty". When
// the box crosses the antimeridian, lon_max is printed as an explicit
// over-range value (lon_max + 360, continuing past +180) instead of its
// normalized form, so NewBox can trust the printed order verbatim and
// the pair round-trips regardless of how wide the crossing span is.
func FormatBox(b Box) string {
	if b.IsEmpty() {
		return "empty"
	}
	lonMax := b.lonMax
	if b.CrossesAntimeridian() {
		lonMax += 360
	}
	return fmt.Sprintf("%s %s %s %s",
		formatLat(b.latMin), formatLon(b.lonMin),
		formatLat(b.latMax), formatLon(lonMax))
}

// ParseBox parses a box in the format produced by FormatBox, accepting
// any order of the four tokens.
func ParseBox(s string) (Box, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "empty") {
		return EmptyBox(), nil
	}
	fields := strings.Fields(trimmed)
	if len(fields) != 4 {
		return Box{}, &ErrParse{Kind: "box", Input: s, Want: "four '{N|S|E|W}<deg>' tokens or 'empty'"}
	}
	var lats, lons []float64
	for _, f := range fields {
		hemi, val, err := scanHemiValue(f)
		if err != nil {
			return Box{}, &ErrParse{Kind: "box", Input: s, Want: "four '{N|S|E|W}<deg>' tokens or 'empty'"}
		}
		switch hemi {
		case 'N':
			lats = append(lats, val)
		case 'S':
			lats = append(lats, -val)
		case 'E':
			lons = append(lons, val)
		case 'W':
			lons = append(lons, -val)
		}
	}
	if len(lats) != 2 || len(lons) != 2 {
		return Box{}, &ErrParse{Kind: "box", Input: s, Want: "exactly two lat and two lon tokens"}
	}
	return NewBox(lats[0], lons[0], lats[1], lons[1])
}

// FormatCircle renders a circle as "{N|S}<deg> {E|W}<deg> <radius>".
func FormatCircle(c Circle) string {
	return fmt.Sprintf("%s %s %s", formatLat(c.center.lat), formatLon(c.center.lon), formatDegrees(c.radius))
}

// ParseCircle parses a circle in the format produced by FormatCircle.
func ParseCircle(s string) (Circle, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Circle{}, &ErrParse{Kind: "circle", Input: s, Want: "'{N|S}<deg> {E|W}<deg> <radius>'"}
	}
	p, err := ParsePoint(fields[0] + " " + fields[1])
	if err != nil {
		return Circle{}, err
	}
	r, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Circle{}, &ErrParse{Kind: "circle", Input: s, Want: "numeric radius"}
	}
	c, _, err := NewCircle(p, r)
	return c, err
}

// FormatCluster renders a cluster as a sequence of
// "point (...)"/"path (...)"/"outline (...)"/"polygon (...)" tokens, or
// "empty" for a cluster with no entries.
func FormatCluster(c Cluster) string {
	if len(c.entries) == 0 {
		return "empty"
	}
	parts := make([]string, len(c.entries))
	for i, e := range c.entries {
		pts := make([]string, len(e.points))
		for j, p := range e.points {
			pts[j] = FormatPoint(p)
		}
		parts[i] = fmt.Sprintf("%s (%s)", e.kind.String(), strings.Join(pts, " "))
	}
	return strings.Join(parts, " ")
}

// ParseCluster parses a cluster in the format produced by FormatCluster.
func ParseCluster(s string) (Cluster, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "empty") {
		return newCluster(nil)
	}

	var entries []clusterEntry
	rest := trimmed
	for len(strings.TrimSpace(rest)) > 0 {
		rest = strings.TrimSpace(rest)
		open := strings.Index(rest, "(")
		if open < 0 {
			return Cluster{}, &ErrParse{Kind: "cluster", Input: s, Want: "'kind (points...)' tokens"}
		}
		kindTok := strings.TrimSpace(rest[:open])
		kind, err := parseEntryKind(kindTok)
		if err != nil {
			return Cluster{}, err
		}
		closeIdx := strings.Index(rest[open:], ")")
		if closeIdx < 0 {
			return Cluster{}, &ErrParse{Kind: "cluster", Input: s, Want: "closing ')'"}
		}
		closeIdx += open
		body := rest[open+1 : closeIdx]
		ptTokens := strings.Fields(body)
		if len(ptTokens) == 0 {
			return Cluster{}, &ErrEmptyEntry{EntryIndex: len(entries)}
		}
		if len(ptTokens)%2 != 0 {
			return Cluster{}, &ErrParse{Kind: "cluster", Input: s, Want: "points of two '{N|S|E|W}<deg>' tokens each"}
		}
		var pts []Point
		for i := 0; i < len(ptTokens); i += 2 {
			p, err := ParsePoint(ptTokens[i] + " " + ptTokens[i+1])
			if err != nil {
				return Cluster{}, err
			}
			pts = append(pts, p)
		}
		entries = append(entries, clusterEntry{kind: kind, points: pts})
		rest = rest[closeIdx+1:]
	}
	return newCluster(entries)
}

func parseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(s) {
	case "point":
		return EntryPoint, nil
	case "path":
		return EntryPath, nil
	case "outline":
		return EntryOutline, nil
	case "polygon":
		return EntryPolygon, nil
	default:
		return 0, &ErrParse{Kind: "cluster entry", Input: s, Want: "one of point/path/outline/polygon"}
	}
}
