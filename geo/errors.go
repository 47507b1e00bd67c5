package geo

import "fmt"

// Severity classifies a non-fatal condition raised while constructing or
// parsing a value.
type Severity int

const (
	// SeverityNotice marks a routine, expected normalization (e.g. a
	// longitude wrapped into range).
	SeverityNotice Severity = iota
	// SeverityWarning marks a normalization that discards information
	// (e.g. a latitude clamped to a pole).
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "NOTICE"
	case SeverityWarning:
		return "WARNING"
	default:
		return "UNKNOWN"
	}
}

// Diagnostic is a non-fatal condition surfaced alongside a successfully
// constructed value.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// ErrInvalidCoordinate indicates a latitude or longitude that cannot be
// normalized (NaN or infinite).
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (must be finite)", e.Lat, e.Lon)
}

// ErrInvalidRadius indicates a circle radius that is NaN.
type ErrInvalidRadius struct {
	Radius float64
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("invalid radius: %f (must not be NaN)", e.Radius)
}

// ErrClusterSpan indicates an entry whose longitude span reaches or
// exceeds 180 degrees, making its east/west orientation ambiguous.
type ErrClusterSpan struct {
	EntryIndex int
	SpanDeg    float64
}

func (e *ErrClusterSpan) Error() string {
	return fmt.Sprintf("cluster entry %d spans %.6f degrees of longitude (must be < 180)",
		e.EntryIndex, e.SpanDeg)
}

// ErrAmbiguousBox indicates a box whose two corner points span more than
// 120 but less than 240 degrees of longitude, leaving its east/west
// orientation (does it cross the 180th meridian or not) undetermined.
type ErrAmbiguousBox struct {
	SpanDeg float64
}

func (e *ErrAmbiguousBox) Error() string {
	return fmt.Sprintf("cannot determine east/west orientation for box spanning %.6f degrees of longitude", e.SpanDeg)
}

// ErrEmptyEntry indicates a cluster entry with no points.
type ErrEmptyEntry struct {
	EntryIndex int
}

func (e *ErrEmptyEntry) Error() string {
	return fmt.Sprintf("cluster entry %d has no points", e.EntryIndex)
}

// ErrTooManyPoints indicates a cluster whose total point count exceeds
// the supported maximum.
type ErrTooManyPoints struct {
	Count, Max int
}

func (e *ErrTooManyPoints) Error() string {
	return fmt.Sprintf("cluster has %d points, exceeding the maximum of %d", e.Count, e.Max)
}

// ErrPointTypeArity indicates a Point-kind entry with more than one vertex.
type ErrPointTypeArity struct {
	EntryIndex, Count int
}

func (e *ErrPointTypeArity) Error() string {
	return fmt.Sprintf("cluster entry %d is a point but has %d vertices", e.EntryIndex, e.Count)
}

// ErrParse indicates a textual value could not be parsed.
type ErrParse struct {
	Kind  string
	Input string
	Want  string
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("cannot parse %s %q: expected %s", e.Kind, e.Input, e.Want)
}
