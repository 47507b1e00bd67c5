// Package geo implements a WGS-84 geodesic geometry model: points, boxes,
// circles, and clusters of them, along with the text and binary encodings
// used to move values across a process boundary.
//
// Every constructor is pure and reentrant: no package-level state is kept,
// and a value returned by a constructor is safe to share across goroutines
// since it is never mutated after construction. Diagnostics that fall
// short of a hard construction error (a clamped latitude, a renormalized
// longitude) are reported through a Diagnostic slice returned alongside
// the value rather than forced onto a logger.
//
// Example:
//
//	p, diags, err := geo.NewPoint(91, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Printf("%s: %s", d.Severity, d.Message)
//	}
package geo
