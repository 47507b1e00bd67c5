// Package gistindex implements the generalized-search-tree support
// functions (consistent, union, compress, decompress, penalty,
// picksplit, same, distance) over the fractal keys in gistkey, plus a
// concrete rtreego-backed index that exercises them.
package gistindex

// Strategy numbers identify the operator a Consistent/Distance call is
// evaluating, matching the numbering an index access method assigns to
// its supported operator class.
const (
	StrategyPointEqPoint   = 11
	StrategyCircleEqCircle = 13

	StrategyPointOverlapsPoint   = 21
	StrategyPointOverlapsBox     = 22
	StrategyPointOverlapsCircle  = 23
	StrategyPointOverlapsCluster = 24

	StrategyDistanceToPoint   = 31
	StrategyDistanceToCircle  = 33
	StrategyDistanceToCluster = 34
)
