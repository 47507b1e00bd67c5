package gistindex

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/fathomline/geoindex/geo"
	"github.com/fathomline/geoindex/pkg/gistkey"
)

// Geometry is any value this index can store or query against: a
// geo.Point, a geo.Circle, or a geo.Cluster.
type Geometry interface{}

// geometryBox returns the bounding box of a geometry value, used both
// for a stored value's R-tree entry and for a query's R-tree search
// rectangle.
func geometryBox(g Geometry) geo.Box {
	switch v := g.(type) {
	case geo.Point:
		return v.ToBox()
	case geo.Circle:
		return circleBox(v)
	case geo.Cluster:
		return circleBoxFromCenterRadius(v.Center(), v.Radius())
	default:
		return geo.EmptyBox()
	}
}

func circleBox(c geo.Circle) geo.Box {
	return circleBoxFromCenterRadius(c.Center(), c.Radius())
}

func circleBoxFromCenterRadius(center geo.Point, radius float64) geo.Box {
	if radius <= 0 {
		return center.ToBox()
	}
	degMargin := (radius / 110574.0) + 0.01 // rough meters-per-degree latitude
	b, err := geo.NewBox(center.Lat()-degMargin, center.Lon()-degMargin, center.Lat()+degMargin, center.Lon()+degMargin)
	if err != nil {
		return center.ToBox()
	}
	return b
}

// Index is a host-facing spatial index: an R-tree over each entry's
// bounding box, prefiltering candidates before the exact geo predicate
// rechecks them, exactly the two-stage shape a generalized search tree
// gives a caller.
//
// Index is the one stateful type in this module; its mutations are
// serialized behind a single mutex since the underlying R-tree is not
// safe for concurrent writers.
type Index struct {
	mu      sync.Mutex
	rtree   *rtreego.Rtree
	entries map[string]entry
}

type entry struct {
	id  string
	geo Geometry
	key gistkey.AreaKey
	box geo.Box
}

// Bounds implements rtreego.Spatial.
func (e entry) Bounds() rtreego.Rect {
	b := e.box
	width := b.LonMax() - b.LonMin()
	height := b.LatMax() - b.LatMin()
	if width < 1e-9 {
		width = 1e-9
	}
	if height < 1e-9 {
		height = 1e-9
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.LonMin(), b.LatMin()}, []float64{width, height})
	return rect
}

// NewIndex creates an empty spatial index.
func NewIndex() *Index {
	return &Index{
		rtree:   rtreego.NewTree(2, 25, 50),
		entries: make(map[string]entry),
	}
}

// Insert adds a geometry value under id, computing its index key and
// bounding box. Re-inserting an existing id replaces its entry.
//
// rtreego's tree has no exposed removal primitive, so a replacement
// rebuilds the tree from idx.entries rather than trying to retract the
// stale leaf. A fresh id is a plain insert.
func (idx *Index) Insert(id string, g Geometry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	_, replacing := idx.entries[id]
	e := entry{id: id, geo: g, key: Compress(g), box: geometryBox(g)}
	idx.entries[id] = e

	if replacing {
		idx.rebuildTree()
		return
	}
	idx.rtree.Insert(e)
}

// Remove deletes id from the index, if present.
func (idx *Index) Remove(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, ok := idx.entries[id]; ok {
		delete(idx.entries, id)
		idx.rebuildTree()
	}
}

// rebuildTree reconstructs the R-tree from idx.entries, the index's
// source of truth. Called whenever an entry is removed or replaced,
// since rtreego offers no way to retract a single leaf in place.
func (idx *Index) rebuildTree() {
	idx.rtree = rtreego.NewTree(2, 25, 50)
	for _, e := range idx.entries {
		idx.rtree.Insert(e)
	}
}

// Count returns the number of indexed entries.
func (idx *Index) Count() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.entries)
}

// Overlaps returns the ids of every indexed entry that overlaps query,
// prefiltered by the R-tree and rechecked with the exact predicate. A
// cluster against another cluster is rechecked by their bounding
// circles only.
func (idx *Index) Overlaps(query Geometry) []string {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	qbox := geometryBox(query)
	width := qbox.LonMax() - qbox.LonMin()
	height := qbox.LatMax() - qbox.LatMin()
	if width < 1e-9 {
		width = 1e-9
	}
	if height < 1e-9 {
		height = 1e-9
	}
	rect, err := rtreego.NewRect(rtreego.Point{qbox.LonMin(), qbox.LatMin()}, []float64{width, height})
	if err != nil {
		return nil
	}

	var result []string
	for _, s := range idx.rtree.SearchIntersect(rect) {
		e := s.(entry)
		if exactOverlap(e.geo, query) {
			result = append(result, e.id)
		}
	}
	return result
}

func exactOverlap(a, b Geometry) bool {
	switch av := a.(type) {
	case geo.Point:
		return pointOverlaps(av, b)
	case geo.Circle:
		return circleOverlaps(av, b)
	case geo.Cluster:
		return clusterOverlaps(av, b)
	}
	return false
}

func pointOverlaps(p geo.Point, b Geometry) bool {
	switch bv := b.(type) {
	case geo.Point:
		return p.Equal(bv)
	case geo.Circle:
		return bv.Contains(p)
	case geo.Cluster:
		return bv.Contains(p)
	}
	return false
}

func circleOverlaps(c geo.Circle, b Geometry) bool {
	switch bv := b.(type) {
	case geo.Point:
		return c.Contains(bv)
	case geo.Circle:
		return c.Overlaps(bv)
	case geo.Cluster:
		return bv.DistanceTo(c.Center()) <= c.Radius()
	}
	return false
}

func clusterOverlaps(cl geo.Cluster, b Geometry) bool {
	switch bv := b.(type) {
	case geo.Point:
		return cl.Contains(bv)
	case geo.Circle:
		return cl.DistanceTo(bv.Center()) <= bv.Radius()
	case geo.Cluster:
		return cl.Center().DistanceTo(bv.Center()) <= cl.Radius()+bv.Radius()
	}
	return false
}

// Nearest returns up to k ids, ordered by the key distance estimator
// from query, using UltraDistance for unbounded keys.
func (idx *Index) Nearest(query geo.Point, k int) []string {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	type scored struct {
		id string
		d  float64
	}
	scoredEntries := make([]scored, 0, len(idx.entries))
	for _, e := range idx.entries {
		d := Distance(StrategyDistanceToPoint, e.key, query)
		scoredEntries = append(scoredEntries, scored{e.id, d})
	}
	sort.Slice(scoredEntries, func(i, j int) bool { return scoredEntries[i].d < scoredEntries[j].d })

	if k > len(scoredEntries) {
		k = len(scoredEntries)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = scoredEntries[i].id
	}
	return out
}

// String reports index size, for diagnostics.
func (idx *Index) String() string {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return fmt.Sprintf("gistindex.Index{entries: %d}", len(idx.entries))
}
