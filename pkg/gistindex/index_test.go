package gistindex

import (
	"testing"

	"github.com/fathomline/geoindex/geo"
)

func TestIndexInsertAndOverlaps(t *testing.T) {
	idx := NewIndex()
	idx.Insert("a", mustPoint(t, 10, 10))
	idx.Insert("b", mustPoint(t, -10, -10))

	center := mustPoint(t, 10.0001, 10.0001)
	circle, _, err := geo.NewCircle(center, 50000)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}

	ids := idx.Overlaps(circle)
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("expected [a], got %v", ids)
	}
}

func TestIndexRemove(t *testing.T) {
	idx := NewIndex()
	idx.Insert("a", mustPoint(t, 10, 10))
	if idx.Count() != 1 {
		t.Fatalf("expected count 1, got %d", idx.Count())
	}
	idx.Remove("a")
	if idx.Count() != 0 {
		t.Fatalf("expected count 0 after remove, got %d", idx.Count())
	}
}

func TestIndexNearestOrdersByDistance(t *testing.T) {
	idx := NewIndex()
	idx.Insert("near", mustPoint(t, 0, 1))
	idx.Insert("far", mustPoint(t, 0, 90))

	query := mustPoint(t, 0, 0)
	ids := idx.Nearest(query, 2)
	if len(ids) != 2 || ids[0] != "near" {
		t.Errorf("expected [near, far], got %v", ids)
	}
}

func TestIndexReinsertReplaces(t *testing.T) {
	idx := NewIndex()
	idx.Insert("a", mustPoint(t, 0, 0))
	idx.Insert("a", mustPoint(t, 50, 50))
	if idx.Count() != 1 {
		t.Fatalf("expected count 1 after reinsert, got %d", idx.Count())
	}
}
