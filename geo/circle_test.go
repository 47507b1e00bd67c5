package geo

import (
	"math"
	"testing"
)

func TestCircleSentinels(t *testing.T) {
	e := EmptyCircle()
	if !e.IsEmpty() {
		t.Error("EmptyCircle should report IsEmpty")
	}
	u := UniversalCircle()
	if !u.IsUniversal() {
		t.Error("UniversalCircle should report IsUniversal")
	}
	p, _, _ := NewPoint(10, 10)
	if e.Contains(p) {
		t.Error("empty circle should contain nothing")
	}
	if !u.Contains(p) {
		t.Error("universal circle should contain everything")
	}
}

func TestCircleNegativeRadiusCollapses(t *testing.T) {
	center, _, _ := NewPoint(0, 0)
	c, diags, err := NewCircle(center, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() {
		t.Errorf("expected negative radius to collapse to empty")
	}
	if len(diags) != 1 {
		t.Errorf("expected one diagnostic, got %d", len(diags))
	}
}

func TestCircleNaNRadiusErrors(t *testing.T) {
	center, _, _ := NewPoint(0, 0)
	_, _, err := NewCircle(center, math.NaN())
	if err == nil {
		t.Fatal("expected error for NaN radius")
	}
}

func TestCircleContainsAndOverlap(t *testing.T) {
	center, _, _ := NewPoint(0, 0)
	c, _, _ := NewCircle(center, 1000000)
	near, _, _ := NewPoint(1, 1)
	far, _, _ := NewPoint(80, 80)
	if !c.Contains(near) {
		t.Error("expected circle to contain a nearby point")
	}
	if c.Contains(far) {
		t.Error("expected circle to not contain a far point")
	}

	c2center, _, _ := NewPoint(5, 5)
	c2, _, _ := NewCircle(c2center, 1000000)
	if !c.Overlaps(c2) {
		t.Error("expected overlapping circles to report overlap")
	}
}

func TestCircleDistanceTo(t *testing.T) {
	center, _, _ := NewPoint(0, 0)
	c, _, _ := NewCircle(center, 1000)
	inside, _, _ := NewPoint(0, 0)
	if d := c.DistanceTo(inside); d != 0 {
		t.Errorf("distance to center = %v, want 0", d)
	}
}
