package geo

import "testing"

func mustPoint(t *testing.T, lat, lon float64) Point {
	t.Helper()
	p, _, err := NewPoint(lat, lon)
	if err != nil {
		t.Fatalf("NewPoint(%v, %v): %v", lat, lon, err)
	}
	return p
}

func TestClusterPolygonSpanningAntimeridianContains(t *testing.T) {
	pts := []Point{
		mustPoint(t, 10, 170), mustPoint(t, 10, -170),
		mustPoint(t, 20, -170), mustPoint(t, 20, 170),
	}
	c, err := NewCluster([]Entry{{Kind: EntryPolygon, Points: pts}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inEast := mustPoint(t, 15, 180)
	inWest := mustPoint(t, 15, -180)
	outside := mustPoint(t, 15, 0)

	if !c.Contains(inEast) {
		t.Errorf("expected cluster to contain %v", inEast)
	}
	if !c.Contains(inWest) {
		t.Errorf("expected cluster to contain %v", inWest)
	}
	if c.Contains(outside) {
		t.Errorf("expected cluster to not contain %v", outside)
	}
}

func TestClusterPointCoercion(t *testing.T) {
	c, err := NewCluster([]Entry{{Kind: EntryPolygon, Points: []Point{mustPoint(t, 1, 1)}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := c.Entries()
	if len(entries) != 1 || entries[0].Kind != EntryPoint {
		t.Errorf("expected 1-point polygon to coerce to Point, got %+v", entries)
	}
}

func TestClusterTwoPointCoercion(t *testing.T) {
	c, err := NewCluster([]Entry{{Kind: EntryOutline, Points: []Point{mustPoint(t, 0, 0), mustPoint(t, 1, 1)}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := c.Entries()
	if entries[0].Kind != EntryPath {
		t.Errorf("expected 2-point outline to coerce to Path, got %v", entries[0].Kind)
	}
}

func TestClusterSpanRejected(t *testing.T) {
	pts := []Point{mustPoint(t, 0, -170), mustPoint(t, 0, 170), mustPoint(t, 10, 0)}
	_, err := NewCluster([]Entry{{Kind: EntryPolygon, Points: pts}})
	if err == nil {
		t.Fatal("expected span error")
	}
	if _, ok := err.(*ErrClusterSpan); !ok {
		t.Errorf("expected *ErrClusterSpan, got %T", err)
	}
}

func TestClusterDistanceToOutsidePolygon(t *testing.T) {
	pts := []Point{
		mustPoint(t, 0, 0), mustPoint(t, 0, 1),
		mustPoint(t, 1, 1), mustPoint(t, 1, 0),
	}
	c, err := NewCluster([]Entry{{Kind: EntryPolygon, Points: pts}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inside := mustPoint(t, 0.5, 0.5)
	if d := c.DistanceTo(inside); d != 0 {
		t.Errorf("distance to interior point = %v, want 0", d)
	}
	outside := mustPoint(t, 2, 0.5)
	if d := c.DistanceTo(outside); d <= 0 {
		t.Errorf("distance to exterior point = %v, want > 0", d)
	}
}

func TestClusterOutlineNotFilled(t *testing.T) {
	pts := []Point{
		mustPoint(t, 0, 0), mustPoint(t, 0, 1),
		mustPoint(t, 1, 1), mustPoint(t, 1, 0),
	}
	c, err := NewCluster([]Entry{{Kind: EntryOutline, Points: pts}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	interior := mustPoint(t, 0.5, 0.5)
	if c.Contains(interior) {
		t.Errorf("expected outline to not contain its interior")
	}
}

func TestClusterPathDoesNotClose(t *testing.T) {
	pts := []Point{mustPoint(t, 0, 0), mustPoint(t, 0, 10), mustPoint(t, 10, 10)}
	c, err := NewCluster([]Entry{{Kind: EntryPath, Points: pts}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A point that would be "inside" only if the closing edge existed.
	almostClosing := mustPoint(t, 5, 5)
	if c.Contains(almostClosing) {
		t.Errorf("path should not behave like a closed, filled loop")
	}
}

func TestClusterTooManyPoints(t *testing.T) {
	pts := make([]Point, maxClusterPoints+1)
	for i := range pts {
		pts[i] = mustPoint(t, 0, 0)
	}
	_, err := NewCluster([]Entry{{Kind: EntryPath, Points: pts}})
	if err == nil {
		t.Fatal("expected too-many-points error")
	}
}
