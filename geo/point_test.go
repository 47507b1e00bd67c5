package geo

import (
	"math"
	"testing"
)

func TestNewPointNormalization(t *testing.T) {
	tests := []struct {
		name         string
		lat, lon     float64
		wantLat      float64
		wantLon      float64
		wantDiagLen  int
		wantErr      bool
	}{
		{"valid", 45, 90, 45, 90, 0, false},
		{"lat over pole", 95, 0, 90, 0, 1, false},
		{"lat under pole", -95, 0, -90, 0, 1, false},
		{"lon wraps east", 0, 200, 0, -160, 1, false},
		{"lon wraps west", 0, -200, 0, 160, 1, false},
		{"lon at seam", 0, 180, 0, 180, 0, false},
		{"lon at negative seam", 0, -180, 0, 180, 1, false},
		{"nan lat", math.NaN(), 0, 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, diags, err := NewPoint(tt.lat, tt.lon)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Lat() != tt.wantLat || p.Lon() != tt.wantLon {
				t.Errorf("got (%v,%v), want (%v,%v)", p.Lat(), p.Lon(), tt.wantLat, tt.wantLon)
			}
			if len(diags) != tt.wantDiagLen {
				t.Errorf("got %d diagnostics, want %d", len(diags), tt.wantDiagLen)
			}
		})
	}
}

func TestPointPoleCollapse(t *testing.T) {
	a, _, _ := NewPoint(90, 30)
	b, _, _ := NewPoint(90, -170)
	if !a.Equal(b) {
		t.Errorf("poles at different longitudes should be equal: %v vs %v", a, b)
	}
}

func TestPointDistanceToSelfIsZero(t *testing.T) {
	p, _, _ := NewPoint(12.3, 45.6)
	if d := p.DistanceTo(p); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}
