package game

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Normalize of zero vector = %+v, want zero vector", v)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := Vec2{X: 3, Y: -4}.Normalize()
	if !almostEqual(v.Len(), 1.0, 1e-12) {
		t.Errorf("normalized length = %g, want 1", v.Len())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%g, %g, %g) = %g, want %g", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := lerp(0, 10, 0.5); got != 5 {
		t.Errorf("lerp(0, 10, 0.5) = %g, want 5", got)
	}
	if got := lerp(2, 2, 0.7); got != 2 {
		t.Errorf("lerp(2, 2, 0.7) = %g, want 2", got)
	}
}

func TestScaleRange(t *testing.T) {
	if got := scaleRange(5, 0, 10, 0, 100); got != 50 {
		t.Errorf("scaleRange = %g, want 50", got)
	}
	// Degenerate input range must not divide by zero.
	if got := scaleRange(5, 3, 3, 0, 100); got != 0 {
		t.Errorf("scaleRange with empty input range = %g, want 0", got)
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		if got := wrapAngle(tt.in); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("wrapAngle(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestRotate(t *testing.T) {
	v := Vec2{X: 1}.Rotate(math.Pi / 2)
	if !almostEqual(v.X, 0, 1e-12) || !almostEqual(v.Y, 1, 1e-12) {
		t.Errorf("Rotate(π/2) = %+v, want (0, 1)", v)
	}
}

func TestDistanceSqMatchesDistance(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 4, Y: 6}
	if d, dsq := distance(a, b), distanceSq(a, b); !almostEqual(d*d, dsq, 1e-9) {
		t.Errorf("distance² = %g but distanceSq = %g", d*d, dsq)
	}
}
