package geometry

import (
	"math"
	"math/rand/v2"
	"testing"

	"orbyte/internal/config"
)

func TestShapeRadiusCircle(t *testing.T) {
	s := config.Shape{Bulge: 0, Sharpness: 6}
	for _, a := range []float64{0, 0.3, math.Pi / 4, math.Pi, 5.5} {
		if got := ShapeRadius(a, 120, s); got != 120 {
			t.Errorf("ShapeRadius(%v) = %v, want 120", a, got)
		}
	}
}

func TestShapeRadiusBulgeDependsOnAngle(t *testing.T) {
	s := config.Shape{Bulge: 0.5, Sharpness: 6}
	axis := ShapeRadius(0, 100, s)
	diagonal := ShapeRadius(math.Pi/4, 100, s)
	if math.Abs(axis-150) > 1e-9 {
		t.Errorf("axis radius = %v, want 150", axis)
	}
	if math.Abs(diagonal-100) > 1e-9 {
		t.Errorf("diagonal radius = %v, want 100", diagonal)
	}
}

func TestOffscreenSpawnPointOutsideByPadding(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const w, h, pad = 800.0, 600.0, 180.0
	seen := map[Edge]bool{}

	for i := 0; i < 2000; i++ {
		x, y := OffscreenSpawnPoint(r, w, h, pad)
		switch {
		case y == -pad && x >= 0 && x <= w:
			seen[EdgeTop] = true
		case y == h+pad && x >= 0 && x <= w:
			seen[EdgeBottom] = true
		case x == -pad && y >= 0 && y <= h:
			seen[EdgeLeft] = true
		case x == w+pad && y >= 0 && y <= h:
			seen[EdgeRight] = true
		default:
			t.Fatalf("spawn point (%v, %v) not on a padded edge line", x, y)
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected all four edges used, got %v", seen)
	}
}

func TestBaseRadius(t *testing.T) {
	l := config.Default().Layout
	tests := []struct {
		w, h, want float64
	}{
		{400, 800, 400 * 0.63},
		{600, 300, 300 * 0.63},
		{601, 300, 300 * 0.40},
		{1920, 1080, 1080 * 0.40},
	}
	for _, tt := range tests {
		if got := BaseRadius(tt.w, tt.h, l); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BaseRadius(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
