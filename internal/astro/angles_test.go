package astro

import (
	"math"
	"testing"
)

func TestAzimuthDeviation(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"same bearing", 200, 200, 0},
		{"simple separation", 200, 210, 10},
		{"wrap around north", 10, 350, 20},
		{"wrap around north reversed", 350, 10, 20},
		{"opposite bearings", 0, 180, 180},
		{"negative input normalized", -10, 10, 20},
		{"beyond full circle", 370, 350, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AzimuthDeviation(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AzimuthDeviation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAzimuthDeviationSymmetric(t *testing.T) {
	pairs := [][2]float64{{10, 350}, {0, 359}, {90, 270}, {123.4, 321.9}}
	for _, p := range pairs {
		if d1, d2 := AzimuthDeviation(p[0], p[1]), AzimuthDeviation(p[1], p[0]); d1 != d2 {
			t.Errorf("AzimuthDeviation not symmetric for %v: %v vs %v", p, d1, d2)
		}
	}
}

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		name                 string
		alt, az              float64
		targetAlt, targetAz  float64
		want                 float64
		tol                  float64
	}{
		{"exact match", 32, 200, 32, 200, 0, 1e-12},
		{"altitude only", 35, 200, 32, 200, 3, 1e-9},
		{"azimuth only wrapped", 32, 350, 32, 10, 20, 1e-9},
		{"both axes", 35, 204, 32, 200, 5, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionDistance(tt.alt, tt.az, tt.targetAlt, tt.targetAz)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("PositionDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionDistanceMonotone(t *testing.T) {
	// Growing deviation on either axis must never shrink the distance.
	prev := -1.0
	for d := 0.0; d <= 10; d += 0.5 {
		got := PositionDistance(32+d, 200, 32, 200)
		if got < prev {
			t.Fatalf("distance decreased at altitude deviation %v: %v < %v", d, got, prev)
		}
		prev = got
	}
	prev = -1.0
	for d := 0.0; d <= 10; d += 0.5 {
		got := PositionDistance(32, 200+d, 32, 200)
		if got < prev {
			t.Fatalf("distance decreased at azimuth deviation %v: %v < %v", d, got, prev)
		}
		prev = got
	}
}
