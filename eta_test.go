package barline

import (
	"math"
	"testing"
	"time"
)

func TestEtaArithmetic(t *testing.T) {
	cases := map[string]struct {
		eta           Eta
		speed         float64
		remaining     float64
		remainingNaN  bool
		remainingInf  int
		speedNaN      bool
		speedInfinite int
	}{
		"steady": {
			eta:       Eta{value: 300, total: 1000, elapsed: 10 * time.Second},
			speed:     30,
			remaining: 700.0 / 30.0,
		},
		"done": {
			eta:       Eta{value: 1000, total: 1000, elapsed: 20 * time.Second},
			speed:     50,
			remaining: 0,
		},
		"overshoot": {
			eta:       Eta{value: 1200, total: 1000, elapsed: 10 * time.Second},
			speed:     120,
			remaining: -200.0 / 120.0,
		},
		"no progress": {
			eta:          Eta{value: 0, total: 1000, elapsed: 10 * time.Second},
			speed:        0,
			remainingInf: 1,
		},
		"regressing": {
			eta:          Eta{value: -10, total: 1000, elapsed: 10 * time.Second},
			speed:        -1,
			remainingInf: -1,
		},
		"zero elapsed": {
			eta:           Eta{value: 300, total: 1000},
			speedInfinite: 1,
			remaining:     0,
		},
		"smoothed overrides lifetime": {
			eta:       Eta{value: 300, total: 1000, elapsed: 10 * time.Second, smoothed: 70},
			speed:     70,
			remaining: 10,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			speed := tc.eta.Speed()
			switch {
			case tc.speedNaN:
				if !math.IsNaN(speed) {
					t.Fatalf("expected NaN speed, got %v", speed)
				}
			case tc.speedInfinite != 0:
				if !math.IsInf(speed, tc.speedInfinite) {
					t.Fatalf("expected Inf(%d) speed, got %v", tc.speedInfinite, speed)
				}
			default:
				if speed != tc.speed {
					t.Fatalf("expected speed %v, got %v", tc.speed, speed)
				}
			}

			remaining := tc.eta.Remaining()
			switch {
			case tc.remainingNaN:
				if !math.IsNaN(remaining) {
					t.Fatalf("expected NaN remaining, got %v", remaining)
				}
			case tc.remainingInf != 0:
				if !math.IsInf(remaining, tc.remainingInf) {
					t.Fatalf("expected Inf(%d) remaining, got %v", tc.remainingInf, remaining)
				}
			default:
				if math.Abs(remaining-tc.remaining) > 1e-9 {
					t.Fatalf("expected remaining %v, got %v", tc.remaining, remaining)
				}
			}
		})
	}
}
