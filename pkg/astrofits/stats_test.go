package astrofits

import (
	"math"
	"testing"
)

func TestNormalizedStats(t *testing.T) {
	min, max, mean := NormalizedStats([]float32{0, 0.25, 0.5, 1})
	if min != 0 {
		t.Errorf("min = %v; want 0", min)
	}
	if max != 1 {
		t.Errorf("max = %v; want 1", max)
	}
	if math.Abs(mean-0.4375) > 1e-6 {
		t.Errorf("mean = %v; want 0.4375", mean)
	}
}

func TestNormalizedStatsEmpty(t *testing.T) {
	min, max, mean := NormalizedStats(nil)
	if min != 0 || max != 0 || mean != 0 {
		t.Errorf("stats of empty buffer = %v, %v, %v; want zeros", min, max, mean)
	}
}

func TestNormalizedStatsFlat(t *testing.T) {
	min, max, mean := NormalizedStats([]float32{0.5, 0.5, 0.5})
	if min != 0.5 || max != 0.5 || math.Abs(mean-0.5) > 1e-6 {
		t.Errorf("stats = %v, %v, %v; want all 0.5", min, max, mean)
	}
}
