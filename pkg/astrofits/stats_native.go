//go:build !purego && !js

package astrofits

import "gocv.io/x/gocv"

// NormalizedStats computes min, max and mean of a normalized pixel buffer
// through the OpenCV backend.
func NormalizedStats(pixels []float32) (min, max, mean float64) {
	if len(pixels) == 0 {
		return 0, 0, 0
	}
	m := gocv.NewMatWithSize(1, len(pixels), gocv.MatTypeCV32F)
	defer m.Close()
	data, _ := m.DataPtrFloat32()
	copy(data, pixels)

	lo, hi, _, _ := gocv.MinMaxIdx(m)
	return float64(lo), float64(hi), m.Mean().Val1
}
