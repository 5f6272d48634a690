//go:build purego || js

package astrofits

// NormalizedStats computes min, max and mean of a normalized pixel buffer.
func NormalizedStats(pixels []float32) (min, max, mean float64) {
	if len(pixels) == 0 {
		return 0, 0, 0
	}
	min = float64(pixels[0])
	max = float64(pixels[0])
	var sum float64
	for _, p := range pixels {
		v := float64(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(pixels))
}
