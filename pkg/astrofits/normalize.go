package astrofits

import (
	"math"

	"astrofits/internal/cfits"
)

// Bounds of the normalized output range, and the fixed value substituted
// when an image is flat (max == min).
const (
	NormalizedMin = 0.0
	NormalizedMax = 1.0
	NormalizedMid = 0.5
)

// readNormalizedPixels reads the full pixel block of the current HDU in its
// native encoding and rescales it into [NormalizedMin, NormalizedMax]. The
// returned min and max are the pre-normalization extremes, accumulated in
// float64 so 64-bit integer sources do not lose their endpoints. The buffer
// is published all-or-nothing: on a failed read nothing is returned.
func readNormalizedPixels(h *cfits.File, dt DataType, count int64) ([]float32, float64, float64, error) {
	raw, _, st := h.ReadPix(dt.tag(), 1, count)
	if st != cfits.OK {
		return nil, 0, 0, &Error{Kind: PixelReadFailed, Status: int(st), Message: st.Text()}
	}

	switch src := raw.(type) {
	case []uint8:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	case []int16:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	case []int32:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	case []int64:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	case []float32:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	case []float64:
		pix, lo, hi := normalizeBlock(src)
		return pix, lo, hi, nil
	}
	return nil, 0, 0, &Error{
		Kind:    PixelReadFailed,
		Status:  int(cfits.BadDatatype),
		Message: cfits.BadDatatype.Text(),
	}
}

type sample interface {
	~uint8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// normalizeBlock maps src affinely onto the output range, preserving order
// and length. Min and max are taken over the finite samples; NaN samples
// (blank pixels in float images) come out as NormalizedMin. A flat block
// maps every sample to NormalizedMid.
func normalizeBlock[T sample](src []T) ([]float32, float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, s := range src {
		v := float64(s)
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi { // empty block, or every sample NaN
		lo, hi = 0, 0
	}

	out := make([]float32, len(src))
	span := hi - lo
	for i, s := range src {
		v := float64(s)
		switch {
		case math.IsNaN(v):
			out[i] = NormalizedMin
		case span == 0:
			out[i] = NormalizedMid
		default:
			out[i] = float32(NormalizedMin + (v-lo)/span*(NormalizedMax-NormalizedMin))
		}
	}
	return out, lo, hi
}
