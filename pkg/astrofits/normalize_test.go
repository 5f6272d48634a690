package astrofits

import (
	"math"
	"testing"
)

func TestNormalizeBlockInt16(t *testing.T) {
	pix, lo, hi := normalizeBlock([]int16{-100, 0, 100})
	if lo != -100 || hi != 100 {
		t.Fatalf("range = [%v, %v]; want [-100, 100]", lo, hi)
	}
	want := []float32{0, 0.5, 1}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pixel %d = %v; want %v", i, pix[i], want[i])
		}
	}
}

func TestNormalizeBlockPreservesOrder(t *testing.T) {
	src := []int32{5, 1, 9, 3}
	pix, lo, hi := normalizeBlock(src)
	if len(pix) != len(src) {
		t.Fatalf("length = %d; want %d", len(pix), len(src))
	}
	if lo != 1 || hi != 9 {
		t.Fatalf("range = [%v, %v]", lo, hi)
	}
	// Monotonic affine map: relative ordering survives.
	if !(pix[1] < pix[3] && pix[3] < pix[0] && pix[0] < pix[2]) {
		t.Errorf("ordering not preserved: %v", pix)
	}
	if pix[1] != 0 || pix[2] != 1 {
		t.Errorf("endpoints = %v, %v; want 0, 1", pix[1], pix[2])
	}
}

func TestNormalizeBlockDegenerate(t *testing.T) {
	pix, lo, hi := normalizeBlock([]uint8{7, 7, 7, 7})
	if lo != 7 || hi != 7 {
		t.Fatalf("range = [%v, %v]; want [7, 7]", lo, hi)
	}
	for i, p := range pix {
		if p != NormalizedMid {
			t.Errorf("pixel %d = %v; want midpoint %v", i, p, NormalizedMid)
		}
	}
}

func TestNormalizeBlockInt64Endpoints(t *testing.T) {
	src := []int64{math.MinInt64, 0, math.MaxInt64}
	_, lo, hi := normalizeBlock(src)
	if lo != float64(math.MinInt64) || hi != float64(math.MaxInt64) {
		t.Errorf("range = [%v, %v]; 64-bit endpoints must survive in float64", lo, hi)
	}
}

func TestNormalizeBlockNaN(t *testing.T) {
	nan := float32(math.NaN())
	pix, lo, hi := normalizeBlock([]float32{nan, 1, 3})
	if lo != 1 || hi != 3 {
		t.Fatalf("range = [%v, %v]; NaN must not pollute min/max", lo, hi)
	}
	if pix[0] != NormalizedMin {
		t.Errorf("NaN pixel = %v; want %v", pix[0], NormalizedMin)
	}
	if pix[1] != 0 || pix[2] != 1 {
		t.Errorf("pixels = %v", pix)
	}
}

func TestNormalizeBlockRoundTripEndpoints(t *testing.T) {
	// Applying the inverse affine map to the normalized endpoints recovers
	// the original range exactly.
	src := []float64{-12.5, 4.25, 100.75}
	pix, lo, hi := normalizeBlock(src)
	span := hi - lo
	if got := lo + float64(pix[0])*span; got != -12.5 {
		t.Errorf("inverse(min) = %v; want -12.5", got)
	}
	if got := lo + float64(pix[2])*span; got != 100.75 {
		t.Errorf("inverse(max) = %v; want 100.75", got)
	}
}

func TestDataTypeForBitpix(t *testing.T) {
	tests := []struct {
		bitpix int
		want   DataType
		fl     bool
		signed bool
		bits   int
	}{
		{8, Uint8, false, false, 8},
		{16, Int16, false, true, 16},
		{32, Int32, false, true, 32},
		{64, Int64, false, true, 64},
		{-32, Float32, true, true, 32},
		{-64, Float64, true, true, 64},
	}
	for _, tt := range tests {
		dt, ok := DataTypeForBitpix(tt.bitpix)
		if !ok || dt != tt.want {
			t.Errorf("DataTypeForBitpix(%d) = %v, %v", tt.bitpix, dt, ok)
			continue
		}
		if dt.IsFloatingPoint() != tt.fl || dt.IsSigned() != tt.signed || dt.Bits() != tt.bits {
			t.Errorf("%v: float=%v signed=%v bits=%d", dt, dt.IsFloatingPoint(), dt.IsSigned(), dt.Bits())
		}
	}
	if _, ok := DataTypeForBitpix(12); ok {
		t.Error("DataTypeForBitpix(12) = ok; want invalid")
	}
}
