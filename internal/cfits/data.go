package cfits

import (
	"encoding/binary"
	"math"
)

// ReadPix reads nelem pixel samples of the current HDU starting at the
// 1-based element offset first, decoding the big-endian block into a native
// buffer for dt: []uint8, []int16, []int32, []int64, []float32 or []float64.
// anyNull reports whether any floating-point sample was NaN. The buffer is
// only valid when the status is OK.
func (f *File) ReadPix(dt DataType, first, nelem int64) (buf interface{}, anyNull bool, st Status) {
	if f.closed {
		return nil, false, FileNotOpened
	}
	h := &f.hdus[f.cur]
	if h.typ != ImageHDU || len(h.naxes) == 0 {
		return nil, false, NotImage
	}
	width := int64(dt.size())
	if width == 0 {
		return nil, false, BadDatatype
	}

	total := int64(1)
	for _, n := range h.naxes {
		total *= n
	}
	if first < 1 || nelem < 0 || first-1+nelem > total {
		return nil, false, EndOfFile
	}
	// Bound the request against the file itself, not just the declared
	// geometry; a header may claim more data than the file holds.
	avail := int64(f.r.Len()) - h.dataStart
	if avail < 0 {
		return nil, false, ReadError
	}
	maxElems := avail / width
	if nelem > maxElems || first-1 > maxElems-nelem {
		return nil, false, EndOfFile
	}

	raw := make([]byte, nelem*width)
	if _, err := f.r.ReadAt(raw, h.dataStart+(first-1)*width); err != nil {
		return nil, false, ReadError
	}

	n := int(nelem)
	switch dt {
	case TByte:
		out := make([]uint8, n)
		copy(out, raw)
		return out, false, OK
	case TShort:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(binary.BigEndian.Uint16(raw[i*2:]))
		}
		return out, false, OK
	case TInt:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(binary.BigEndian.Uint32(raw[i*4:]))
		}
		return out, false, OK
	case TLongLong:
		out := make([]int64, n)
		for i := range out {
			out[i] = int64(binary.BigEndian.Uint64(raw[i*8:]))
		}
		return out, false, OK
	case TFloat:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:]))
			if out[i] != out[i] {
				anyNull = true
			}
		}
		return out, anyNull, OK
	case TDouble:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
			if math.IsNaN(out[i]) {
				anyNull = true
			}
		}
		return out, anyNull, OK
	}
	return nil, false, BadDatatype
}
