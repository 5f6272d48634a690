// Package astrofits reads FITS astronomical image files: it walks the
// Header/Data Units, decodes header keyword records into typed metadata and
// normalizes the primary image's pixel block into a flat float32 buffer in
// [0, 1], keeping the original value range for lossless display scaling.
package astrofits

import "astrofits/internal/cfits"

// DataType classifies the logical pixel sample encoding derived from the
// FITS bitpix code.
type DataType int

const (
	Uint8 DataType = iota
	Int16
	Int32
	Int64
	Float32
	Float64
)

// DataTypeForBitpix maps a FITS bitpix code to its sample classification.
// The valid codes are 8, 16, 32, 64, -32 and -64.
func DataTypeForBitpix(bitpix int) (DataType, bool) {
	switch bitpix {
	case 8:
		return Uint8, true
	case 16:
		return Int16, true
	case 32:
		return Int32, true
	case 64:
		return Int64, true
	case -32:
		return Float32, true
	case -64:
		return Float64, true
	}
	return 0, false
}

func (d DataType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "unknown"
}

// Bits returns the sample width in bits.
func (d DataType) Bits() int {
	switch d {
	case Uint8:
		return 8
	case Int16:
		return 16
	case Int32, Float32:
		return 32
	}
	return 64
}

// IsFloatingPoint reports whether samples are float-family.
func (d DataType) IsFloatingPoint() bool { return d == Float32 || d == Float64 }

// IsSigned reports whether integer samples carry a sign; FITS bytes are the
// only unsigned encoding.
func (d DataType) IsSigned() bool { return d != Uint8 }

// tag maps the classification to the accessor's native read code.
func (d DataType) tag() cfits.DataType {
	switch d {
	case Uint8:
		return cfits.TByte
	case Int16:
		return cfits.TShort
	case Int32:
		return cfits.TInt
	case Int64:
		return cfits.TLongLong
	case Float32:
		return cfits.TFloat
	default:
		return cfits.TDouble
	}
}

// Image is the resolved product of reading a FITS image HDU. Pixels holds
// width*height*depth normalized samples in [0, 1], row-major with the first
// axis varying fastest, exactly as stored in the file. MinValue and MaxValue
// are the pre-normalization extremes in the original numeric domain.
type Image struct {
	Width    int
	Height   int
	Depth    int
	Bitpix   int
	DataType DataType
	Pixels   []float32
	MinValue float64
	MaxValue float64
	Meta     *Metadata
}

// PixelCount returns the number of samples in the normalized buffer.
func (img *Image) PixelCount() int { return img.Width * img.Height * img.Depth }
