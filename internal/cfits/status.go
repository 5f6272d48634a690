package cfits

import "fmt"

// Status is the numeric result code reported by every accessor operation.
// Zero means success. The nonzero codes follow the CFITSIO numbering so that
// error reports stay comparable with other FITS tooling.
type Status int

const (
	OK            Status = 0
	FileNotOpened Status = 104 // could not open or interpret the named file
	EndOfFile     Status = 107 // tried to read past the end of the file
	ReadError     Status = 108 // error reading data from the file
	KeyOutBounds  Status = 203 // header record number out of range
	BadBitpix     Status = 211 // illegal BITPIX value
	BadNaxis      Status = 212 // illegal NAXIS value
	NotImage      Status = 233 // current HDU is not an image
	BadHDUNum     Status = 301 // HDU number out of range
	BadDatatype   Status = 410 // unrecognized datatype tag
)

var statusText = map[Status]string{
	OK:            "ok",
	FileNotOpened: "could not open the named file",
	EndOfFile:     "tried to move past end of file",
	ReadError:     "error reading from FITS file",
	KeyOutBounds:  "header keyword number out of range",
	BadBitpix:     "illegal BITPIX keyword value",
	BadNaxis:      "illegal NAXIS keyword value",
	NotImage:      "current HDU is not an image",
	BadHDUNum:     "HDU number out of range",
	BadDatatype:   "unrecognized datatype code",
}

// Text resolves a status code to its human-readable description.
func (s Status) Text() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return fmt.Sprintf("unknown status %d", int(s))
}

// HDUType tags the kind of an HDU, reported when seeking to it.
type HDUType int

const (
	ImageHDU HDUType = iota
	ASCIITable
	BinaryTable
)

func (t HDUType) String() string {
	switch t {
	case ImageHDU:
		return "IMAGE"
	case ASCIITable:
		return "TABLE"
	case BinaryTable:
		return "BINTABLE"
	}
	return "UNKNOWN"
}

// DataType selects the native element encoding for a pixel block read.
// Values follow the CFITSIO type codes.
type DataType int

const (
	TByte     DataType = 11
	TShort    DataType = 21
	TInt      DataType = 31
	TFloat    DataType = 42
	TLongLong DataType = 81
	TDouble   DataType = 82
)

// size returns the element width in bytes, or 0 for an unknown tag.
func (d DataType) size() int {
	switch d {
	case TByte:
		return 1
	case TShort:
		return 2
	case TInt, TFloat:
		return 4
	case TLongLong, TDouble:
		return 8
	}
	return 0
}
