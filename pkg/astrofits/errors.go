package astrofits

import "fmt"

// ErrorKind identifies the failure class of an Error. The set is closed;
// callers can branch on it without string matching.
type ErrorKind int

const (
	// FileOpenFailed means the accessor could not open or interpret the file.
	FileOpenFailed ErrorKind = iota + 1
	// QueryFailed means an HDU, header or parameter query was rejected.
	QueryFailed
	// NoImageData means the addressed HDU carries no image pixels.
	NoImageData
	// UnsupportedDimensionality means the image has more axes than the
	// supported maximum of three.
	UnsupportedDimensionality
	// PixelReadFailed means the pixel block could not be read or decoded.
	PixelReadFailed
)

func (k ErrorKind) String() string {
	switch k {
	case FileOpenFailed:
		return "file open failed"
	case QueryFailed:
		return "query failed"
	case NoImageData:
		return "no image data"
	case UnsupportedDimensionality:
		return "unsupported dimensionality"
	case PixelReadFailed:
		return "pixel read failed"
	}
	return "unknown error"
}

// Error is the failure value produced by this package. Status carries the
// accessor's numeric status code and Message its resolved status text, so
// the low-level cause survives to the caller unmodified.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Kind, e.Message, e.Status)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
