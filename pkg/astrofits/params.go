package astrofits

import (
	"fmt"

	"astrofits/internal/cfits"
)

// MaxAxes is the highest axis count the reader resolves. Data cubes beyond
// three axes are rejected rather than silently truncated; raising the cap
// requires generalizing both the resolver and the normalizer's dimension
// handling.
const MaxAxes = 3

// ImageParameters describes the primary image geometry: the bitpix sample
// code, the axis count and one positive extent per axis.
type ImageParameters struct {
	Bitpix int
	NAxis  int
	Naxes  []int64
}

// Elements returns the total sample count, with extents beyond the declared
// axis count defaulting to one.
func (p ImageParameters) Elements() int64 {
	n := int64(1)
	for _, x := range p.Naxes {
		n *= x
	}
	return n
}

// resolveImageParameters queries the accessor for the current HDU's image
// geometry and validates it against the supported shape.
func resolveImageParameters(h *cfits.File) (ImageParameters, error) {
	bitpix, naxis, naxes, st := h.ImageParams(MaxAxes)
	if st == cfits.NotImage {
		return ImageParameters{}, &Error{Kind: NoImageData, Status: int(st), Message: st.Text()}
	}
	if st != cfits.OK {
		return ImageParameters{}, &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
	}
	if naxis == 0 {
		return ImageParameters{}, &Error{
			Kind:    NoImageData,
			Status:  int(cfits.NotImage),
			Message: "HDU has zero axes",
		}
	}
	if naxis > MaxAxes {
		return ImageParameters{}, &Error{
			Kind:    UnsupportedDimensionality,
			Status:  int(cfits.BadNaxis),
			Message: fmt.Sprintf("NAXIS=%d exceeds the supported maximum of %d", naxis, MaxAxes),
		}
	}
	for _, n := range naxes {
		if n < 1 {
			return ImageParameters{}, &Error{
				Kind:    NoImageData,
				Status:  int(cfits.NotImage),
				Message: "image has a zero-length axis",
			}
		}
	}
	return ImageParameters{Bitpix: bitpix, NAxis: naxis, Naxes: naxes}, nil
}
