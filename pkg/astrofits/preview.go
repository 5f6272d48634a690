package astrofits

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/tiff"
)

// Gray16 renders one z-plane of the normalized buffer as a 16-bit grayscale
// image, mapping [0, 1] onto the full uint16 range. Plane 0 is the first
// image of a cube; 2D images have exactly one plane.
func (img *Image) Gray16(plane int) (*image.Gray16, error) {
	if plane < 0 || plane >= img.Depth {
		return nil, fmt.Errorf("plane %d out of range [0, %d)", plane, img.Depth)
	}
	out := image.NewGray16(image.Rect(0, 0, img.Width, img.Height))
	base := plane * img.Width * img.Height
	for y := 0; y < img.Height; y++ {
		row := base + y*img.Width
		for x := 0; x < img.Width; x++ {
			v := img.Pixels[row+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			g := uint16(v*65535 + 0.5)
			off := out.PixOffset(x, y)
			out.Pix[off] = uint8(g >> 8)
			out.Pix[off+1] = uint8(g)
		}
	}
	return out, nil
}

// WriteTIFF encodes the first plane of the normalized image as an
// uncompressed 16-bit grayscale TIFF.
func (img *Image) WriteTIFF(w io.Writer) error {
	gray, err := img.Gray16(0)
	if err != nil {
		return err
	}
	return tiff.Encode(w, gray, nil)
}
