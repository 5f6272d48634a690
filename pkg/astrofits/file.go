package astrofits

import "astrofits/internal/cfits"

// HDUType tags the kind of a Header/Data Unit.
type HDUType int

const (
	ImageHDU HDUType = iota
	ASCIITableHDU
	BinaryTableHDU
)

func (t HDUType) String() string {
	switch t {
	case ImageHDU:
		return "image"
	case ASCIITableHDU:
		return "ascii table"
	case BinaryTableHDU:
		return "binary table"
	}
	return "unknown"
}

// File is an open FITS file. It owns the accessor handle for its whole
// lifetime; Close must be called exactly once when done, typically with
// defer right after Open. A File holds per-handle cursor state and must not
// be shared between goroutines; concurrent readers open independent Files.
type File struct {
	path string
	h    *cfits.File
}

// Open opens the FITS file at path. A missing file, a permission problem or
// a malformed structure detected while indexing all surface as a
// FileOpenFailed error, and no handle is retained.
func Open(path string) (*File, error) {
	h, st := cfits.Open(path)
	if st != cfits.OK {
		return nil, &Error{Kind: FileOpenFailed, Status: int(st), Message: st.Text()}
	}
	return &File{path: path, h: h}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// Close releases the accessor handle. It is safe to call more than once;
// only the first call releases the handle.
func (f *File) Close() error {
	if st := f.h.Close(); st != cfits.OK {
		return &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
	}
	return nil
}

// NumHDUs reports the number of Header/Data Units in the file.
func (f *File) NumHDUs() (int, error) {
	n, st := f.h.NumHDUs()
	if st != cfits.OK {
		return 0, &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
	}
	return n, nil
}

// SeekHDU positions the handle on the n-th HDU (1-based) and reports its
// type.
func (f *File) SeekHDU(n int) (HDUType, error) {
	t, st := f.h.MoveAbsHDU(n)
	if st != cfits.OK {
		return 0, &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
	}
	switch t {
	case cfits.ASCIITable:
		return ASCIITableHDU, nil
	case cfits.BinaryTable:
		return BinaryTableHDU, nil
	default:
		return ImageHDU, nil
	}
}

// ReadImage reads the primary HDU: it decodes every header record into
// Metadata, resolves the image geometry and normalizes the pixel block.
// Upstream failures are returned unchanged so callers can branch on their
// kind.
func (f *File) ReadImage() (*Image, error) {
	if _, err := f.SeekHDU(1); err != nil {
		return nil, err
	}

	meta, err := f.readHeader()
	if err != nil {
		return nil, err
	}

	params, err := resolveImageParameters(f.h)
	if err != nil {
		return nil, err
	}
	dt, ok := DataTypeForBitpix(params.Bitpix)
	if !ok {
		return nil, &Error{
			Kind:    QueryFailed,
			Status:  int(cfits.BadBitpix),
			Message: cfits.BadBitpix.Text(),
		}
	}

	pixels, lo, hi, err := readNormalizedPixels(f.h, dt, params.Elements())
	if err != nil {
		return nil, err
	}

	img := &Image{
		Width:    int(params.Naxes[0]),
		Height:   1,
		Depth:    1,
		Bitpix:   params.Bitpix,
		DataType: dt,
		Pixels:   pixels,
		MinValue: lo,
		MaxValue: hi,
		Meta:     meta,
	}
	if params.NAxis >= 2 {
		img.Height = int(params.Naxes[1])
	}
	if params.NAxis >= 3 {
		img.Depth = int(params.Naxes[2])
	}
	return img, nil
}

// readHeader decodes all records of the current HDU into a Metadata.
// Records with a blank keyword (untagged commentary lines) have no key to
// map and are skipped; duplicate keywords resolve last-wins.
func (f *File) readHeader() (*Metadata, error) {
	n, _, st := f.h.HeaderSpace()
	if st != cfits.OK {
		return nil, &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
	}
	meta := NewMetadata()
	for i := 1; i <= n; i++ {
		rec, st := f.h.ReadKeyN(i)
		if st != cfits.OK {
			return nil, &Error{Kind: QueryFailed, Status: int(st), Message: st.Text()}
		}
		key, val := DecodeRecord(rec.Keyword, rec.Value, rec.Comment)
		if key == "" {
			continue
		}
		meta.Set(key, val)
	}
	return meta, nil
}

// ReadImageFile opens path, reads the primary image and closes the handle on
// every exit path.
func ReadImageFile(path string) (*Image, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadImage()
}
