// Package cfits is a pure Go stand-in for the small slice of the CFITSIO
// call set this project consumes: open/close, HDU navigation, header record
// access by index, image parameter queries and typed pixel block reads.
// Every operation reports a numeric Status; callers resolve messages through
// Status.Text. A File carries a mutable current-HDU cursor and must not be
// shared between goroutines.
package cfits

import (
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
)

const (
	blockSize  = 2880 // FITS block size, header and data alike
	recordSize = 80   // one header keyword record
)

// Record is the raw textual triple of one header keyword record. Value holds
// the untouched value field; typed interpretation is left to the caller.
type Record struct {
	Keyword string
	Value   string
	Comment string
}

type hdu struct {
	typ       HDUType
	records   []Record
	morekeys  int // free record slots left in the last header block
	bitpix    int
	naxes     []int64
	dataStart int64
}

// File is an open FITS file handle. The current-HDU cursor set by MoveAbsHDU
// is per-handle state; concurrent readers need independent handles.
type File struct {
	path   string
	r      *mmap.ReaderAt
	hdus   []hdu
	cur    int
	closed bool
}

// Open maps the file at path and indexes all of its HDUs. Any structural
// problem detected while indexing (missing SIMPLE, truncated header, bad
// mandatory keywords, a data section extending past the end of the file) is
// reported as FileNotOpened, matching the behavior of open-time validation
// in CFITSIO.
func Open(path string) (*File, Status) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, FileNotOpened
	}
	f := &File{path: path, r: r}
	if st := f.index(); st != OK {
		r.Close()
		return nil, st
	}
	return f, OK
}

// Path returns the path the handle was opened with.
func (f *File) Path() string { return f.path }

// Close releases the underlying mapping. Closing an already closed handle is
// a no-op.
func (f *File) Close() Status {
	if f.closed {
		return OK
	}
	f.closed = true
	if err := f.r.Close(); err != nil {
		return ReadError
	}
	return OK
}

// NumHDUs reports how many HDUs the file contains.
func (f *File) NumHDUs() (int, Status) {
	if f.closed {
		return 0, FileNotOpened
	}
	return len(f.hdus), OK
}

// MoveAbsHDU positions the cursor on the n-th HDU (1-based) and reports its
// type tag.
func (f *File) MoveAbsHDU(n int) (HDUType, Status) {
	if f.closed {
		return 0, FileNotOpened
	}
	if n < 1 || n > len(f.hdus) {
		return 0, BadHDUNum
	}
	f.cur = n - 1
	return f.hdus[f.cur].typ, OK
}

// HeaderSpace reports the number of keyword records in the current header,
// not counting END, and the number of unused record slots remaining in its
// final block.
func (f *File) HeaderSpace() (existing, more int, st Status) {
	if f.closed {
		return 0, 0, FileNotOpened
	}
	h := &f.hdus[f.cur]
	return len(h.records), h.morekeys, OK
}

// ReadKeyN returns the n-th keyword record (1-based) of the current header.
func (f *File) ReadKeyN(n int) (Record, Status) {
	if f.closed {
		return Record{}, FileNotOpened
	}
	h := &f.hdus[f.cur]
	if n < 1 || n > len(h.records) {
		return Record{}, KeyOutBounds
	}
	return h.records[n-1], OK
}

// ImageParams reports bitpix, the axis count and up to maxAxes axis extents
// for the current HDU. The returned extents slice is truncated to maxAxes;
// naxis always reports the true count. Table HDUs yield NotImage.
func (f *File) ImageParams(maxAxes int) (bitpix, naxis int, naxes []int64, st Status) {
	if f.closed {
		return 0, 0, nil, FileNotOpened
	}
	h := &f.hdus[f.cur]
	if h.typ != ImageHDU {
		return 0, 0, nil, NotImage
	}
	naxis = len(h.naxes)
	n := naxis
	if n > maxAxes {
		n = maxAxes
	}
	out := make([]int64, n)
	copy(out, h.naxes[:n])
	return h.bitpix, naxis, out, OK
}

// index scans the whole file once, recording header records and data offsets
// for every HDU.
func (f *File) index() Status {
	size := int64(f.r.Len())
	var off int64
	block := make([]byte, blockSize)

	for off < size {
		h := hdu{typ: ImageHDU}
		done := false
		for !done {
			if off+blockSize > size {
				return FileNotOpened
			}
			if _, err := f.r.ReadAt(block, off); err != nil {
				return ReadError
			}
			off += blockSize
			for i := 0; i < blockSize/recordSize; i++ {
				line := string(block[i*recordSize : (i+1)*recordSize])
				keyword := strings.TrimSpace(line[:8])
				if done {
					continue
				}
				if keyword == "END" {
					done = true
					h.morekeys = blockSize/recordSize - 1 - i
					continue
				}
				h.records = append(h.records, splitRecord(keyword, line))
			}
		}
		if len(f.hdus) == 0 {
			if len(h.records) == 0 || h.records[0].Keyword != "SIMPLE" {
				return FileNotOpened
			}
		} else {
			xt, ok := headerString(h.records, "XTENSION")
			if !ok {
				return FileNotOpened
			}
			switch xt {
			case "TABLE":
				h.typ = ASCIITable
			case "BINTABLE":
				h.typ = BinaryTable
			}
		}

		var st Status
		h.bitpix, h.naxes, st = mandatoryKeys(h.records)
		if st != OK {
			return st
		}
		ds := dataSize(h.bitpix, h.naxes, h.records)
		if ds < 0 || ds > size-off {
			return FileNotOpened
		}
		h.dataStart = off
		off += ds
		f.hdus = append(f.hdus, h)
	}
	if len(f.hdus) == 0 {
		return FileNotOpened
	}
	return OK
}

// splitRecord separates the value and comment fields of one 80-byte record.
// Records without the "= " value indicator (COMMENT, HISTORY, blank) carry
// everything after the keyword as comment text.
func splitRecord(keyword, line string) Record {
	if len(line) < 10 || line[8] != '=' || line[9] != ' ' {
		return Record{Keyword: keyword, Comment: strings.TrimSpace(line[8:])}
	}
	rest := line[10:]
	inQuote := false
	for i, c := range rest {
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == '/' && !inQuote:
			return Record{
				Keyword: keyword,
				Value:   strings.TrimSpace(rest[:i]),
				Comment: strings.TrimSpace(rest[i+1:]),
			}
		}
	}
	return Record{Keyword: keyword, Value: strings.TrimSpace(rest)}
}

// mandatoryKeys pulls BITPIX and the NAXIS extents out of a parsed header.
func mandatoryKeys(records []Record) (int, []int64, Status) {
	bitpix, ok := headerInt(records, "BITPIX")
	if !ok {
		return 0, nil, BadBitpix
	}
	switch bitpix {
	case 8, 16, 32, 64, -32, -64:
	default:
		return 0, nil, BadBitpix
	}
	naxis, ok := headerInt(records, "NAXIS")
	if !ok || naxis < 0 || naxis > 999 {
		return 0, nil, BadNaxis
	}
	naxes := make([]int64, naxis)
	for i := range naxes {
		n, ok := headerInt(records, "NAXIS"+strconv.Itoa(i+1))
		if !ok || n < 0 {
			return 0, nil, BadNaxis
		}
		naxes[i] = n
	}
	return int(bitpix), naxes, OK
}

// dataSize computes the padded byte length of the data section that follows
// a header: |BITPIX|/8 * GCOUNT * (PCOUNT + product of extents), rounded up
// to a whole number of blocks.
func dataSize(bitpix int, naxes []int64, records []Record) int64 {
	if len(naxes) == 0 {
		return 0
	}
	elems := int64(1)
	for _, n := range naxes {
		elems *= n
	}
	pcount, ok := headerInt(records, "PCOUNT")
	if !ok {
		pcount = 0
	}
	gcount, ok := headerInt(records, "GCOUNT")
	if !ok || gcount < 1 {
		gcount = 1
	}
	abs := int64(bitpix)
	if abs < 0 {
		abs = -abs
	}
	raw := abs / 8 * gcount * (pcount + elems)
	blocks := (raw + blockSize - 1) / blockSize
	return blocks * blockSize
}

func headerInt(records []Record, keyword string) (int64, bool) {
	for _, r := range records {
		if r.Keyword == keyword {
			n, err := strconv.ParseInt(r.Value, 10, 64)
			if err != nil {
				return 0, false
			}
			return n, true
		}
	}
	return 0, false
}

// headerString finds a keyword and strips the FITS single-quote convention
// from its value.
func headerString(records []Record, keyword string) (string, bool) {
	for _, r := range records {
		if r.Keyword == keyword {
			v := strings.TrimSpace(r.Value)
			v = strings.TrimPrefix(v, "'")
			v = strings.TrimSuffix(v, "'")
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}
