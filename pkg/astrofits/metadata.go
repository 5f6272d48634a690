package astrofits

import (
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the variants of a header Value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindComment
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindComment:
		return "comment"
	}
	return "unknown"
}

// Value is a decoded header value: exactly one of the five variants is
// active, selected by Kind. Values are immutable once constructed.
type Value struct {
	kind ValueKind
	text string
	num  int64
	flt  float64
	bit  bool
}

func StringValue(s string) Value  { return Value{kind: KindString, text: s} }
func IntegerValue(n int64) Value  { return Value{kind: KindInteger, num: n} }
func FloatValue(f float64) Value  { return Value{kind: KindFloat, flt: f} }
func BooleanValue(b bool) Value   { return Value{kind: KindBoolean, bit: b} }
func CommentValue(s string) Value { return Value{kind: KindComment, text: s} }

func (v Value) Kind() ValueKind { return v.kind }

// Text returns the payload of a String or Comment value, and "" otherwise.
func (v Value) Text() string { return v.text }

// Int returns the payload of an Integer value, and 0 otherwise.
func (v Value) Int() int64 { return v.num }

// Float returns the payload of a Float value. Integer values are widened so
// numeric keywords can be read uniformly.
func (v Value) Float() float64 {
	if v.kind == KindInteger {
		return float64(v.num)
	}
	return v.flt
}

// Bool returns the payload of a Boolean value, and false otherwise.
func (v Value) Bool() bool { return v.bit }

// String renders the value for display, using the FITS T/F convention for
// booleans.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindComment:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBoolean:
		if v.bit {
			return "T"
		}
		return "F"
	}
	return ""
}

// Metadata is an ordered keyword-to-value mapping with unique, uppercase
// keywords. A later Set of an existing keyword replaces the value in place
// (last wins).
type Metadata struct {
	keys   []string
	values map[string]Value
}

func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

// NormalizeKeyword maps a raw keyword to its canonical form: trimmed and
// uppercased, as FITS keywords are case-insensitive and at most 8 characters.
func NormalizeKeyword(keyword string) string {
	return strings.ToUpper(strings.TrimSpace(keyword))
}

func (m *Metadata) Set(keyword string, v Value) {
	key := NormalizeKeyword(keyword)
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Metadata) Get(keyword string) (Value, bool) {
	v, ok := m.values[NormalizeKeyword(keyword)]
	return v, ok
}

func (m *Metadata) Len() int { return len(m.keys) }

// Keys returns the keywords in insertion order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// SortedKeys returns the keywords in lexical order.
func (m *Metadata) SortedKeys() []string {
	out := m.Keys()
	sort.Strings(out)
	return out
}

// GetString returns the text of a string-like keyword, or "".
func (m *Metadata) GetString(keyword string) string {
	v, ok := m.Get(keyword)
	if !ok || (v.Kind() != KindString && v.Kind() != KindComment) {
		return ""
	}
	return v.Text()
}

// GetInt returns an integer keyword value.
func (m *Metadata) GetInt(keyword string) (int64, bool) {
	v, ok := m.Get(keyword)
	if !ok || v.Kind() != KindInteger {
		return 0, false
	}
	return v.Int(), true
}

// GetFloat returns a numeric keyword value, widening integers.
func (m *Metadata) GetFloat(keyword string) (float64, bool) {
	v, ok := m.Get(keyword)
	if !ok || (v.Kind() != KindFloat && v.Kind() != KindInteger) {
		return 0, false
	}
	return v.Float(), true
}

// GetBool returns a boolean keyword value.
func (m *Metadata) GetBool(keyword string) (bool, bool) {
	v, ok := m.Get(keyword)
	if !ok || v.Kind() != KindBoolean {
		return false, false
	}
	return v.Bool(), true
}

// Well-known keyword accessors.
func (m *Metadata) ObjectName() string    { return m.GetString("OBJECT") }
func (m *Metadata) ImageType() string     { return m.GetString("IMAGETYP") }
func (m *Metadata) CameraName() string    { return m.GetString("INSTRUME") }
func (m *Metadata) TelescopeName() string { return m.GetString("TELESCOP") }
func (m *Metadata) Filter() string        { return m.GetString("FILTER") }
func (m *Metadata) DateObs() string       { return m.GetString("DATE-OBS") }

// ExposureTime reads EXPTIME, falling back to the older EXPOSURE keyword.
func (m *Metadata) ExposureTime() (float64, bool) {
	if v, ok := m.GetFloat("EXPTIME"); ok {
		return v, true
	}
	return m.GetFloat("EXPOSURE")
}
