package astrofits

import "testing"

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		value    string
		comment  string
		wantKey  string
		wantKind ValueKind
		check    func(t *testing.T, v Value)
	}{
		{
			name: "boolean true", keyword: "SIMPLE", value: "T", comment: "conforms",
			wantKey: "SIMPLE", wantKind: KindBoolean,
			check: func(t *testing.T, v Value) {
				if !v.Bool() {
					t.Error("Bool() = false; want true")
				}
			},
		},
		{
			name: "boolean false", keyword: "EXTEND", value: "F",
			wantKey: "EXTEND", wantKind: KindBoolean,
			check: func(t *testing.T, v Value) {
				if v.Bool() {
					t.Error("Bool() = true; want false")
				}
			},
		},
		{
			name: "integer", keyword: "NAXIS", value: "42",
			wantKey: "NAXIS", wantKind: KindInteger,
			check: func(t *testing.T, v Value) {
				if v.Int() != 42 {
					t.Errorf("Int() = %d; want 42", v.Int())
				}
			},
		},
		{
			name: "negative integer", keyword: "BZERO", value: "-32768",
			wantKey: "BZERO", wantKind: KindInteger,
			check: func(t *testing.T, v Value) {
				if v.Int() != -32768 {
					t.Errorf("Int() = %d", v.Int())
				}
			},
		},
		{
			name: "explicit plus sign", keyword: "GAIN", value: "+7",
			wantKey: "GAIN", wantKind: KindInteger,
			check: func(t *testing.T, v Value) {
				if v.Int() != 7 {
					t.Errorf("Int() = %d; want 7", v.Int())
				}
			},
		},
		{
			name: "float", keyword: "EXPTIME", value: "3.14",
			wantKey: "EXPTIME", wantKind: KindFloat,
			check: func(t *testing.T, v Value) {
				if v.Float() != 3.14 {
					t.Errorf("Float() = %v; want 3.14", v.Float())
				}
			},
		},
		{
			name: "float with exponent", keyword: "BSCALE", value: "1.5E2",
			wantKey: "BSCALE", wantKind: KindFloat,
			check: func(t *testing.T, v Value) {
				if v.Float() != 150 {
					t.Errorf("Float() = %v; want 150", v.Float())
				}
			},
		},
		{
			name: "float with D exponent", keyword: "CRVAL1", value: "1.5D2",
			wantKey: "CRVAL1", wantKind: KindFloat,
			check: func(t *testing.T, v Value) {
				if v.Float() != 150 {
					t.Errorf("Float() = %v; want 150", v.Float())
				}
			},
		},
		{
			name: "exponent without decimal point", keyword: "FLUX", value: "2E3",
			wantKey: "FLUX", wantKind: KindFloat,
			check: func(t *testing.T, v Value) {
				if v.Float() != 2000 {
					t.Errorf("Float() = %v; want 2000", v.Float())
				}
			},
		},
		{
			name: "quoted string", keyword: "OBJECT", value: "'NGC 1234'",
			wantKey: "OBJECT", wantKind: KindString,
			check: func(t *testing.T, v Value) {
				if v.Text() != "NGC 1234" {
					t.Errorf("Text() = %q; want %q", v.Text(), "NGC 1234")
				}
			},
		},
		{
			name: "doubled quote escape", keyword: "OBSERVER", value: "'O''NEILL'",
			wantKey: "OBSERVER", wantKind: KindString,
			check: func(t *testing.T, v Value) {
				if v.Text() != "O'NEILL" {
					t.Errorf("Text() = %q; want %q", v.Text(), "O'NEILL")
				}
			},
		},
		{
			name: "quoted string trailing padding", keyword: "TELESCOP", value: "'GSO 10   '",
			wantKey: "TELESCOP", wantKind: KindString,
			check: func(t *testing.T, v Value) {
				if v.Text() != "GSO 10" {
					t.Errorf("Text() = %q; want %q", v.Text(), "GSO 10")
				}
			},
		},
		{
			name: "empty value is comment", keyword: "COMMENT", value: "", comment: "free text here",
			wantKey: "COMMENT", wantKind: KindComment,
			check: func(t *testing.T, v Value) {
				if v.Text() != "free text here" {
					t.Errorf("Text() = %q", v.Text())
				}
			},
		},
		{
			name: "unparseable falls back to raw string", keyword: "CMPLX", value: "(1.0, 2.0)",
			wantKey: "CMPLX", wantKind: KindString,
			check: func(t *testing.T, v Value) {
				if v.Text() != "(1.0, 2.0)" {
					t.Errorf("Text() = %q", v.Text())
				}
			},
		},
		{
			name: "unterminated quote falls back to raw string", keyword: "BADSTR", value: "'oops",
			wantKey: "BADSTR", wantKind: KindString,
			check: func(t *testing.T, v Value) {
				if v.Text() != "'oops" {
					t.Errorf("Text() = %q", v.Text())
				}
			},
		},
		{
			name: "keyword is trimmed and uppercased", keyword: " naxis1 ", value: "800",
			wantKey: "NAXIS1", wantKind: KindInteger,
		},
		{
			name: "huge integer falls back to raw string", keyword: "BIGNUM", value: "99999999999999999999",
			wantKey: "BIGNUM", wantKind: KindString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, v := DecodeRecord(tt.keyword, tt.value, tt.comment)
			if key != tt.wantKey {
				t.Errorf("keyword = %q; want %q", key, tt.wantKey)
			}
			if v.Kind() != tt.wantKind {
				t.Fatalf("kind = %v; want %v", v.Kind(), tt.wantKind)
			}
			if tt.check != nil {
				tt.check(t, v)
			}
		})
	}
}

func TestValueDisplay(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{BooleanValue(true), "T"},
		{BooleanValue(false), "F"},
		{IntegerValue(-17), "-17"},
		{FloatValue(2.5), "2.5"},
		{StringValue("M31"), "M31"},
		{CommentValue("note"), "note"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}
