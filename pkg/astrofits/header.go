package astrofits

import (
	"strconv"
	"strings"
)

// DecodeRecord classifies the raw textual triple of one header record into a
// normalized keyword and a typed Value. The rules are evaluated in order:
//
//  1. empty value field        -> Comment holding the comment text
//  2. bare T or F              -> Boolean
//  3. integer literal          -> Integer
//  4. floating-point literal   -> Float (FITS D exponents accepted)
//  5. single-quoted string     -> String, quotes stripped, '' unescaped
//  6. anything else            -> String holding the raw trimmed field
//
// Rule 6 makes the decoder total: a malformed record degrades to its raw
// text instead of failing the whole header.
func DecodeRecord(keyword, value, comment string) (string, Value) {
	key := NormalizeKeyword(keyword)
	v := strings.TrimSpace(value)

	switch v {
	case "":
		return key, CommentValue(strings.TrimSpace(comment))
	case "T":
		return key, BooleanValue(true)
	case "F":
		return key, BooleanValue(false)
	}
	if isIntegerLiteral(v) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return key, IntegerValue(n)
		}
	}
	if f, ok := parseFloatLiteral(v); ok {
		return key, FloatValue(f)
	}
	if s, ok := unquote(v); ok {
		return key, StringValue(s)
	}
	return key, StringValue(v)
}

// isIntegerLiteral reports whether s is an optional sign followed by digits
// only. Decimal points and exponents disqualify it so that such values fall
// through to the float rule.
func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseFloatLiteral parses a FITS floating-point value field. The standard
// allows D as an exponent marker equivalent to E.
func parseFloatLiteral(s string) (float64, bool) {
	first := s[0]
	if (first < '0' || first > '9') && first != '+' && first != '-' && first != '.' {
		return 0, false
	}
	if !strings.ContainsAny(s, ".eEdD") {
		return 0, false
	}
	s = strings.Replace(s, "D", "E", 1)
	s = strings.Replace(s, "d", "e", 1)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// unquote strips the FITS single-quote string convention, resolving doubled
// quotes to a literal quote and trimming trailing padding. It runs a small
// three-state scan so that quotes embedded in the text are handled exactly.
func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '\'' {
		return "", false
	}
	var b strings.Builder
	state := 1 // 0: before open quote, 1: in string, 2: just saw a quote
	for _, c := range s[1:] {
		quote := c == '\''
		switch state {
		case 1:
			if quote {
				state = 2
			} else {
				b.WriteRune(c)
			}
		case 2:
			if quote {
				b.WriteRune('\'')
				state = 1
			} else {
				// closing quote followed by trailing text; tolerate it
				return strings.TrimRight(b.String(), " "), true
			}
		}
	}
	if state != 2 {
		return "", false // never closed
	}
	return strings.TrimRight(b.String(), " "), true
}
