// Package numeric parses the integer arguments of the command-line tools.
//
// Surrounding whitespace is ignored and a single "_" may separate two
// digits ("1_000"). Errors are *strconv.NumError carrying the full input.
package numeric

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseInt parses an optionally signed base-10 integer.
func ParseInt(s string) (int64, error) {
	t := strings.TrimSpace(s)
	sign := ""
	if t != "" && (t[0] == '+' || t[0] == '-') {
		sign, t = t[:1], t[1:]
	}
	digits, ok := stripSeparators(t, false)
	if !ok {
		return 0, syntaxError(s)
	}
	v, err := strconv.ParseInt(sign+digits, 10, 64)
	return v, withInput(s, err)
}

// ParseHex parses the digits that follow a "0x" prefix. No sign is
// accepted; one "_" may directly follow the prefix and trailing
// whitespace is ignored.
func ParseHex(s string) (int64, error) {
	t := strings.TrimRightFunc(s, unicode.IsSpace)
	if strings.HasPrefix(t, "-") || strings.HasPrefix(t, "+") {
		return 0, syntaxError(s)
	}
	digits, ok := stripSeparators(t, true)
	if !ok {
		return 0, syntaxError(s)
	}
	v, err := strconv.ParseInt(digits, 16, 64)
	return v, withInput(s, err)
}

// stripSeparators removes "_" separators that sit between two digits.
func stripSeparators(t string, leading bool) (string, bool) {
	if leading {
		t = strings.TrimPrefix(t, "_")
	}
	if !strings.Contains(t, "_") {
		return t, true
	}
	var b strings.Builder
	for i := 0; i < len(t); i++ {
		if t[i] != '_' {
			b.WriteByte(t[i])
			continue
		}
		if i == 0 || i == len(t)-1 || t[i-1] == '_' {
			return "", false
		}
	}
	return b.String(), true
}

func syntaxError(s string) error {
	return &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrSyntax}
}

func withInput(s string, err error) error {
	if numErr, ok := err.(*strconv.NumError); ok {
		return &strconv.NumError{Func: numErr.Func, Num: s, Err: numErr.Err}
	}
	return err
}
