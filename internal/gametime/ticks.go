package gametime

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/roach88/baktools/internal/numeric"
)

// SecondsPerTick is the game clock resolution.
const SecondsPerTick = 2

const hexPrefix = "0x"

// ErrOverflow is returned when a tick count cannot be expressed in seconds
// without overflowing int64.
var ErrOverflow = errors.New("tick count overflows seconds")

// Breakdown is a tick count expressed in every time unit.
type Breakdown struct {
	Ticks   int64   `json:"ticks"`
	Seconds int64   `json:"seconds"`
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
	Days    float64 `json:"days"`
}

// ParseTicks parses a tick count. A leading "0x" selects base 16 for the
// rest of the string; anything else is parsed as base 10.
//
// Errors are *strconv.NumError carrying the full input.
func ParseTicks(s string) (int64, error) {
	if !strings.HasPrefix(s, hexPrefix) {
		return numeric.ParseInt(s)
	}
	v, err := numeric.ParseHex(s[len(hexPrefix):])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, &strconv.NumError{Func: numErr.Func, Num: s, Err: numErr.Err}
		}
		return 0, err
	}
	return v, nil
}

// Convert expands a tick count into seconds, minutes, hours and days.
//
// Minutes and hours are the correctly rounded quotients of the exact
// second count; days are derived from the rounded hours.
func Convert(ticks int64) (Breakdown, error) {
	if ticks > math.MaxInt64/SecondsPerTick || ticks < math.MinInt64/SecondsPerTick {
		return Breakdown{}, fmt.Errorf("%d ticks: %w", ticks, ErrOverflow)
	}
	seconds := ticks * SecondsPerTick
	hours := divide(seconds, 3600)
	return Breakdown{
		Ticks:   ticks,
		Seconds: seconds,
		Minutes: divide(seconds, 60),
		Hours:   hours,
		Days:    hours / 24,
	}, nil
}

// divide returns n/d rounded once to the nearest float64. Converting n
// first would round twice once |n| exceeds 2^53.
func divide(n, d int64) float64 {
	f, _ := new(big.Rat).SetFrac64(n, d).Float64()
	return f
}

// String renders the breakdown as "d <days> h <hours> m <minutes> s <seconds>".
func (b Breakdown) String() string {
	return fmt.Sprintf("d %s h %s m %s s %d",
		FormatFloat(b.Days), FormatFloat(b.Hours), FormatFloat(b.Minutes), b.Seconds)
}

// FormatFloat renders f with the fewest digits that round-trip. The result
// always carries a decimal point or an exponent; exponent notation is used
// when the decimal exponent is below -4 or at least 16.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
