package gametime

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicks(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"60", 60},
		{"0x3c", 60},
		{"0x3C", 60},
		{"0", 0},
		{"0x0", 0},
		{"-60", -60},
		{"+60", 60},
		{"0x7fffffffffffffff", math.MaxInt64},
		{"060", 60},
		{" 60", 60},
		{"1_000", 1000},
		{"0x_3c", 60},
		{"0x3c\n", 60},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTicks(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTicksErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", strconv.ErrSyntax},
		{"abc", strconv.ErrSyntax},
		{"3c", strconv.ErrSyntax},
		{"0x", strconv.ErrSyntax},
		{"0xzz", strconv.ErrSyntax},
		{"0x-3c", strconv.ErrSyntax},
		{"0X3c", strconv.ErrSyntax},
		{"-0x3c", strconv.ErrSyntax},
		{"1.5", strconv.ErrSyntax},
		{"0x 3c", strconv.ErrSyntax},
		{"0x3c_", strconv.ErrSyntax},
		{"1__000", strconv.ErrSyntax},
		{"99999999999999999999", strconv.ErrRange},
		{"0x10000000000000000", strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseTicks(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var numErr *strconv.NumError
			require.True(t, errors.As(err, &numErr))
			assert.Equal(t, tt.input, numErr.Num)
		})
	}
}

func TestConvert(t *testing.T) {
	b, err := Convert(60)
	require.NoError(t, err)
	assert.Equal(t, int64(60), b.Ticks)
	assert.Equal(t, int64(120), b.Seconds)
	assert.Equal(t, 2.0, b.Minutes)
	assert.InDelta(t, 1.0/30, b.Hours, 1e-15)
	assert.InDelta(t, 1.0/720, b.Days, 1e-15)
}

func TestConvertProperties(t *testing.T) {
	for _, ticks := range []int64{-86400, -60, -1, 0, 1, 7, 60, 43200, 1 << 40} {
		b, err := Convert(ticks)
		require.NoError(t, err)
		assert.Equal(t, 2*ticks, b.Seconds)
		assert.Equal(t, float64(b.Seconds)/60, b.Minutes)
		assert.Equal(t, float64(b.Seconds)/3600, b.Hours)
		assert.Equal(t, b.Hours/24, b.Days)
	}
}

func TestConvertNegativePropagates(t *testing.T) {
	b, err := Convert(-60)
	require.NoError(t, err)
	assert.Equal(t, int64(-120), b.Seconds)
	assert.Equal(t, -2.0, b.Minutes)
	assert.Less(t, b.Hours, 0.0)
	assert.Less(t, b.Days, 0.0)
}

func TestConvertOverflow(t *testing.T) {
	_, err := Convert(math.MaxInt64/2 + 1)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Convert(math.MinInt64/2 - 1)
	assert.ErrorIs(t, err, ErrOverflow)

	b, err := Convert(math.MinInt64 / 2)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), b.Seconds)
}

func TestBreakdownString(t *testing.T) {
	tests := []struct {
		ticks int64
		want  string
	}{
		{60, "d 0.001388888888888889 h 0.03333333333333333 m 2.0 s 120"},
		{-60, "d -0.001388888888888889 h -0.03333333333333333 m -2.0 s -120"},
		{0, "d 0.0 h 0.0 m 0.0 s 0"},
		{1, "d 2.3148148148148147e-05 h 0.0005555555555555556 m 0.03333333333333333 s 2"},
		{7, "d 0.00016203703703703703 h 0.0038888888888888888 m 0.23333333333333334 s 14"},
		{30, "d 0.0006944444444444445 h 0.016666666666666666 m 1.0 s 60"},
		{43200, "d 1.0 h 24.0 m 1440.0 s 86400"},
		// seconds beyond 2^53 are not exactly representable as float64
		{9007199254740993, "d 208499982748.63412 h 5003999585967.219 m 300239975158033.1 s 18014398509481986"},
		{-9007199254740993, "d -208499982748.63412 h -5003999585967.219 m -300239975158033.1 s -18014398509481986"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.ticks, 10), func(t *testing.T) {
			b, err := Convert(tt.ticks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestHexAndDecimalAgree(t *testing.T) {
	hex, err := ParseTicks("0x3c")
	require.NoError(t, err)
	dec, err := ParseTicks("60")
	require.NoError(t, err)

	hb, err := Convert(hex)
	require.NoError(t, err)
	db, err := Convert(dec)
	require.NoError(t, err)
	assert.Equal(t, db.String(), hb.String())
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{2, "2.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{0.0001, "0.0001"},
		{1e-5, "1e-05"},
		{5e-5, "5e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1666666666666666.8, "1666666666666666.8"},
		{1.2345678901234568e+17, "1.2345678901234568e+17"},
		{0.03333333333333333, "0.03333333333333333"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}
