package numlit

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want uint64
	}{
		{in: "0", want: 0},
		{in: "8", want: 8},
		{in: " 16 ", want: 16},
		{in: "+3", want: 3},
		{in: "0x1F", want: 31},
		{in: "0X10", want: 16},
		{in: "0b101", want: 5},
		{in: "0o17", want: 15},
		{in: "017", want: 15},
		{in: "1_000", want: 1000},
		{in: "'A'", want: 65},
		{in: "-1", want: ^uint64(0)},
		{in: "18446744073709551615", want: ^uint64(0)},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "  ", "zz", "0x", "0xZZ", "12a", "--1", "-", "''", "'ab'", "1.5", "18446744073709551616"} {
		in := in
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(in)

			require.Error(t, err)
			var litErr *Error
			require.True(t, errors.As(err, &litErr), "expected *numlit.Error, got %T", err)
			assert.Equal(t, in, litErr.Literal)
			assert.Contains(t, err.Error(), "invalid numeric literal")
		})
	}
}

func TestDecode_UnwrapsRangeError(t *testing.T) {
	t.Parallel()

	_, err := Decode("0x1_0000_0000_0000_0000")

	require.ErrorIs(t, err, strconv.ErrRange)
}
