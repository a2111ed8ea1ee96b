package radix_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polyshare/internal/radix"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		base  int
		want  string // decimal
	}{
		{"decimal", "12345", 10, "12345"},
		{"binary", "111", 2, "7"},
		{"hex lowercase", "ff", 16, "255"},
		{"hex uppercase", "FF", 16, "255"},
		{"mixed case base 36", "Zz", 36, "1295"},
		{"base 15 sample share", "aed7015a346d635", 15, "320923294898495900"},
		{"leading zeros", "000101", 2, "5"},
		{"negative", "-ff", 16, "-255"},
		{"zero", "0", 7, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := radix.Parse(tc.input, tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		base    int
		wantErr error
	}{
		{"base too small", "101", 1, radix.ErrBaseRange},
		{"base too large", "101", 37, radix.ErrBaseRange},
		{"empty", "", 10, radix.ErrEmptyDigits},
		{"digit out of range", "129", 8, nil},
		{"letter in decimal", "12a", 10, nil},
		{"whitespace", " 12", 10, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := radix.Parse(tc.input, tc.base)
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestFormat_BaseRange(t *testing.T) {
	_, err := radix.Format(big.NewInt(5), 1)
	assert.ErrorIs(t, err, radix.ErrBaseRange)
	_, err = radix.Format(big.NewInt(5), 37)
	assert.ErrorIs(t, err, radix.ErrBaseRange)
}

func TestRoundTrip(t *testing.T) {
	// Decoding then re-encoding returns the same digits modulo leading
	// zeros and letter case.
	inputs := []struct {
		digits string
		base   int
	}{
		{"6aeeb69631c227c", 16},
		{"6AEEB69631C227C", 16},
		{"0011111101", 2},
		{"zyxwv", 36},
		{"777", 8},
		{"123456789", 10},
	}

	for _, tc := range inputs {
		x, err := radix.Parse(tc.digits, tc.base)
		require.NoError(t, err)

		out, err := radix.Format(x, tc.base)
		require.NoError(t, err)

		want := strings.TrimLeft(strings.ToLower(tc.digits), "0")
		assert.Equal(t, want, out, "base %d", tc.base)

		back, err := radix.Parse(out, tc.base)
		require.NoError(t, err)
		assert.Zero(t, x.Cmp(back))
	}
}

func TestRoundTrip_AllBases(t *testing.T) {
	x, ok := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	require.True(t, ok)

	for base := radix.MinBase; base <= radix.MaxBase; base++ {
		s, err := radix.Format(x, base)
		require.NoError(t, err)

		back, err := radix.Parse(strings.ToUpper(s), base)
		require.NoError(t, err)
		assert.Zero(t, x.Cmp(back), "base %d", base)
	}
}
