// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package xfl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The canonical enclosing number for 1, as produced by the ledger's own
// float implementation.
const floatOne uint64 = 6089866696204910592

func TestFloatOne(t *testing.T) {
	require := require.New(t)

	raw, err := FromInt64(1).Raw()
	require.NoError(err)
	require.Equal(floatOne, raw)

	v, err := Parse(floatOne)
	require.NoError(err)
	i, err := v.Int64()
	require.NoError(err)
	require.Equal(int64(1), i)
}

func TestRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, i := range []int64{1, 5, 10, 86_400, 90_000, 946_684_800, 1_700_000_000, -42} {
		b, err := FromInt64(i).BytesLE()
		require.NoError(err)

		v, err := DecodeLE(b)
		require.NoError(err)

		got, err := v.Int64()
		require.NoError(err)
		require.Equal(i, got, "value %d", i)
	}
}

func TestZero(t *testing.T) {
	require := require.New(t)

	v, err := Parse(0)
	require.NoError(err)
	require.True(v.Zero())

	i, err := v.Int64()
	require.NoError(err)
	require.Zero(i)

	raw, err := FromInt64(0).Raw()
	require.NoError(err)
	require.Zero(raw)
}

func TestTruncation(t *testing.T) {
	require := require.New(t)

	// 1.5 = 15 * 10^-1, normalized.
	v := Value{Mantissa: 1_500_000_000_000_000, Exponent: -15}
	i, err := v.Int64()
	require.NoError(err)
	require.Equal(int64(1), i)
}

func TestParseRejectsSentinels(t *testing.T) {
	require := require.New(t)

	_, err := Parse(1 << 63)
	require.ErrorIs(err, ErrNotAnXFL)

	// Denormal mantissa.
	_, err = Parse(signBit | 1)
	require.ErrorIs(err, ErrNotAnXFL)

	_, err = DecodeLE([]byte{0x01})
	require.ErrorIs(err, ErrShortBuffer)
}

func TestOverflow(t *testing.T) {
	require := require.New(t)

	v := Value{Mantissa: maxMantissa, Exponent: 10}
	_, err := v.Int64()
	require.ErrorIs(err, ErrOverflow)
}
