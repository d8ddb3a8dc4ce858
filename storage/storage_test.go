// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/xahau-rentals/renthook/state"
)

type mapState map[string][]byte

func (m mapState) GetValue(_ context.Context, key []byte) ([]byte, error) {
	v, ok := m[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

func (m mapState) Insert(_ context.Context, key []byte, value []byte) error {
	m[string(key)] = value
	return nil
}

func (m mapState) Remove(_ context.Context, key []byte) error {
	delete(m, string(key))
	return nil
}

var _ state.Mutable = (mapState)(nil)

func TestCustodyLifecycle(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := mapState{}
	tokenID := ids.ID{0x1}

	_, exists, err := GetCustody(ctx, mu, tokenID)
	require.NoError(err)
	require.False(exists)

	require.NoError(SetCustody(ctx, mu, tokenID, 1_700_000_000))
	deadline, exists, err := GetCustody(ctx, mu, tokenID)
	require.NoError(err)
	require.True(exists)
	require.Equal(int64(1_700_000_000), deadline)

	require.NoError(DeleteCustody(ctx, mu, tokenID))
	_, exists, err = GetCustody(ctx, mu, tokenID)
	require.NoError(err)
	require.False(exists)
}

func TestCustodyRejectsMalformedRecord(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := mapState{}
	tokenID := ids.ID{0x1}

	require.NoError(mu.Insert(ctx, CustodyKey(tokenID), []byte{0x1, 0x2}))
	_, _, err := GetCustody(ctx, mu, tokenID)
	require.ErrorIs(err, ErrInvalidCustodyRecord)
}

func TestRentalCount(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := mapState{}

	count, err := GetRentalCount(ctx, mu)
	require.NoError(err)
	require.Zero(count)

	require.NoError(SetRentalCount(ctx, mu, 3))
	count, err = GetRentalCount(ctx, mu)
	require.NoError(err)
	require.Equal(uint64(3), count)
}

func TestAddRemoveRental(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := mapState{}
	a := ids.ID{0xa}
	b := ids.ID{0xb}

	require.NoError(AddRental(ctx, mu, a, 100))
	require.NoError(AddRental(ctx, mu, b, 200))
	count, err := GetRentalCount(ctx, mu)
	require.NoError(err)
	require.Equal(uint64(2), count)

	require.NoError(RemoveRental(ctx, mu, a))
	count, err = GetRentalCount(ctx, mu)
	require.NoError(err)
	require.Equal(uint64(1), count)
	_, exists, err := GetCustody(ctx, mu, a)
	require.NoError(err)
	require.False(exists)

	// The counter floors at zero even if it drifted low.
	require.NoError(SetRentalCount(ctx, mu, 0))
	require.NoError(RemoveRental(ctx, mu, b))
	count, err = GetRentalCount(ctx, mu)
	require.NoError(err)
	require.Zero(count)
}
