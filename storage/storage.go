// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

// Contains read/write logic for the per-account rental state.
package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/xahau-rentals/renthook/consts"
	"github.com/xahau-rentals/renthook/state"
)

// State (scoped to the hook account by the host ledger)
// 0x0/ (custody)
//   -> [tokenID] => deadline
// 0x1/ (rental count)
//   -> => count
const (
	custodyPrefix     = 0x0
	rentalCountPrefix = 0x1
)

var rentalCountKey = []byte{rentalCountPrefix}

// [custodyPrefix] + [tokenID]
func CustodyKey(tokenID ids.ID) (k []byte) {
	k = make([]byte, 1+ids.IDLen)
	k[0] = custodyPrefix
	copy(k[1:], tokenID[:])
	return
}

// GetCustody returns the recorded deadline for a token. A missing record
// means the token is free.
func GetCustody(
	ctx context.Context,
	im state.Immutable,
	tokenID ids.ID,
) (deadline int64, exists bool, err error) {
	v, err := im.GetValue(ctx, CustodyKey(tokenID))
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if len(v) != consts.Uint64Len {
		return 0, false, ErrInvalidCustodyRecord
	}
	return int64(binary.BigEndian.Uint64(v)), true, nil
}

func SetCustody(
	ctx context.Context,
	mu state.Mutable,
	tokenID ids.ID,
	deadline int64,
) error {
	v := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(v, uint64(deadline))
	return mu.Insert(ctx, CustodyKey(tokenID), v)
}

func DeleteCustody(
	ctx context.Context,
	mu state.Mutable,
	tokenID ids.ID,
) error {
	return mu.Remove(ctx, CustodyKey(tokenID))
}

// GetRentalCount returns the number of rentals currently in progress. A
// missing counter reads as zero.
func GetRentalCount(
	ctx context.Context,
	im state.Immutable,
) (uint64, error) {
	v, err := im.GetValue(ctx, rentalCountKey)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != consts.Uint64Len {
		return 0, ErrInvalidRentalCount
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetRentalCount(
	ctx context.Context,
	mu state.Mutable,
	count uint64,
) error {
	v := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(v, count)
	return mu.Insert(ctx, rentalCountKey, v)
}

// AddRental records custody of a token and bumps the rental counter. The
// caller is expected to run this inside a state overlay so both writes
// land together or not at all.
func AddRental(
	ctx context.Context,
	mu state.Mutable,
	tokenID ids.ID,
	deadline int64,
) error {
	count, err := GetRentalCount(ctx, mu)
	if err != nil {
		return err
	}
	ncount, err := smath.Add64(count, 1)
	if err != nil {
		return err
	}
	if err := SetCustody(ctx, mu, tokenID, deadline); err != nil {
		return err
	}
	return SetRentalCount(ctx, mu, ncount)
}

// RemoveRental deletes a token's custody record and decrements the
// rental counter, flooring at zero.
func RemoveRental(
	ctx context.Context,
	mu state.Mutable,
	tokenID ids.ID,
) error {
	count, err := GetRentalCount(ctx, mu)
	if err != nil {
		return err
	}
	if count > 0 {
		count--
	}
	if err := DeleteCustody(ctx, mu, tokenID); err != nil {
		return err
	}
	return SetRentalCount(ctx, mu, count)
}
