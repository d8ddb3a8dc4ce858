// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
)

// Immutable is a read-only view of an account's hook state. Lookups for
// keys that have never been written return database.ErrNotFound; absence
// of a key is the canonical "free" state.
type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

// Mutable is an account's hook state. The host ledger scopes an instance
// to a single account; keys never encode the owner.
type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}
