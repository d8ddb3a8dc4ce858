// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hooktest provides a table-driven harness for exercising the
// rental engine against in-memory state.
package hooktest

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/xahau-rentals/renthook/hook"
	"github.com/xahau-rentals/renthook/state"
	"github.com/xahau-rentals/renthook/storage"
	"github.com/xahau-rentals/renthook/xfl"
)

var _ state.Mutable = (*State)(nil)

// State is a memdb-backed hook state.
type State struct {
	db database.Database
}

func NewState() *State {
	return &State{db: memdb.New()}
}

func (s *State) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return s.db.Get(key)
}

func (s *State) Insert(_ context.Context, key []byte, value []byte) error {
	return s.db.Put(key, value)
}

func (s *State) Remove(_ context.Context, key []byte) error {
	return s.db.Delete(key)
}

// Snapshot copies the full contents of the state, for before/after
// comparisons.
func (s *State) Snapshot() map[string][]byte {
	snap := make(map[string][]byte)
	it := s.db.NewIterator()
	defer it.Release()
	for it.Next() {
		v := make([]byte, len(it.Value()))
		copy(v, it.Value())
		snap[string(it.Key())] = v
	}
	return snap
}

var _ hook.ForeignReader = (Foreign)(nil)

// Foreign is a stub foreign reader backed by a map. Entries absent from
// the map read as not granted.
type Foreign map[string][]byte

func foreignKey(namespace ids.ID, account ids.ShortID, key []byte) string {
	return string(namespace[:]) + string(account[:]) + string(key)
}

func (f Foreign) ReadForeign(_ context.Context, namespace ids.ID, account ids.ShortID, key []byte) ([]byte, error) {
	v, ok := f[foreignKey(namespace, account, key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return v, nil
}

// Hold marks a token as held by the given counterparty.
func (f Foreign) Hold(namespace ids.ID, account ids.ShortID, tokenID ids.ID) {
	f[foreignKey(namespace, account, storage.CustodyKey(tokenID))] = []byte{0x1}
}

// Test is one engine invocation with an expected verdict.
type Test struct {
	Name string

	Tx         *hook.Transaction
	LedgerTime int64
	Binding    hook.Binding
	Foreign    hook.ForeignReader

	// Setup seeds the state before execution.
	Setup func(ctx context.Context, mu state.Mutable) error

	WantAccept bool
	WantCode   uint64

	// Assert inspects the state after execution.
	Assert func(ctx context.Context, require *require.Assertions, st *State)
}

// Run executes each test against a fresh state and engine.
func Run(t *testing.T, tests []Test) {
	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			st := NewState()
			if tt.Setup != nil {
				require.NoError(tt.Setup(ctx, st))
			}

			eng, err := hook.New(nil, prometheus.NewRegistry(), tt.Binding, tt.Foreign)
			require.NoError(err)

			before := st.Snapshot()
			res := eng.Execute(ctx, st, tt.Tx, tt.LedgerTime)
			require.Equal(tt.WantAccept, res.Accept, "note: %s", res.Output)
			if !tt.WantAccept {
				require.Equal(tt.WantCode, res.Code, "note: %s", res.Output)
				// A reject must be a no-op.
				require.Equal(before, st.Snapshot())
			}

			if tt.Assert != nil {
				tt.Assert(ctx, require, st)
			}
		})
	}
}

// XFL encodes an integer as little-endian XFL memo data.
func XFL(t testing.TB, v int64) []byte {
	b, err := xfl.FromInt64(v).BytesLE()
	require.NoError(t, err)
	return b
}

// RentalMemos builds the memo set of a rental transaction.
func RentalMemos(t testing.TB, kind string, deadline, amount int64) []hook.Memo {
	return []hook.Memo{
		{Type: hook.FieldRentalType, Data: []byte(kind)},
		{Type: hook.FieldDeadlineTime, Data: XFL(t, deadline)},
		{Type: hook.FieldTotalAmount, Data: XFL(t, amount)},
	}
}

// RentalParams builds the named-parameter set of a rental transaction.
func RentalParams(t testing.TB, kind string, deadline, amount int64) map[string][]byte {
	return map[string][]byte{
		hook.FieldRentalType:   []byte(kind),
		hook.FieldDeadlineTime: XFL(t, deadline),
		hook.FieldTotalAmount:  XFL(t, amount),
	}
}

// Counterparty adds the foreign-read descriptors to a parameter set.
func Counterparty(params map[string][]byte, namespace ids.ID, account ids.ShortID) map[string][]byte {
	if params == nil {
		params = make(map[string][]byte)
	}
	params[hook.ParamRenterNS] = namespace[:]
	params[hook.ParamRenterAccount] = account[:]
	return params
}
