// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"
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

func TestSimpleMutableReadsThrough(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	base := mapState{"a": []byte{0x1}}
	sm := NewSimpleMutable(base)

	v, err := sm.GetValue(ctx, []byte("a"))
	require.NoError(err)
	require.Equal([]byte{0x1}, v)

	_, err = sm.GetValue(ctx, []byte("b"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestSimpleMutableBuffersUntilCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	base := mapState{"a": []byte{0x1}}
	sm := NewSimpleMutable(base)

	require.NoError(sm.Insert(ctx, []byte("b"), []byte{0x2}))
	require.NoError(sm.Remove(ctx, []byte("a")))

	// Overlay sees the changes.
	v, err := sm.GetValue(ctx, []byte("b"))
	require.NoError(err)
	require.Equal([]byte{0x2}, v)
	_, err = sm.GetValue(ctx, []byte("a"))
	require.ErrorIs(err, database.ErrNotFound)

	// Base does not, until commit.
	require.Contains(base, "a")
	require.NotContains(base, "b")

	require.NoError(sm.Commit(ctx))
	require.NotContains(base, "a")
	require.Equal([]byte{0x2}, base["b"])
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	base := mapState{"a": []byte{0x1}}
	sm := NewSimpleMutable(base)
	require.NoError(sm.Remove(ctx, []byte("a")))
	require.NoError(sm.Insert(ctx, []byte("b"), []byte{0x2}))

	// Without a commit the base never changes.
	require.Equal(mapState{"a": []byte{0x1}}, base)
}

var errInsertFailed = errors.New("insert failed")

type faultyBase struct {
	mapState

	failOnKey string
}

func (f *faultyBase) Insert(ctx context.Context, key []byte, value []byte) error {
	if string(key) == f.failOnKey {
		return errInsertFailed
	}
	return f.mapState.Insert(ctx, key, value)
}

func TestSimpleMutableCommitRollsBack(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	base := &faultyBase{
		mapState:  mapState{"a": []byte{0x1}},
		failOnKey: "c",
	}
	sm := NewSimpleMutable(base)
	require.NoError(sm.Remove(ctx, []byte("a")))
	require.NoError(sm.Insert(ctx, []byte("b"), []byte{0x2}))
	require.NoError(sm.Insert(ctx, []byte("c"), []byte{0x3}))

	// "a" and "b" land before "c" fails; both must be restored.
	err := sm.Commit(ctx)
	require.ErrorIs(err, errInsertFailed)
	require.Equal(mapState{"a": []byte{0x1}}, base.mapState)
}

func TestSimpleMutableOverwrite(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	base := mapState{}
	sm := NewSimpleMutable(base)
	require.NoError(sm.Insert(ctx, []byte("k"), []byte{0x1}))
	require.NoError(sm.Insert(ctx, []byte("k"), []byte{0x2}))
	require.NoError(sm.Commit(ctx))
	require.Equal([]byte{0x2}, base["k"])
}
