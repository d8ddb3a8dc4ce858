// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers writes on top of a base state. Nothing reaches
// the base until Commit, so discarding the overlay makes a rejected
// transaction indistinguishable from a no-op.
type SimpleMutable struct {
	base Mutable

	changes map[string]*changeOp
}

func NewSimpleMutable(base Mutable) *SimpleMutable {
	return &SimpleMutable{base, make(map[string]*changeOp)}
}

func (s *SimpleMutable) GetValue(ctx context.Context, k []byte) ([]byte, error) {
	if op, ok := s.changes[string(k)]; ok {
		if op.delete {
			return nil, database.ErrNotFound
		}
		return op.value, nil
	}
	return s.base.GetValue(ctx, k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &changeOp{value: v}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &changeOp{delete: true}
	return nil
}

type undoOp struct {
	value  []byte
	absent bool
}

// Commit applies buffered changes to the base in key order, all or
// nothing: if the base fails partway the already applied changes are
// restored from an undo log, so a failed commit never leaves the
// custody record and counter half written.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	keys := maps.Keys(s.changes)
	slices.Sort(keys)

	// Record prior values first; a failed read aborts before any write.
	undo := make([]undoOp, len(keys))
	for i, k := range keys {
		v, err := s.base.GetValue(ctx, []byte(k))
		switch {
		case errors.Is(err, database.ErrNotFound):
			undo[i].absent = true
		case err != nil:
			return err
		default:
			undo[i].value = v
		}
	}

	for i, k := range keys {
		op := s.changes[k]
		var err error
		if op.delete {
			err = s.base.Remove(ctx, []byte(k))
		} else {
			err = s.base.Insert(ctx, []byte(k), op.value)
		}
		if err == nil {
			continue
		}
		if rerr := s.rollback(ctx, keys[:i], undo[:i]); rerr != nil {
			return fmt.Errorf("commit failed: %w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	s.changes = make(map[string]*changeOp)
	return nil
}

func (s *SimpleMutable) rollback(ctx context.Context, keys []string, undo []undoOp) error {
	for i := len(keys) - 1; i >= 0; i-- {
		if undo[i].absent {
			if err := s.base.Remove(ctx, []byte(keys[i])); err != nil {
				return err
			}
			continue
		}
		if err := s.base.Insert(ctx, []byte(keys[i]), undo[i].value); err != nil {
			return err
		}
	}
	return nil
}
