// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
)

// ForeignReader reads another account's hook state. The read works only
// under an out-of-band grant from the owning account; "not granted" is
// indistinguishable from "not found" and both surface as
// database.ErrNotFound.
type ForeignReader interface {
	ReadForeign(ctx context.Context, namespace ids.ID, account ids.ShortID, key []byte) ([]byte, error)
}
