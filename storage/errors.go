// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInvalidCustodyRecord = errors.New("invalid custody record")
	ErrInvalidRentalCount   = errors.New("invalid rental count")
)
