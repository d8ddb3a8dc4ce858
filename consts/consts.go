// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name = "renthook"

	// ConfirmationBuffer covers the gap between the last closed ledger
	// and the ledger the transaction lands in.
	ConfirmationBuffer int64 = 10

	// MinRentalPeriod is the shortest rental term the protocol accepts.
	MinRentalPeriod int64 = 86_400

	// LedgerEpochOffset converts ledger-reported time (seconds since the
	// ledger epoch) to Unix time.
	LedgerEpochOffset int64 = 946_684_800
)

const Uint64Len = 8

// ToUnixTime converts a ledger close time to Unix seconds.
func ToUnixTime(ledgerTime int64) int64 {
	return ledgerTime + LedgerEpochOffset
}
