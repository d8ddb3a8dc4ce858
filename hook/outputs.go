// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

// Reject reason codes. Values are part of the protocol surface and must
// never be remapped.
const (
	CodeInvalidTxParams    uint64 = 1
	CodeMissingHookParam   uint64 = 2
	CodeMissingDestination uint64 = 3
	CodeInternalStateError uint64 = 4
	CodeOngoingRentals     uint64 = 10
	CodeURITokenOccupied   uint64 = 20
)

var (
	OutputTxAccepted          = []byte("tx accepted")
	OutputNonRentalAccepted   = []byte("non-rental tx accepted")
	OutputStartOfferAccepted  = []byte("rental start offer accepted")
	OutputReturnOfferAccepted = []byte("return offer accepted")
	OutputRentalStarted       = []byte("rental started")
	OutputRentalFinished      = []byte("rental return finalized")

	OutputOngoingRentals     = []byte("ongoing rentals: cannot mutate hook or delete account")
	OutputTokenOccupied      = []byte("token is in an ongoing rental")
	OutputInvalidParams      = []byte("invalid rental params")
	OutputMissingHookParam   = []byte("hook parameter renterNS or renterAccId missing")
	OutputMissingDestination = []byte("sell offer is missing a destination")
	OutputStateError         = []byte("could not persist rental state")
)
