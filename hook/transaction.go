// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"github.com/ava-labs/avalanchego/ids"
)

// TxType is the closed set of ledger transaction types this protocol
// reacts to. Anything the host parses that is not listed here arrives as
// TxOther.
type TxType uint8

const (
	TxOther TxType = iota
	TxURITokenBuy
	TxURITokenCreateSellOffer
	TxURITokenCancelSellOffer
	TxURITokenBurn
	TxAccountDelete
	TxSetHook
)

func (t TxType) String() string {
	switch t {
	case TxURITokenBuy:
		return "URITokenBuy"
	case TxURITokenCreateSellOffer:
		return "URITokenCreateSellOffer"
	case TxURITokenCancelSellOffer:
		return "URITokenCancelSellOffer"
	case TxURITokenBurn:
		return "URITokenBurn"
	case TxAccountDelete:
		return "AccountDelete"
	case TxSetHook:
		return "SetHook"
	default:
		return "Other"
	}
}

// Memo is one entry of a transaction's memo set.
type Memo struct {
	Type string
	Data []byte
}

// Transaction is the host ledger's parsed view of the transaction under
// evaluation. Optional ledger fields are pointers; nil means the field
// was not present on the wire.
type Transaction struct {
	Type TxType

	// Account is the transaction's originator. Closing requests are held
	// to the stricter offer-shape checks when it is the custodian.
	Account ids.ShortID

	// Destination is required on sell offers in rental context.
	Destination *ids.ShortID

	// TokenID is the URIToken the transaction references, if any.
	TokenID *ids.ID

	// Amount is the settlement amount in drops. Value transfer itself is
	// the ledger's business; the hook only inspects it.
	Amount uint64

	Memos  []Memo
	Params map[string][]byte
}

// Memo returns the data of the first memo with the given type.
func (t *Transaction) Memo(name string) ([]byte, bool) {
	for _, m := range t.Memos {
		if m.Type == name {
			return m.Data, true
		}
	}
	return nil, false
}

// Param returns the named hook parameter.
func (t *Transaction) Param(name string) ([]byte, bool) {
	v, ok := t.Params[name]
	return v, ok
}
