// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

// Category buckets transaction types by how the rental protocol treats
// them.
type Category uint8

const (
	// CategoryUnclassified traffic passes through untouched.
	CategoryUnclassified Category = iota

	// CategoryAccountMutation could disable the hook or delete the
	// account and is gated on having no rentals in progress.
	CategoryAccountMutation

	// CategoryTokenCloseAttempt is a purchase, which in this protocol
	// always transfers custody: it starts or finishes a rental.
	CategoryTokenCloseAttempt

	// CategoryOfferLifecycle covers offer creation/cancellation and
	// burns: validated, but custody never changes here.
	CategoryOfferLifecycle
)

func (c Category) String() string {
	switch c {
	case CategoryAccountMutation:
		return "accountMutation"
	case CategoryTokenCloseAttempt:
		return "tokenCloseAttempt"
	case CategoryOfferLifecycle:
		return "offerLifecycle"
	default:
		return "unclassified"
	}
}

// Classify maps a transaction type to its protocol category. Total over
// TxType; unknown types land in CategoryUnclassified.
func Classify(t TxType) Category {
	switch t {
	case TxAccountDelete, TxSetHook:
		return CategoryAccountMutation
	case TxURITokenBuy:
		return CategoryTokenCloseAttempt
	case TxURITokenCreateSellOffer, TxURITokenCancelSellOffer, TxURITokenBurn:
		return CategoryOfferLifecycle
	default:
		return CategoryUnclassified
	}
}
