// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/xahau-rentals/renthook/xfl"
)

// Rental field names. Depending on the binding they are memo types or
// hook-parameter names; the counterparty descriptors are always hook
// parameters, matching what the transaction factory emits.
const (
	FieldRentalType   = "rental_type"
	FieldDeadlineTime = "deadline_time"
	FieldTotalAmount  = "total_amount"

	ParamRenterNS      = "renterNS"
	ParamRenterAccount = "renterAccId"
)

// RentalKind is the agreed collateral mode of a rental.
type RentalKind uint8

const (
	KindUnknown RentalKind = iota
	KindCollateralFree
	KindCollateralized
)

func (k RentalKind) String() string {
	switch k {
	case KindCollateralFree:
		return "COLLATERAL_FREE"
	case KindCollateralized:
		return "COLLATERALIZED"
	default:
		return "UNKNOWN"
	}
}

// Binding selects where rental fields are read from. Two transaction
// encodings exist in the wild: one puts them in memos, the other in
// named hook parameters. The validation rules do not change.
type Binding uint8

const (
	BindMemos Binding = iota
	BindParams
)

// NumField is a decoded decimal field. Decoding failures and values ≤ 0
// both read as absent; presence implies a positive value.
type NumField struct {
	Value   int64
	Present bool
}

// RentalParams is the rental context extracted from one transaction.
// Extraction never rejects; every field is independently optional.
type RentalParams struct {
	// KindPresent distinguishes "no rental_type field" from a field
	// carrying an unrecognized value (Kind == KindUnknown).
	Kind        RentalKind
	KindPresent bool

	Deadline NumField
	Amount   NumField

	RenterNS      *ids.ID
	RenterAccount *ids.ShortID
}

// ContextPresent reports whether every field the protocol requires for a
// rental transaction was supplied.
func (p *RentalParams) ContextPresent() bool {
	return p.KindPresent && p.DeadlineAndAmountPresent()
}

// DeadlineAndAmountPresent reports whether both numeric fields decoded
// to a positive value.
func (p *RentalParams) DeadlineAndAmountPresent() bool {
	return p.Deadline.Present && p.Amount.Present
}

// HasCounterparty reports whether both foreign-read descriptors were
// supplied.
func (p *RentalParams) HasCounterparty() bool {
	return p.RenterNS != nil && p.RenterAccount != nil
}

// ExtractRentalParams reads the rental context from a transaction using
// the given binding.
func ExtractRentalParams(tx *Transaction, b Binding) *RentalParams {
	lookup := tx.Memo
	if b == BindParams {
		lookup = tx.Param
	}

	p := &RentalParams{}
	if raw, ok := lookup(FieldRentalType); ok {
		p.KindPresent = true
		p.Kind = parseKind(raw)
	}
	p.Deadline = decodeNum(lookup(FieldDeadlineTime))
	p.Amount = decodeNum(lookup(FieldTotalAmount))

	if raw, ok := tx.Param(ParamRenterNS); ok && len(raw) == ids.IDLen {
		ns := ids.ID{}
		copy(ns[:], raw)
		p.RenterNS = &ns
	}
	if raw, ok := tx.Param(ParamRenterAccount); ok && len(raw) == ids.ShortIDLen {
		acct := ids.ShortID{}
		copy(acct[:], raw)
		p.RenterAccount = &acct
	}
	return p
}

func parseKind(raw []byte) RentalKind {
	switch string(raw) {
	case "COLLATERAL_FREE":
		return KindCollateralFree
	case "COLLATERALIZED":
		return KindCollateralized
	default:
		return KindUnknown
	}
}

func decodeNum(raw []byte, ok bool) NumField {
	if !ok {
		return NumField{}
	}
	v, err := xfl.DecodeLE(raw)
	if err != nil {
		return NumField{}
	}
	i, err := v.Int64()
	if err != nil || i <= 0 {
		return NumField{}
	}
	return NumField{Value: i, Present: true}
}
