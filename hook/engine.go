// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/xahau-rentals/renthook/consts"
	"github.com/xahau-rentals/renthook/state"
	"github.com/xahau-rentals/renthook/storage"
)

type mutation uint8

const (
	mutNone mutation = iota
	mutStart
	mutClose
)

// Engine is the rental state machine. One Execute call evaluates one
// transaction against the hook account's state and returns the verdict;
// on accept it also applies the custody mutations that accompany it.
//
// The host ledger serializes invocations per account, so the engine
// holds no locks and keeps no cross-invocation state of its own.
type Engine struct {
	log     *zap.Logger
	metrics *metrics
	binding Binding
	foreign ForeignReader
}

func New(log *zap.Logger, r prometheus.Registerer, binding Binding, foreign ForeignReader) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if r == nil {
		r = prometheus.NewRegistry()
	}
	m, err := newMetrics(r)
	if err != nil {
		return nil, err
	}
	return &Engine{
		log:     log,
		metrics: m,
		binding: binding,
		foreign: foreign,
	}, nil
}

// Execute evaluates tx against mu. [ledgerTime] is the close time of the
// last ledger, in ledger epoch seconds. Mutations are buffered and reach
// mu only when the verdict is accept; a reject leaves mu untouched.
func (e *Engine) Execute(ctx context.Context, mu state.Mutable, tx *Transaction, ledgerTime int64) *Result {
	now := consts.ToUnixTime(ledgerTime)
	sm := state.NewSimpleMutable(mu)

	res, mut, err := e.run(ctx, sm, tx, now)
	switch {
	case err != nil:
		e.log.Error("state access failed", zap.Stringer("type", tx.Type), zap.Error(err))
		res = Rejected(CodeInternalStateError, OutputStateError)
	case res.Accept:
		if err := sm.Commit(ctx); err != nil {
			e.log.Error("state commit failed", zap.Stringer("type", tx.Type), zap.Error(err))
			res = Rejected(CodeInternalStateError, OutputStateError)
			break
		}
		switch mut {
		case mutStart:
			e.metrics.rentalsStarted.Inc()
		case mutClose:
			e.metrics.rentalsClosed.Inc()
		}
	}

	e.metrics.observe(res)
	e.log.Debug("verdict",
		zap.Stringer("type", tx.Type),
		zap.Bool("accept", res.Accept),
		zap.Uint64("code", res.Code),
		zap.ByteString("note", res.Output),
	)
	return res
}

func (e *Engine) run(ctx context.Context, mu state.Mutable, tx *Transaction, now int64) (*Result, mutation, error) {
	switch Classify(tx.Type) {
	case CategoryAccountMutation:
		// Deleting the account or redefining the hook mid-rental would
		// let the owner take the asset back out of band.
		count, err := storage.GetRentalCount(ctx, mu)
		if err != nil {
			return nil, mutNone, err
		}
		if count > 0 {
			return Rejected(CodeOngoingRentals, OutputOngoingRentals), mutNone, nil
		}
		return Accepted(OutputTxAccepted), mutNone, nil
	case CategoryUnclassified:
		return Accepted(OutputTxAccepted), mutNone, nil
	}

	var (
		recDeadline int64
		recExists   bool
	)
	if tx.TokenID != nil {
		var err error
		recDeadline, recExists, err = storage.GetCustody(ctx, mu, *tx.TokenID)
		if err != nil {
			return nil, mutNone, err
		}
	}

	// The counterparty relies on custody staying put until the
	// deadline-based return path runs; cancelling the offer or burning
	// the token would break the agreement unilaterally.
	if (tx.Type == TxURITokenCancelSellOffer || tx.Type == TxURITokenBurn) && recExists {
		return Rejected(CodeOngoingRentals, OutputOngoingRentals), mutNone, nil
	}

	params := ExtractRentalParams(tx, e.binding)
	if !params.ContextPresent() {
		if recExists {
			// Acting on a token mid-rental without presenting rental
			// context is vetoed outright.
			return Rejected(CodeURITokenOccupied, OutputTokenOccupied), mutNone, nil
		}
		return Accepted(OutputNonRentalAccepted), mutNone, nil
	}

	if params.Kind == KindUnknown {
		return Rejected(CodeInvalidTxParams, OutputInvalidParams), mutNone, nil
	}
	if tx.TokenID == nil {
		return Rejected(CodeInvalidTxParams, OutputInvalidParams), mutNone, nil
	}

	foreignHeld := false
	if e.foreign != nil && params.HasCounterparty() {
		v, err := e.foreign.ReadForeign(ctx, *params.RenterNS, *params.RenterAccount, storage.CustodyKey(*tx.TokenID))
		if err != nil {
			// Not granted reads the same as not found.
			e.log.Debug("foreign read failed", zap.Error(err))
		}
		foreignHeld = err == nil && len(v) > 0
	}

	if recExists && foreignHeld {
		return e.runClose(ctx, mu, tx, params, recDeadline, now)
	}
	return e.runStart(ctx, mu, tx, params, recExists, now)
}

// runClose handles a return attempt: the local record and the
// counterparty's store both show the token out on rental.
func (e *Engine) runClose(
	ctx context.Context,
	mu state.Mutable,
	tx *Transaction,
	params *RentalParams,
	recDeadline int64,
	now int64,
) (*Result, mutation, error) {
	// The custodian must present the agreement exactly as recorded and
	// settle for free. Requests from any other originator are governed
	// by readiness and the counterparty confirmation alone.
	if tx.Account == *params.RenterAccount {
		if params.Deadline.Value != recDeadline {
			return Rejected(CodeInvalidTxParams, OutputInvalidParams), mutNone, nil
		}
		if tx.Amount != 0 {
			return Rejected(CodeInvalidTxParams, OutputInvalidParams), mutNone, nil
		}
	}
	if tx.Type == TxURITokenCreateSellOffer && tx.Destination == nil {
		return Rejected(CodeMissingDestination, OutputMissingDestination), mutNone, nil
	}

	count, err := storage.GetRentalCount(ctx, mu)
	if err != nil {
		return nil, mutNone, err
	}
	if count == 0 || recDeadline > now+consts.ConfirmationBuffer {
		// Term has not elapsed yet.
		return Rejected(CodeURITokenOccupied, OutputTokenOccupied), mutNone, nil
	}

	if tx.Type == TxURITokenBuy {
		if err := storage.RemoveRental(ctx, mu, *tx.TokenID); err != nil {
			return nil, mutNone, err
		}
		return Accepted(OutputRentalFinished), mutClose, nil
	}
	return Accepted(OutputReturnOfferAccepted), mutNone, nil
}

// runStart handles a rental-start attempt, including the degenerate case
// of a start attempt against a token that is already out (recExists).
func (e *Engine) runStart(
	ctx context.Context,
	mu state.Mutable,
	tx *Transaction,
	params *RentalParams,
	recExists bool,
	now int64,
) (*Result, mutation, error) {
	minDeadline := now + consts.ConfirmationBuffer + consts.MinRentalPeriod
	if params.Deadline.Value < minDeadline {
		return Rejected(CodeInvalidTxParams, OutputInvalidParams), mutNone, nil
	}
	// Amount > 0 is implied by presence.

	if tx.Type == TxURITokenCreateSellOffer {
		if tx.Destination == nil {
			return Rejected(CodeMissingDestination, OutputMissingDestination), mutNone, nil
		}
		if !recExists && !params.HasCounterparty() {
			return Rejected(CodeMissingHookParam, OutputMissingHookParam), mutNone, nil
		}
	}

	if recExists {
		// A new rental cannot start while the token is out and the
		// counterparty does not confirm a return.
		return Rejected(CodeURITokenOccupied, OutputTokenOccupied), mutNone, nil
	}

	if tx.Type == TxURITokenBuy {
		if err := storage.AddRental(ctx, mu, *tx.TokenID, params.Deadline.Value); err != nil {
			return nil, mutNone, err
		}
		return Accepted(OutputRentalStarted), mutStart, nil
	}
	return Accepted(OutputStartOfferAccepted), mutNone, nil
}
