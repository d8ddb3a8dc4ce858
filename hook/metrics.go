// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	txsAccepted prometheus.Counter
	txsRejected prometheus.Counter

	rejectInvalidParams      prometheus.Counter
	rejectMissingHookParam   prometheus.Counter
	rejectMissingDestination prometheus.Counter
	rejectStateError         prometheus.Counter
	rejectOngoingRentals     prometheus.Counter
	rejectTokenOccupied      prometheus.Counter

	rentalsStarted prometheus.Counter
	rentalsClosed  prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "txs_accepted",
			Help:      "number of transactions accepted",
		}),
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "txs_rejected",
			Help:      "number of transactions rejected",
		}),
		rejectInvalidParams: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_invalid_params",
			Help:      "rejects due to invalid rental params",
		}),
		rejectMissingHookParam: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_missing_hook_param",
			Help:      "rejects due to a missing counterparty parameter",
		}),
		rejectMissingDestination: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_missing_destination",
			Help:      "rejects due to a sell offer without destination",
		}),
		rejectStateError: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_state_error",
			Help:      "rejects due to a state persistence failure",
		}),
		rejectOngoingRentals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_ongoing_rentals",
			Help:      "rejects of account mutations during ongoing rentals",
		}),
		rejectTokenOccupied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "reject_token_occupied",
			Help:      "rejects due to the token being mid-rental",
		}),
		rentalsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "rentals_started",
			Help:      "number of rentals started",
		}),
		rentalsClosed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hook",
			Name:      "rentals_closed",
			Help:      "number of rentals closed",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsAccepted),
		r.Register(m.txsRejected),

		r.Register(m.rejectInvalidParams),
		r.Register(m.rejectMissingHookParam),
		r.Register(m.rejectMissingDestination),
		r.Register(m.rejectStateError),
		r.Register(m.rejectOngoingRentals),
		r.Register(m.rejectTokenOccupied),

		r.Register(m.rentalsStarted),
		r.Register(m.rentalsClosed),
	)
	return m, errs.Err
}

func (m *metrics) observe(res *Result) {
	if res.Accept {
		m.txsAccepted.Inc()
		return
	}
	m.txsRejected.Inc()
	switch res.Code {
	case CodeInvalidTxParams:
		m.rejectInvalidParams.Inc()
	case CodeMissingHookParam:
		m.rejectMissingHookParam.Inc()
	case CodeMissingDestination:
		m.rejectMissingDestination.Inc()
	case CodeInternalStateError:
		m.rejectStateError.Inc()
	case CodeOngoingRentals:
		m.rejectOngoingRentals.Inc()
	case CodeURITokenOccupied:
		m.rejectTokenOccupied.Inc()
	}
}
