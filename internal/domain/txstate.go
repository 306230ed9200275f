package domain

// TxState is the dispute state of a recorded transaction. The only legal
// transitions are:
//
//	processed → disputed      (dispute)
//	disputed  → resolved      (resolve)
//	disputed  → charged_back  (chargeback)
//
// resolved and charged_back are terminal. Every other requested
// transition is rejected without changing the state.
type TxState string

const (
	TxStateProcessed   TxState = "processed"
	TxStateDisputed    TxState = "disputed"
	TxStateResolved    TxState = "resolved"
	TxStateChargedBack TxState = "charged_back"
)

// Dispute returns the state after a dispute request, or ErrAlreadyDisputed
// when the transaction is not in the processed state.
func (s TxState) Dispute() (TxState, error) {
	if s != TxStateProcessed {
		return s, ErrAlreadyDisputed
	}
	return TxStateDisputed, nil
}

// Resolve returns the state after a resolve request, or ErrNotDisputed
// when the transaction is not under dispute.
func (s TxState) Resolve() (TxState, error) {
	if s != TxStateDisputed {
		return s, ErrNotDisputed
	}
	return TxStateResolved, nil
}

// Chargeback returns the state after a chargeback request, or
// ErrNotDisputed when the transaction is not under dispute.
func (s TxState) Chargeback() (TxState, error) {
	if s != TxStateDisputed {
		return s, ErrNotDisputed
	}
	return TxStateChargedBack, nil
}
