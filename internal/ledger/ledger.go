// Package ledger implements the transaction-processing engine: per-client
// account bookkeeping plus the dispute state machine over recorded
// deposits and withdrawals.
package ledger

import (
	"fmt"

	"github.com/google/btree"

	"github.com/mvilaca/payproc/internal/domain"
)

// txKey addresses a recorded transaction. Records are scoped per client,
// so the same numeric TxID under two clients names two records.
type txKey struct {
	Client domain.ClientID
	Tx     domain.TxID
}

// txRecord is the retained history for an accepted deposit or withdrawal.
// The amount is signed (positive deposit, negative withdrawal) and never
// changes once set; only the dispute state transitions. Records are never
// deleted, even after a chargeback.
type txRecord struct {
	Amount domain.Amount
	State  domain.TxState
}

// AccountBalance is one row of a snapshot.
type AccountBalance struct {
	Client    domain.ClientID
	Available domain.Amount
	Held      domain.Amount
	Total     domain.Amount
	Locked    bool
}

// RecordInfo is the externally visible view of a transaction record.
type RecordInfo struct {
	Amount domain.Amount
	State  domain.TxState
}

// Ledger applies transactions one at a time against per-client accounts.
// It is not safe for concurrent use; callers that share a Ledger across
// goroutines must serialize access (see service.LedgerService).
type Ledger struct {
	accounts map[domain.ClientID]*domain.Account
	records  map[txKey]*txRecord
	// index keeps every client ever seen in ascending order so that
	// Snapshot enumerates deterministically without re-sorting.
	index *btree.BTreeG[domain.ClientID]
}

// New creates an empty ledger.
func New() *Ledger {
	const degree = 32
	return &Ledger{
		accounts: make(map[domain.ClientID]*domain.Account),
		records:  make(map[txKey]*txRecord),
		index: btree.NewG[domain.ClientID](degree, func(a, b domain.ClientID) bool {
			return a < b
		}),
	}
}

// Process applies a single transaction. A non-nil error means the
// transaction was rejected and the ledger is exactly as it was before the
// call; processing of subsequent transactions may continue.
func (l *Ledger) Process(tx domain.Transaction) error {
	switch tx.Kind {
	case domain.TxKindDeposit:
		return l.delta(tx.Client, tx.Tx, tx.Amount)
	case domain.TxKindWithdrawal:
		return l.delta(tx.Client, tx.Tx, tx.Amount.Neg())
	case domain.TxKindDispute:
		return l.dispute(tx.Client, tx.Tx)
	case domain.TxKindResolve:
		return l.resolve(tx.Client, tx.Tx)
	case domain.TxKindChargeback:
		return l.chargeback(tx.Client, tx.Tx)
	default:
		return &domain.ValidationError{
			Message: fmt.Sprintf("unknown transaction kind %q", tx.Kind),
		}
	}
}

// delta applies a signed available-funds adjustment and records the
// transaction. The account is created only when the adjustment succeeds,
// so a failed withdrawal against an unknown client leaves no trace.
func (l *Ledger) delta(client domain.ClientID, tx domain.TxID, delta domain.Amount) error {
	account, exists := l.accounts[client]
	if !exists {
		account = &domain.Account{}
	}
	if err := account.ApplyDelta(delta); err != nil {
		return err
	}
	if !exists {
		l.accounts[client] = account
		l.index.ReplaceOrInsert(client)
	}
	l.records[txKey{Client: client, Tx: tx}] = &txRecord{
		Amount: delta,
		State:  domain.TxStateProcessed,
	}
	return nil
}

func (l *Ledger) dispute(client domain.ClientID, tx domain.TxID) error {
	record, account, err := l.pastTransaction(client, tx)
	if err != nil {
		return err
	}
	next, err := record.State.Dispute()
	if err != nil {
		return err
	}
	if err := account.ApplyDispute(record.Amount); err != nil {
		return err
	}
	record.State = next
	return nil
}

func (l *Ledger) resolve(client domain.ClientID, tx domain.TxID) error {
	record, account, err := l.pastTransaction(client, tx)
	if err != nil {
		return err
	}
	next, err := record.State.Resolve()
	if err != nil {
		return err
	}
	if err := account.ApplyResolve(record.Amount); err != nil {
		return err
	}
	record.State = next
	return nil
}

func (l *Ledger) chargeback(client domain.ClientID, tx domain.TxID) error {
	record, account, err := l.pastTransaction(client, tx)
	if err != nil {
		return err
	}
	next, err := record.State.Chargeback()
	if err != nil {
		return err
	}
	if err := account.ApplyChargeback(record.Amount); err != nil {
		return err
	}
	record.State = next
	return nil
}

// pastTransaction resolves a dispute/resolve/chargeback reference to its
// record and account. A record always implies its account exists: records
// are only written by successful deltas.
func (l *Ledger) pastTransaction(client domain.ClientID, tx domain.TxID) (*txRecord, *domain.Account, error) {
	record, ok := l.records[txKey{Client: client, Tx: tx}]
	if !ok {
		return nil, nil, domain.ErrUnknownTransaction
	}
	account, ok := l.accounts[client]
	if !ok {
		panic(fmt.Sprintf("ledger: record for client %d has no account", client))
	}
	return record, account, nil
}

// Snapshot enumerates every account ever created, in ascending ClientID
// order. It reads without mutating, so repeated calls yield identical
// results.
func (l *Ledger) Snapshot() []AccountBalance {
	out := make([]AccountBalance, 0, l.index.Len())
	l.index.Ascend(func(client domain.ClientID) bool {
		account := l.accounts[client]
		out = append(out, AccountBalance{
			Client:    client,
			Available: account.Available,
			Held:      account.Held,
			Total:     account.Total(),
			Locked:    account.Locked,
		})
		return true
	})
	return out
}

// Account returns the balance row for a single client, if the account
// exists.
func (l *Ledger) Account(client domain.ClientID) (AccountBalance, bool) {
	account, ok := l.accounts[client]
	if !ok {
		return AccountBalance{}, false
	}
	return AccountBalance{
		Client:    client,
		Available: account.Available,
		Held:      account.Held,
		Total:     account.Total(),
		Locked:    account.Locked,
	}, true
}

// Record returns the retained amount and dispute state for a recorded
// transaction, if one exists.
func (l *Ledger) Record(client domain.ClientID, tx domain.TxID) (RecordInfo, bool) {
	record, ok := l.records[txKey{Client: client, Tx: tx}]
	if !ok {
		return RecordInfo{}, false
	}
	return RecordInfo{Amount: record.Amount, State: record.State}, true
}
