package domain

// TxKind distinguishes the five supported transaction kinds.
type TxKind string

const (
	TxKindDeposit    TxKind = "deposit"
	TxKindWithdrawal TxKind = "withdrawal"
	TxKindDispute    TxKind = "dispute"
	TxKindResolve    TxKind = "resolve"
	TxKindChargeback TxKind = "chargeback"
)

// Valid reports whether k is one of the five supported kinds.
func (k TxKind) Valid() bool {
	switch k {
	case TxKindDeposit, TxKindWithdrawal, TxKindDispute, TxKindResolve, TxKindChargeback:
		return true
	}
	return false
}

// HasAmount reports whether transactions of this kind carry an amount.
// Disputes, resolves, and chargebacks reference a prior transaction and
// carry none.
func (k TxKind) HasAmount() bool {
	return k == TxKindDeposit || k == TxKindWithdrawal
}

// Transaction is a single decoded input record. Amount is meaningful only
// when Kind.HasAmount() is true; for the reference kinds it is the zero
// amount.
type Transaction struct {
	Kind   TxKind
	Client ClientID
	Tx     TxID
	Amount Amount
}

// NewDeposit builds a deposit transaction.
func NewDeposit(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: TxKindDeposit, Client: client, Tx: tx, Amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(client ClientID, tx TxID, amount Amount) Transaction {
	return Transaction{Kind: TxKindWithdrawal, Client: client, Tx: tx, Amount: amount}
}

// NewDispute builds a dispute referencing a prior transaction.
func NewDispute(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxKindDispute, Client: client, Tx: tx}
}

// NewResolve builds a resolve referencing a disputed transaction.
func NewResolve(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxKindResolve, Client: client, Tx: tx}
}

// NewChargeback builds a chargeback referencing a disputed transaction.
func NewChargeback(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: TxKindChargeback, Client: client, Tx: tx}
}
