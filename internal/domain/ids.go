package domain

import "strconv"

// ClientID identifies an account holder. Clients are anonymous: there is
// no registry separate from the account itself, which is created
// implicitly by the first transaction that references the ID.
type ClientID uint16

// String renders the client ID as a decimal literal.
func (c ClientID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// TxID identifies a deposit or withdrawal. IDs are globally unique for
// the lifetime of a run, but transaction records are keyed by
// (ClientID, TxID), so the same numeric TxID under two different clients
// names two distinct transactions.
type TxID uint32

// String renders the transaction ID as a decimal literal.
func (t TxID) String() string {
	return strconv.FormatUint(uint64(t), 10)
}
