package domain

// Account is the per-client balance record. Total funds are always
// Available + Held; there is no other derived field. Once Locked is set
// by a chargeback, every further mutation fails with ErrAccountFrozen.
// Accounts are created zero-valued and unlocked, and never deleted.
type Account struct {
	Available Amount
	Held      Amount
	Locked    bool
}

// Total returns available + held.
func (a *Account) Total() Amount {
	return a.Available.Add(a.Held)
}

// ApplyDelta adjusts available funds by a signed delta: positive for a
// deposit, negative for a withdrawal. It fails with ErrInsufficientFunds
// when the resulting available balance would be negative, leaving the
// account untouched.
func (a *Account) ApplyDelta(delta Amount) error {
	if err := a.checkFrozen(); err != nil {
		return err
	}
	next := a.Available.Add(delta)
	if next.IsNegative() {
		return ErrInsufficientFunds
	}
	a.Available = next
	return nil
}

// ApplyDispute moves the signed transaction amount from available to
// held. Disputing a withdrawal (negative amount) therefore raises
// available and drives held negative pending reversal.
func (a *Account) ApplyDispute(amount Amount) error {
	if err := a.checkFrozen(); err != nil {
		return err
	}
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
	return nil
}

// ApplyResolve reverses a hold, returning the signed amount from held to
// available.
func (a *Account) ApplyResolve(amount Amount) error {
	if err := a.checkFrozen(); err != nil {
		return err
	}
	a.Available = a.Available.Add(amount)
	a.Held = a.Held.Sub(amount)
	return nil
}

// ApplyChargeback removes the held amount and locks the account.
func (a *Account) ApplyChargeback(amount Amount) error {
	if err := a.checkFrozen(); err != nil {
		return err
	}
	a.Held = a.Held.Sub(amount)
	a.Locked = true
	return nil
}

func (a *Account) checkFrozen() error {
	if a.Locked {
		return ErrAccountFrozen
	}
	return nil
}
