package domain

import (
	"errors"
	"testing"
)

// allTxStates enumerates every dispute state for exhaustive transition checks.
var allTxStates = []TxState{TxStateProcessed, TxStateDisputed, TxStateResolved, TxStateChargedBack}

func TestTxStateDispute(t *testing.T) {
	for _, s := range allTxStates {
		next, err := s.Dispute()
		if s == TxStateProcessed {
			if err != nil {
				t.Fatalf("dispute from %s: expected no error, got %v", s, err)
			}
			if next != TxStateDisputed {
				t.Fatalf("dispute from %s: expected disputed, got %s", s, next)
			}
			continue
		}
		if !errors.Is(err, ErrAlreadyDisputed) {
			t.Fatalf("dispute from %s: expected ErrAlreadyDisputed, got %v", s, err)
		}
		if next != s {
			t.Fatalf("dispute from %s: state changed to %s on rejection", s, next)
		}
	}
}

func TestTxStateResolve(t *testing.T) {
	for _, s := range allTxStates {
		next, err := s.Resolve()
		if s == TxStateDisputed {
			if err != nil {
				t.Fatalf("resolve from %s: expected no error, got %v", s, err)
			}
			if next != TxStateResolved {
				t.Fatalf("resolve from %s: expected resolved, got %s", s, next)
			}
			continue
		}
		if !errors.Is(err, ErrNotDisputed) {
			t.Fatalf("resolve from %s: expected ErrNotDisputed, got %v", s, err)
		}
		if next != s {
			t.Fatalf("resolve from %s: state changed to %s on rejection", s, next)
		}
	}
}

func TestTxStateChargeback(t *testing.T) {
	for _, s := range allTxStates {
		next, err := s.Chargeback()
		if s == TxStateDisputed {
			if err != nil {
				t.Fatalf("chargeback from %s: expected no error, got %v", s, err)
			}
			if next != TxStateChargedBack {
				t.Fatalf("chargeback from %s: expected charged_back, got %s", s, next)
			}
			continue
		}
		if !errors.Is(err, ErrNotDisputed) {
			t.Fatalf("chargeback from %s: expected ErrNotDisputed, got %v", s, err)
		}
		if next != s {
			t.Fatalf("chargeback from %s: state changed to %s on rejection", s, next)
		}
	}
}

func TestTxKindValid(t *testing.T) {
	for _, k := range []TxKind{TxKindDeposit, TxKindWithdrawal, TxKindDispute, TxKindResolve, TxKindChargeback} {
		if !k.Valid() {
			t.Fatalf("%s should be valid", k)
		}
	}
	if TxKind("transfer").Valid() {
		t.Fatal("transfer should not be valid")
	}
	if TxKind("").Valid() {
		t.Fatal("empty kind should not be valid")
	}
}

func TestTxKindHasAmount(t *testing.T) {
	if !TxKindDeposit.HasAmount() || !TxKindWithdrawal.HasAmount() {
		t.Fatal("deposit and withdrawal carry amounts")
	}
	for _, k := range []TxKind{TxKindDispute, TxKindResolve, TxKindChargeback} {
		if k.HasAmount() {
			t.Fatalf("%s should not carry an amount", k)
		}
	}
}
