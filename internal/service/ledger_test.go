package service

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mvilaca/payproc/internal/domain"
	"github.com/mvilaca/payproc/internal/ledger"
)

func newTestService() *LedgerService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLedgerService(ledger.New(), logger)
}

func TestProcessStream(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit,    1, 1, 1.0",
		"deposit,    2, 2, 2.0",
		"withdrawal, 1, 3, 0.5",
		"dispute,    2, 2",
		"resolve,    2, 2",
	}, "\n")

	svc := newTestService()
	stats, err := svc.ProcessStream(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Processed != 5 || stats.Rejected != 0 {
		t.Fatalf("expected 5 processed, 0 rejected, got %+v", stats)
	}

	rows := svc.Accounts()
	if len(rows) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(rows))
	}
	if !rows[0].Available.Equal(domain.MustParseAmount("0.5")) {
		t.Fatalf("client 1: expected available 0.5, got %s", rows[0].Available)
	}
	if !rows[1].Available.Equal(domain.MustParseAmount("2.0")) {
		t.Fatalf("client 2: expected available 2.0, got %s", rows[1].Available)
	}
}

func TestProcessStreamContinuesOnRejection(t *testing.T) {
	// The overdraft and the dispute of a missing transaction are rejected
	// but processing continues.
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit,    1, 1, 1.0",
		"withdrawal, 1, 2, 5.0",
		"dispute,    1, 99",
		"deposit,    1, 3, 2.0",
	}, "\n")

	svc := newTestService()
	stats, err := svc.ProcessStream(strings.NewReader(input))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Processed != 2 || stats.Rejected != 2 {
		t.Fatalf("expected 2 processed, 2 rejected, got %+v", stats)
	}

	row, ok := svc.Account(1)
	if !ok {
		t.Fatal("expected account for client 1")
	}
	if !row.Available.Equal(domain.MustParseAmount("3.0")) {
		t.Fatalf("expected available 3.0, got %s", row.Available)
	}
}

func TestProcessStreamDecodeFailureIsFatal(t *testing.T) {
	input := strings.Join([]string{
		"type, client, tx, amount",
		"deposit, 1, 1, 1.0",
		"teleport, 1, 2, 1.0",
		"deposit, 1, 3, 1.0",
	}, "\n")

	svc := newTestService()
	stats, err := svc.ProcessStream(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected decode error")
	}
	if stats.Processed != 1 {
		t.Fatalf("expected 1 processed before failure, got %d", stats.Processed)
	}

	// The record before the bad one was applied.
	row, ok := svc.Account(1)
	if !ok || !row.Available.Equal(domain.MustParseAmount("1.0")) {
		t.Fatalf("unexpected account state: %+v ok=%v", row, ok)
	}
}

func TestSubmitReturnsLedgerErrors(t *testing.T) {
	svc := newTestService()

	if err := svc.Submit(domain.NewDeposit(1, 1, domain.MustParseAmount("1"))); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	err := svc.Submit(domain.NewWithdrawal(1, 2, domain.MustParseAmount("9")))
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestAccountsSnapshotIsStable(t *testing.T) {
	svc := newTestService()
	_ = svc.Submit(domain.NewDeposit(5, 1, domain.MustParseAmount("1")))
	_ = svc.Submit(domain.NewDeposit(2, 2, domain.MustParseAmount("1")))

	first := svc.Accounts()
	second := svc.Accounts()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 accounts, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Client != second[i].Client {
			t.Fatalf("snapshot order changed between calls")
		}
	}
	if first[0].Client != 2 || first[1].Client != 5 {
		t.Fatalf("expected clients [2 5], got [%d %d]", first[0].Client, first[1].Client)
	}
}
