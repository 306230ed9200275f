package service

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mvilaca/payproc/internal/csvio"
	"github.com/mvilaca/payproc/internal/domain"
	"github.com/mvilaca/payproc/internal/ledger"
)

// Stats summarizes a processed stream.
type Stats struct {
	Processed int // transactions accepted by the ledger
	Rejected  int // transactions rejected by the ledger and skipped
}

// LedgerService is the mutex-guarded facade over the ledger engine. The
// engine itself is single-threaded; the service serializes every caller
// (stream processor or HTTP handler) so transactions are still applied
// strictly one at a time.
type LedgerService struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	logger *slog.Logger
}

// NewLedgerService creates a service around the given engine.
func NewLedgerService(l *ledger.Ledger, logger *slog.Logger) *LedgerService {
	return &LedgerService{ledger: l, logger: logger}
}

// Submit applies a single transaction. Errors are the ledger's sentinel
// rejections; state is untouched when an error is returned.
func (s *LedgerService) Submit(tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Process(tx)
}

// Accounts returns the full snapshot, ascending by client ID.
func (s *LedgerService) Accounts() []ledger.AccountBalance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

// Account returns a single account's balance row.
func (s *LedgerService) Account(client domain.ClientID) (ledger.AccountBalance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Account(client)
}

// ProcessStream decodes CSV transactions from r and submits each one in
// order. Per-transaction ledger rejections are logged and skipped; the
// stream never halts on them. Decode failures are fatal to the stream and
// returned, since a malformed record means the input itself is broken.
func (s *LedgerService) ProcessStream(r io.Reader) (Stats, error) {
	reader := csvio.NewReader(r)
	var stats Stats

	for seq := 1; ; seq++ {
		tx, err := reader.Read()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		if err := s.Submit(tx); err != nil {
			stats.Rejected++
			s.logger.Warn("transaction rejected",
				slog.Int("record", seq),
				slog.String("kind", string(tx.Kind)),
				slog.String("client", tx.Client.String()),
				slog.String("tx", tx.Tx.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		stats.Processed++
	}
}
