// Package csvio decodes transaction streams from CSV and encodes account
// snapshots back to CSV. It is the only place the wire format is known;
// the ledger engine never sees raw records.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mvilaca/payproc/internal/domain"
)

// ErrMissingAmount is returned when a deposit or withdrawal record has no
// amount column.
var ErrMissingAmount = errors.New("amount not provided")

// UnknownKindError is returned for a record whose type column is not one
// of the five supported transaction kinds.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown transaction type %q", e.Kind)
}

// Reader decodes transactions from CSV input with a
// "type, client, tx, amount" header. The amount column is optional for
// dispute, resolve, and chargeback records, and surrounding whitespace in
// any field is ignored.
type Reader struct {
	cr         *csv.Reader
	n          int // data records read so far
	headerRead bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Reference rows carry three columns, deposit/withdrawal rows four.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{cr: cr}
}

// Read decodes the next transaction. It returns io.EOF at the end of the
// stream; any other error is a decode failure that never reached the
// ledger.
func (r *Reader) Read() (domain.Transaction, error) {
	if !r.headerRead {
		if err := r.readHeader(); err != nil {
			return domain.Transaction{}, err
		}
	}

	record, err := r.cr.Read()
	if err == io.EOF {
		return domain.Transaction{}, io.EOF
	}
	r.n++
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("record %d: %w", r.n, err)
	}

	tx, err := decodeRecord(record)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("record %d: %w", r.n, err)
	}
	return tx, nil
}

func (r *Reader) readHeader() error {
	header, err := r.cr.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if len(header) < 3 || strings.TrimSpace(header[0]) != "type" {
		return fmt.Errorf("header: expected \"type, client, tx, amount\", got %q", strings.Join(header, ","))
	}
	r.headerRead = true
	return nil
}

func decodeRecord(record []string) (domain.Transaction, error) {
	if len(record) < 3 {
		return domain.Transaction{}, fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	kind := domain.TxKind(strings.TrimSpace(record[0]))
	if !kind.Valid() {
		return domain.Transaction{}, &UnknownKindError{Kind: string(kind)}
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid client id: %w", err)
	}
	tx, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid tx id: %w", err)
	}

	out := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(client),
		Tx:     domain.TxID(tx),
	}

	if kind.HasAmount() {
		if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
			return domain.Transaction{}, ErrMissingAmount
		}
		amount, err := domain.ParseAmount(strings.TrimSpace(record[3]))
		if err != nil {
			return domain.Transaction{}, err
		}
		out.Amount = amount
	}

	return out, nil
}
