package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mvilaca/payproc/internal/ledger"
)

// snapshotHeader is the column layout of a rendered snapshot.
var snapshotHeader = []string{"client", "available", "held", "total", "locked"}

// WriteSnapshot renders an account snapshot as CSV: a header row followed
// by one row per account in the order given (Snapshot already sorts by
// ascending ClientID). Amounts use the same exact-decimal text form as
// input; locked is a boolean literal.
func WriteSnapshot(w io.Writer, rows []ledger.AccountBalance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(snapshotHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Client.String(),
			row.Available.String(),
			row.Held.String(),
			row.Total.String(),
			strconv.FormatBool(row.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
