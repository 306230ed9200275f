package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mvilaca/payproc/internal/csvio"
	"github.com/mvilaca/payproc/internal/domain"
	"github.com/mvilaca/payproc/internal/ledger"
	"github.com/mvilaca/payproc/internal/service"
)

// AccountHandler handles HTTP requests for account endpoints.
type AccountHandler struct {
	svc *service.LedgerService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc *service.LedgerService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// accountResponse is the JSON shape of a single account row. Amounts are
// strings to preserve the exact decimal form.
type accountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

func toAccountResponse(row ledger.AccountBalance) accountResponse {
	return accountResponse{
		Client:    uint16(row.Client),
		Available: row.Available.String(),
		Held:      row.Held.String(),
		Total:     row.Total.String(),
		Locked:    row.Locked,
	}
}

// List handles GET /accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	rows := h.svc.Accounts()
	out := make([]accountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAccountResponse(row))
	}
	WriteJSON(w, http.StatusOK, out)
}

// ListCSV handles GET /accounts.csv, rendering the snapshot in the same
// CSV form the batch mode writes to stdout.
func (h *AccountHandler) ListCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	_ = csvio.WriteSnapshot(w, h.svc.Accounts())
}

// Get handles GET /accounts/{client_id}.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "client_id")
	client, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error",
			"client_id must be an unsigned 16-bit integer")
		return
	}

	row, ok := h.svc.Account(domain.ClientID(client))
	if !ok {
		WriteError(w, http.StatusNotFound, "account_not_found",
			"No account exists for client "+raw)
		return
	}
	WriteJSON(w, http.StatusOK, toAccountResponse(row))
}
