package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mvilaca/payproc/internal/domain"
	"github.com/mvilaca/payproc/internal/service"
)

// TransactionHandler handles HTTP transaction ingestion.
type TransactionHandler struct {
	svc *service.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// submitTransactionRequest is the JSON request body for POST /transactions.
// Amount is a decimal string and must be present exactly when the kind is
// deposit or withdrawal.
type submitTransactionRequest struct {
	Type   string  `json:"type"`
	Client uint16  `json:"client"`
	Tx     uint32  `json:"tx"`
	Amount *string `json:"amount"`
}

// submitTransactionResponse echoes the accepted transaction along with
// the account row it produced.
type submitTransactionResponse struct {
	Type    string          `json:"type"`
	Client  uint16          `json:"client"`
	Tx      uint32          `json:"tx"`
	Account accountResponse `json:"account"`
}

// Submit handles POST /transactions.
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTransactionRequest
	if err := ParseJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	tx, err := decodeSubmitRequest(req)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.svc.Submit(tx); err != nil {
		status, code := ledgerErrorStatus(err)
		WriteError(w, status, code, ledgerErrorMessage(err, tx))
		return
	}

	row, _ := h.svc.Account(tx.Client)
	WriteJSON(w, http.StatusCreated, submitTransactionResponse{
		Type:    string(tx.Kind),
		Client:  uint16(tx.Client),
		Tx:      uint32(tx.Tx),
		Account: toAccountResponse(row),
	})
}

func decodeSubmitRequest(req submitTransactionRequest) (domain.Transaction, error) {
	kind := domain.TxKind(req.Type)
	if !kind.Valid() {
		return domain.Transaction{}, &domain.ValidationError{
			Message: fmt.Sprintf("Unknown transaction type: %s. Must be one of: deposit, withdrawal, dispute, resolve, chargeback", req.Type),
		}
	}

	tx := domain.Transaction{
		Kind:   kind,
		Client: domain.ClientID(req.Client),
		Tx:     domain.TxID(req.Tx),
	}

	if kind.HasAmount() {
		if req.Amount == nil {
			return domain.Transaction{}, &domain.ValidationError{
				Message: "amount is required for deposit and withdrawal",
			}
		}
		amount, err := domain.ParseAmount(*req.Amount)
		if err != nil {
			return domain.Transaction{}, &domain.ValidationError{Message: err.Error()}
		}
		tx.Amount = amount
	} else if req.Amount != nil {
		return domain.Transaction{}, &domain.ValidationError{
			Message: "amount must be omitted for dispute, resolve, and chargeback",
		}
	}

	return tx, nil
}

// ledgerErrorStatus maps ledger sentinel errors to HTTP statuses.
func ledgerErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownTransaction):
		return http.StatusNotFound, "unknown_transaction"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient_funds"
	case errors.Is(err, domain.ErrAlreadyDisputed):
		return http.StatusConflict, "already_disputed"
	case errors.Is(err, domain.ErrNotDisputed):
		return http.StatusConflict, "not_disputed"
	case errors.Is(err, domain.ErrAccountFrozen):
		return http.StatusLocked, "account_frozen"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func ledgerErrorMessage(err error, tx domain.Transaction) string {
	return fmt.Sprintf("%s %s for client %s rejected: %s",
		tx.Kind, tx.Tx, tx.Client, err)
}
