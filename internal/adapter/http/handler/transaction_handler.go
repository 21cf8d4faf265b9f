package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// TransactionHandler handles transaction log HTTP requests.
type TransactionHandler struct {
	transactionUC *usecase.TransactionUseCase
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC *usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC}
}

// Create posts one income or expense transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PostTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction date", err.Error())
		return
	}

	record, err := h.transactionUC.PostTransaction(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to post transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(record))
}

// List lists postings, optionally filtered by account and date.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListTransactionsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	}

	if kind := r.URL.Query().Get("account_kind"); kind != "" {
		account := domain.AccountRef{
			Kind: domain.AccountKind(kind),
			ID:   r.URL.Query().Get("account_id"),
		}

		if err := account.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid account filter", err.Error())
			return
		}

		input.Account = &account
	}

	if date := r.URL.Query().Get("date"); date != "" {
		parsed, err := time.Parse(domain.DateLayout, date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date filter", err.Error())
			return
		}

		input.Date = &parsed
	}

	records, err := h.transactionUC.ListTransactions(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(records))
}
