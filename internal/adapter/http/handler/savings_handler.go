package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// SavingsHandler handles savings account registry HTTP requests.
type SavingsHandler struct {
	savingsUC *usecase.SavingsAccountUseCase
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(savingsUC *usecase.SavingsAccountUseCase) *SavingsHandler {
	return &SavingsHandler{savingsUC: savingsUC}
}

// Create registers a new savings account.
func (h *SavingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSavingsAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.savingsUC.CreateSavingsAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SavingsAccountFromDomain(account))
}

// Get retrieves a savings account by ID.
func (h *SavingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	account, err := h.savingsUC.GetSavingsAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountFromDomain(account))
}

// List lists savings accounts.
func (h *SavingsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.savingsUC.ListSavingsAccounts(r.Context(), usecase.ListSavingsAccountsInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list savings accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountsFromDomain(accounts))
}

// Update replaces a savings account's mutable fields.
func (h *SavingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.UpdateSavingsAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.savingsUC.UpdateSavingsAccount(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update savings account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SavingsAccountFromDomain(account))
}

// Delete removes a savings account from the registry.
func (h *SavingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	if err := h.savingsUC.DeleteSavingsAccount(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete savings account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
