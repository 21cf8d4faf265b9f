package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// BalanceHandler handles balance ledger HTTP requests.
type BalanceHandler struct {
	balanceUC *usecase.BalanceUseCase
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC *usecase.BalanceUseCase) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// List lists every balance entry.
func (h *BalanceHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.balanceUC.ListBalances(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(entries))
}

// Get retrieves one account's balance entry.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountRef{
		Kind: domain.AccountKind(chi.URLParam(r, "kind")),
		ID:   chi.URLParam(r, "id"),
	}

	if err := account.Validate(); err != nil {
		writeError(w, mapDomainError(err), "invalid account", err.Error())
		return
	}

	entry, err := h.balanceUC.GetBalance(r.Context(), account)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(entry))
}

// Adjust applies a manual adjustment to one account's balance entry.
func (h *BalanceHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.balanceUC.AdjustBalance(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to adjust balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(entry))
}
