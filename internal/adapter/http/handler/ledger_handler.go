package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// LedgerHandler exposes reconciliation between stored balances and the
// transaction log.
type LedgerHandler struct {
	reconciliationUC *usecase.ReconciliationUseCase
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(reconciliationUC *usecase.ReconciliationUseCase) *LedgerHandler {
	return &LedgerHandler{reconciliationUC: reconciliationUC}
}

// CheckAccount reconciles one account.
func (h *LedgerHandler) CheckAccount(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountRef{
		Kind: domain.AccountKind(chi.URLParam(r, "kind")),
		ID:   chi.URLParam(r, "id"),
	}

	result, err := h.reconciliationUC.CheckAccount(r.Context(), account)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reconcile account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DriftFromUseCase(result))
}

// CheckAll reconciles every account that has a balance entry.
func (h *LedgerHandler) CheckAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.CheckAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reconcile accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DriftReportFromUseCase(report))
}
