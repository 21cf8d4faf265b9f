package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/domain"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// HistoryHandler handles daily snapshot HTTP requests.
type HistoryHandler struct {
	historyUC *usecase.HistoryUseCase
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// Compute recomputes one account's snapshot for one date and upserts it.
func (h *HistoryHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	record, err := h.historyUC.ComputeSnapshot(r.Context(), req.ToDomain(), date)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryFromDomain(record))
}

// List lists snapshots, optionally filtered by account and date.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListHistoryInput{
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

	records, err := h.historyUC.ListHistory(r.Context(), input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoriesFromDomain(records))
}
