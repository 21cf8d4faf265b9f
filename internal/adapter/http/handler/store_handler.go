package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ashish092/Rollin-Pos/internal/adapter/http/dto"
	"github.com/Ashish092/Rollin-Pos/internal/usecase"
)

// StoreHandler handles store registry HTTP requests.
type StoreHandler struct {
	storeUC *usecase.StoreUseCase
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(storeUC *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{storeUC: storeUC}
}

// Create registers a new store.
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	store, err := h.storeUC.CreateStore(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create store", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.StoreFromDomain(store))
}

// Get retrieves a store by ID.
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing store ID", "")
		return
	}

	store, err := h.storeUC.GetStore(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get store", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StoreFromDomain(store))
}

// List lists stores.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeUC.ListStores(r.Context(), usecase.ListStoresInput{
		Limit:  parseIntQuery(r, "limit", 0),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list stores", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StoresFromDomain(stores))
}

// Update replaces a store's mutable fields.
func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing store ID", "")
		return
	}

	var req dto.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	store, err := h.storeUC.UpdateStore(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update store", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StoreFromDomain(store))
}

// Delete removes a store from the registry.
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing store ID", "")
		return
	}

	if err := h.storeUC.DeleteStore(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete store", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
