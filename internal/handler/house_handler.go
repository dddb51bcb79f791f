package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"estate-ledger/internal/model"
	"estate-ledger/internal/service"
)

type HouseHandler struct {
	service *service.HouseService
}

func NewHouseHandler(service *service.HouseService) *HouseHandler {
	return &HouseHandler{service: service}
}

func (h *HouseHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data, meta, err := h.service.List(r.Context(), parseIntOrDefault(query.Get("page"), 1), parseIntOrDefault(query.Get("limit"), 0))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data, &meta)
}

func (h *HouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	house, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, house, nil)
}

func (h *HouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.HouseRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	house, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, house, nil)
}

func (h *HouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.HouseRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	house, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, house, nil)
}

func (h *HouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true}, nil)
}

func (h *HouseHandler) ExpireTenancy(w http.ResponseWriter, r *http.Request) {
	var payload model.ExpireTenancyRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.ExpireTenancy(r.Context(), payload.HouseIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}

func (h *HouseHandler) ExpireHouseTenancy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.service.Get(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.ExpireTenancy(r.Context(), []string{id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}
