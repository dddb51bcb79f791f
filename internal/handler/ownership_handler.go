package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"estate-ledger/internal/model"
	"estate-ledger/internal/service"
)

type OwnershipHandler struct {
	service *service.OwnershipService
}

func NewOwnershipHandler(service *service.OwnershipService) *OwnershipHandler {
	return &OwnershipHandler{service: service}
}

func (h *OwnershipHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := model.OwnershipFilter{
		HouseID: strings.TrimSpace(query.Get("house_id")),
		OwnerID: strings.TrimSpace(query.Get("owner_id")),
	}

	data, meta, err := h.service.List(r.Context(), filter, parseIntOrDefault(query.Get("page"), 1), parseIntOrDefault(query.Get("limit"), 0))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data, &meta)
}

func (h *OwnershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownership, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, ownership, nil)
}

func (h *OwnershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.OwnershipRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	ownership, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, ownership, nil)
}

func (h *OwnershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.OwnershipRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	ownership, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, ownership, nil)
}

func (h *OwnershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true}, nil)
}

func (h *OwnershipHandler) Extend(w http.ResponseWriter, r *http.Request) {
	var payload model.ExtendOwnershipRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	ownership, err := h.service.Extend(r.Context(), chi.URLParam(r, "id"), payload.Ended)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, ownership, nil)
}
