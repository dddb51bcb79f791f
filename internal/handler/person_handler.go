package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"estate-ledger/internal/model"
	"estate-ledger/internal/service"
)

type PersonHandler struct {
	service *service.PersonService
}

func NewPersonHandler(service *service.PersonService) *PersonHandler {
	return &PersonHandler{service: service}
}

func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data, meta, err := h.service.List(r.Context(), parseIntOrDefault(query.Get("page"), 1), parseIntOrDefault(query.Get("limit"), 0))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data, &meta)
}

func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	person, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, person, nil)
}

func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.PersonRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	person, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, person, nil)
}

func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload model.PersonRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	person, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, person, nil)
}

func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true}, nil)
}
