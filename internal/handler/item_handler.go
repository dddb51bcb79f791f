package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"estate-ledger/internal/model"
	"estate-ledger/internal/service"
)

// ItemHandler serves one view of the item table. The same service backs the
// /items, /activated-items and /deleted-items routes.
type ItemHandler struct {
	service *service.ItemService
	view    model.View
}

func NewItemHandler(service *service.ItemService, view model.View) *ItemHandler {
	return &ItemHandler{service: service, view: view}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	data, meta, err := h.service.List(r.Context(), h.view, model.ItemQuery{
		Page:  parseIntOrDefault(query.Get("page"), 1),
		Limit: parseIntOrDefault(query.Get("limit"), 0),
		Sort:  strings.TrimSpace(query.Get("sort")),
		Order: strings.TrimSpace(query.Get("order")),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data, &meta)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), h.view, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateItemRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, item, nil)
}

func (h *ItemHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateItemRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Replace(r.Context(), h.view, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var payload model.PatchItemRequest
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Patch(r.Context(), h.view, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

// Delete soft-deletes the item. On the deleted view it purges the row.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if h.view == model.ViewDeleted {
		if err := h.service.Purge(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, map[string]any{"purged": true, "id": id}, nil)
		return
	}

	item, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, h.scoped(err))
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *ItemHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.DeleteAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}

func (h *ItemHandler) Recover(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Recover(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.scoped(err))
		return
	}

	writeSuccess(w, http.StatusOK, item, nil)
}

func (h *ItemHandler) RecoverAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RecoverAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, result, nil)
}

// scoped reports a redundant transition on a filtered view as not found: the
// item is simply not in that view. Only the unfiltered store keeps the
// conflict.
func (h *ItemHandler) scoped(err error) error {
	if h.view == model.ViewAll {
		return err
	}
	if errors.Is(err, model.ErrItemAlreadyDeleted) || errors.Is(err, model.ErrItemNotDeleted) {
		return model.ErrItemNotFound
	}
	return err
}
