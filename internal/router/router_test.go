package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"estate-ledger/internal/config"
	"estate-ledger/internal/handler"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/internal/service"
)

type okPinger struct{}

func (okPinger) Health(context.Context) error { return nil }

func newTestRouter(items *repository.MockItemStore) http.Handler {
	pages := service.DefaultPagination()
	itemService := service.NewItemService(items, nil, pages)

	cfg := &config.Config{
		RequestTimeout:    5 * time.Second,
		CORSOrigins:       []string{"*"},
		RateLimitRPM:      1000,
		WriteRateLimitRPM: 1000,
	}

	return New(cfg, Handlers{
		Items:        handler.NewItemHandler(itemService, model.ViewAll),
		ActiveItems:  handler.NewItemHandler(itemService, model.ViewActive),
		DeletedItems: handler.NewItemHandler(itemService, model.ViewDeleted),
		Person:       handler.NewPersonHandler(service.NewPersonService(new(repository.MockPersonStore), pages)),
		House:        handler.NewHouseHandler(service.NewHouseService(new(repository.MockHouseStore), nil, pages)),
		Ownership:    handler.NewOwnershipHandler(service.NewOwnershipService(new(repository.MockOwnershipStore), nil, pages)),
		Health:       handler.NewHealthHandler(okPinger{}),
	}, nil)
}

func TestRouterHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(new(repository.MockItemStore)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRouterMountsEachItemView(t *testing.T) {
	items := new(repository.MockItemStore)
	items.On("List", mock.Anything, mock.Anything, mock.Anything).Return([]model.Item{}, 0, nil)
	r := newTestRouter(items)

	for path, view := range map[string]model.View{
		"/api/v1/items":           model.ViewAll,
		"/api/v1/activated-items": model.ViewActive,
		"/api/v1/deleted-items":   model.ViewDeleted,
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"view":"`+view.String()+`"`, path)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(new(repository.MockItemStore)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/activated-items/recover", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterDeletedViewAcceptsEdits(t *testing.T) {
	const id = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	items := new(repository.MockItemStore)
	items.On("Find", mock.Anything, model.ViewDeleted, id).Return(model.Item{}, model.ErrItemNotFound)
	r := newTestRouter(items)

	for method, body := range map[string]string{
		http.MethodPut:   `{"name":"stool","price":5}`,
		http.MethodPatch: `{"name":"stool"}`,
	} {
		req := httptest.NewRequest(method, "/api/v1/deleted-items/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, method)
	}
	items.AssertNumberOfCalls(t, "Find", 2)
}
