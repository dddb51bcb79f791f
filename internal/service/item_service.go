package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"estate-ledger/internal/event"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/pkg/apierror"
)

const maxItemNameLength = 50

// ItemService partitions the item table into the active and deleted views and
// moves items between them.
type ItemService struct {
	store repository.ItemStore
	bus   event.Bus
	pages Pagination
	now   func() time.Time
}

func NewItemService(store repository.ItemStore, bus event.Bus, pages Pagination) *ItemService {
	return &ItemService{
		store: store,
		bus:   bus,
		pages: pages,
		now:   storageNow,
	}
}

func (s *ItemService) List(ctx context.Context, view model.View, query model.ItemQuery) (model.ItemList, model.Meta, error) {
	query.Page, query.Limit = s.pages.normalize(query.Page, query.Limit)

	items, total, err := s.store.List(ctx, view, query)
	if err != nil {
		return model.ItemList{}, model.Meta{}, err
	}

	return model.ItemList{View: view.String(), Items: items}, model.NewMeta(query.Page, query.Limit, total), nil
}

func (s *ItemService) Get(ctx context.Context, view model.View, id string) (model.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Item{}, model.ErrItemNotFound
	}
	return s.store.Find(ctx, view, id)
}

func (s *ItemService) Create(ctx context.Context, req model.CreateItemRequest) (model.Item, error) {
	if req.Name == nil {
		return model.Item{}, apierror.Validation("name is required", "name")
	}
	if req.Price == nil {
		return model.Item{}, apierror.Validation("price is required", "price")
	}

	name, err := requireText(*req.Name, "name", 1, maxItemNameLength)
	if err != nil {
		return model.Item{}, err
	}

	now := s.now()
	item := model.Item{
		ID:      uuid.NewString(),
		Name:    name,
		Price:   *req.Price,
		Created: now,
		Updated: now,
	}

	if err := s.store.Create(ctx, item); err != nil {
		return model.Item{}, err
	}

	s.publish(event.TypeItemCreated, item)
	return item, nil
}

// Replace overwrites name and price; both must be present.
func (s *ItemService) Replace(ctx context.Context, view model.View, id string, req model.CreateItemRequest) (model.Item, error) {
	if req.Name == nil {
		return model.Item{}, apierror.Validation("name is required", "name")
	}
	if req.Price == nil {
		return model.Item{}, apierror.Validation("price is required", "price")
	}
	return s.Patch(ctx, view, id, model.PatchItemRequest{Name: req.Name, Price: req.Price})
}

// Patch updates the provided fields. The deleted timestamp is never touched.
func (s *ItemService) Patch(ctx context.Context, view model.View, id string, req model.PatchItemRequest) (model.Item, error) {
	current, err := s.Get(ctx, view, id)
	if err != nil {
		return model.Item{}, err
	}

	if req.Name != nil {
		name, err := requireText(*req.Name, "name", 1, maxItemNameLength)
		if err != nil {
			return model.Item{}, err
		}
		current.Name = name
	}
	if req.Price != nil {
		current.Price = *req.Price
	}
	current.Updated = s.now()

	updated, err := s.store.Update(ctx, view, current)
	if err != nil {
		return model.Item{}, err
	}

	s.publish(event.TypeItemUpdated, updated)
	return updated, nil
}

// Delete moves an active item to the deleted view.
func (s *ItemService) Delete(ctx context.Context, id string) (model.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Item{}, model.ErrItemNotFound
	}

	item, err := s.store.SoftDelete(ctx, id, s.now())
	if err != nil {
		return model.Item{}, err
	}

	s.publish(event.TypeItemDeleted, item)
	return item, nil
}

// Recover moves a deleted item back to the active view.
func (s *ItemService) Recover(ctx context.Context, id string) (model.Item, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Item{}, model.ErrItemNotFound
	}

	item, err := s.store.Recover(ctx, id, s.now())
	if err != nil {
		return model.Item{}, err
	}

	s.publish(event.TypeItemRecovered, item)
	return item, nil
}

func (s *ItemService) DeleteAll(ctx context.Context) (model.BulkResult, error) {
	affected, err := s.store.SoftDeleteAll(ctx, s.now())
	if err != nil {
		return model.BulkResult{}, err
	}

	result := model.BulkResult{Affected: affected}
	s.publish(event.TypeItemsDeleted, result)
	return result, nil
}

func (s *ItemService) RecoverAll(ctx context.Context) (model.BulkResult, error) {
	affected, err := s.store.RecoverAll(ctx, s.now())
	if err != nil {
		return model.BulkResult{}, err
	}

	result := model.BulkResult{Affected: affected}
	s.publish(event.TypeItemsRecovered, result)
	return result, nil
}

// Purge physically removes an item. Only items in the deleted view qualify.
func (s *ItemService) Purge(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return model.ErrItemNotFound
	}

	if err := s.store.Purge(ctx, id); err != nil {
		return err
	}

	s.publish(event.TypeItemPurged, map[string]string{"id": id})
	return nil
}

func (s *ItemService) publish(t event.Type, payload any) {
	slog.Debug("item lifecycle event", "type", t)
	if s.bus == nil {
		return
	}
	s.bus.Publish(event.New(t, payload))
}
