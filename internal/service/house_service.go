package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"estate-ledger/internal/event"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/pkg/apierror"
)

type HouseService struct {
	store repository.HouseStore
	bus   event.Bus
	pages Pagination
	today func() model.Date
}

func NewHouseService(store repository.HouseStore, bus event.Bus, pages Pagination) *HouseService {
	return &HouseService{store: store, bus: bus, pages: pages, today: model.Today}
}

func (s *HouseService) Create(ctx context.Context, req model.HouseRequest) (model.House, error) {
	house, err := validateHouse(req)
	if err != nil {
		return model.House{}, err
	}

	house.ID = uuid.NewString()
	if err := s.store.Create(ctx, house); err != nil {
		return model.House{}, err
	}
	return house, nil
}

func (s *HouseService) Get(ctx context.Context, id string) (model.House, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.House{}, model.ErrHouseNotFound
	}
	return s.store.FindByID(ctx, id, s.today())
}

func (s *HouseService) List(ctx context.Context, page int, limit int) (model.HouseList, model.Meta, error) {
	page, limit = s.pages.normalize(page, limit)
	houses, total, err := s.store.List(ctx, s.today(), limit, offsetFor(page, limit))
	if err != nil {
		return model.HouseList{}, model.Meta{}, err
	}
	return model.HouseList{Houses: houses}, model.NewMeta(page, limit, total), nil
}

func (s *HouseService) Update(ctx context.Context, id string, req model.HouseRequest) (model.House, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.House{}, model.ErrHouseNotFound
	}

	house, err := validateHouse(req)
	if err != nil {
		return model.House{}, err
	}

	house.ID = id
	if err := s.store.Update(ctx, house); err != nil {
		return model.House{}, err
	}
	return s.store.FindByID(ctx, id, s.today())
}

func (s *HouseService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return model.ErrHouseNotFound
	}
	return s.store.Delete(ctx, id)
}

// ExpireTenancy ends today every running lease on the given houses.
func (s *HouseService) ExpireTenancy(ctx context.Context, houseIDs []string) (model.BulkResult, error) {
	if len(houseIDs) == 0 {
		return model.BulkResult{}, apierror.Validation("at least one house id is required", "house_ids")
	}
	ids := make([]string, 0, len(houseIDs))
	for _, raw := range houseIDs {
		id, ok := canonicalID(raw)
		if !ok {
			return model.BulkResult{}, apierror.Validation("invalid house id", raw)
		}
		ids = append(ids, id)
	}

	affected, err := s.store.ExpireTenancy(ctx, ids, s.today())
	if err != nil {
		return model.BulkResult{}, err
	}

	slog.Info("tenancy expired", "houses", len(ids), "contracts", affected)
	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeTenancyExpired, map[string]any{
			"house_ids": ids,
			"affected":  affected,
		}))
	}
	return model.BulkResult{Affected: affected}, nil
}

func validateHouse(req model.HouseRequest) (model.House, error) {
	postNumber, err := requireText(req.PostNumber, "post_number", 1, 10)
	if err != nil {
		return model.House{}, err
	}
	address, err := requireText(req.Address, "address", 1, 100)
	if err != nil {
		return model.House{}, err
	}
	detail, err := requireText(req.DetailAddress, "detail_address", 0, 100)
	if err != nil {
		return model.House{}, err
	}
	if !req.Category.Valid() {
		return model.House{}, apierror.Validation("category must be one of Apartment, House, Studio", "category")
	}

	return model.House{
		PostNumber:    postNumber,
		Address:       address,
		DetailAddress: detail,
		Category:      req.Category,
	}, nil
}
