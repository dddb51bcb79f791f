package service

import (
	"context"

	"github.com/google/uuid"

	"estate-ledger/internal/event"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/pkg/apierror"
)

type OwnershipService struct {
	store repository.OwnershipStore
	bus   event.Bus
	pages Pagination
}

func NewOwnershipService(store repository.OwnershipStore, bus event.Bus, pages Pagination) *OwnershipService {
	return &OwnershipService{store: store, bus: bus, pages: pages}
}

func (s *OwnershipService) Create(ctx context.Context, req model.OwnershipRequest) (model.Ownership, error) {
	ownership, err := validateOwnership(req)
	if err != nil {
		return model.Ownership{}, err
	}

	ownership.ID = uuid.NewString()
	if err := s.store.Create(ctx, ownership); err != nil {
		return model.Ownership{}, err
	}
	return ownership, nil
}

func (s *OwnershipService) Get(ctx context.Context, id string) (model.Ownership, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Ownership{}, model.ErrOwnershipNotFound
	}
	return s.store.FindByID(ctx, id)
}

func (s *OwnershipService) List(ctx context.Context, filter model.OwnershipFilter, page int, limit int) (model.OwnershipList, model.Meta, error) {
	if filter.HouseID != "" {
		houseID, ok := canonicalID(filter.HouseID)
		if !ok {
			return model.OwnershipList{}, model.Meta{}, apierror.Validation("invalid house id", "house_id")
		}
		filter.HouseID = houseID
	}
	if filter.OwnerID != "" {
		ownerID, ok := canonicalID(filter.OwnerID)
		if !ok {
			return model.OwnershipList{}, model.Meta{}, apierror.Validation("invalid owner id", "owner_id")
		}
		filter.OwnerID = ownerID
	}

	page, limit = s.pages.normalize(page, limit)
	ownerships, total, err := s.store.List(ctx, filter, limit, offsetFor(page, limit))
	if err != nil {
		return model.OwnershipList{}, model.Meta{}, err
	}
	return model.OwnershipList{Ownerships: ownerships}, model.NewMeta(page, limit, total), nil
}

func (s *OwnershipService) Update(ctx context.Context, id string, req model.OwnershipRequest) (model.Ownership, error) {
	id, ok := canonicalID(id)
	if !ok {
		return model.Ownership{}, model.ErrOwnershipNotFound
	}

	ownership, err := validateOwnership(req)
	if err != nil {
		return model.Ownership{}, err
	}

	ownership.ID = id
	if err := s.store.Update(ctx, ownership); err != nil {
		return model.Ownership{}, err
	}
	return s.store.FindByID(ctx, id)
}

func (s *OwnershipService) Delete(ctx context.Context, id string) error {
	id, ok := canonicalID(id)
	if !ok {
		return model.ErrOwnershipNotFound
	}
	return s.store.Delete(ctx, id)
}

// Extend moves the end date of a lease forward. Purchases have no term.
func (s *OwnershipService) Extend(ctx context.Context, id string, until *model.Date) (model.Ownership, error) {
	if until == nil {
		return model.Ownership{}, apierror.Validation("ended is required", "ended")
	}

	ownership, err := s.Get(ctx, id)
	if err != nil {
		return model.Ownership{}, err
	}

	if !ownership.Category.IsLease() {
		return model.Ownership{}, apierror.Validation("only lease contracts can be extended", "category")
	}

	floor := ownership.Started
	if ownership.Ended != nil {
		floor = *ownership.Ended
	}
	if !until.After(floor.Time) {
		return model.Ownership{}, apierror.Validation("new end date must be after "+floor.String(), "ended")
	}

	ownership.Ended = until
	if err := s.store.Update(ctx, ownership); err != nil {
		return model.Ownership{}, err
	}

	if s.bus != nil {
		s.bus.Publish(event.New(event.TypeOwnershipExtended, ownership))
	}
	return ownership, nil
}

func validateOwnership(req model.OwnershipRequest) (model.Ownership, error) {
	ownerID, ok := canonicalID(req.OwnerID)
	if !ok {
		return model.Ownership{}, apierror.Validation("owner_id is required", "owner_id")
	}
	houseID, ok := canonicalID(req.HouseID)
	if !ok {
		return model.Ownership{}, apierror.Validation("house_id is required", "house_id")
	}
	if !req.Category.Valid() {
		return model.Ownership{}, apierror.Validation("category must be one of Buy, LongTerm, ShortTerm", "category")
	}
	if req.Amount == nil {
		return model.Ownership{}, apierror.Validation("amount is required", "amount")
	}
	if *req.Amount < 0 {
		return model.Ownership{}, apierror.Validation("amount cannot be negative", "amount")
	}
	if req.Started == nil {
		return model.Ownership{}, apierror.Validation("started is required", "started")
	}
	if req.Ended != nil && req.Ended.Before(req.Started.Time) {
		return model.Ownership{}, apierror.Validation("ended cannot be before started", "ended")
	}

	return model.Ownership{
		OwnerID:  ownerID,
		HouseID:  houseID,
		Category: req.Category,
		Amount:   *req.Amount,
		Started:  *req.Started,
		Ended:    req.Ended,
	}, nil
}
