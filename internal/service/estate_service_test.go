package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estate-ledger/internal/event"
	"estate-ledger/internal/model"
	"estate-ledger/internal/repository"
	"estate-ledger/pkg/apierror"
)

const (
	houseID = "b0d3c2a1-1111-4a2b-8c3d-000000000001"
	ownerID = "b0d3c2a1-2222-4a2b-8c3d-000000000002"
	leaseID = "b0d3c2a1-3333-4a2b-8c3d-000000000003"
)

func mustDate(t *testing.T, raw string) model.Date {
	t.Helper()
	d, err := model.ParseDate(raw)
	require.NoError(t, err)
	return d
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var apiErr *apierror.APIError
	require.True(t, errors.As(err, &apiErr), "expected validation error, got %v", err)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Equal(t, field, apiErr.Details)
}

func TestPersonService(t *testing.T) {
	t.Parallel()

	t.Run("create trims name", func(t *testing.T) {
		store := new(repository.MockPersonStore)
		svc := NewPersonService(store, DefaultPagination())
		store.On("Create", mock.Anything, mock.MatchedBy(func(p model.Person) bool {
			return p.Name == "Kim" && p.Age == 41 && isCanonical(p.ID)
		})).Return(nil)

		age := 41
		person, err := svc.Create(context.Background(), model.PersonRequest{Name: strPtr("  Kim "), Age: &age})
		require.NoError(t, err)
		require.Equal(t, "Kim", person.Name)
		store.AssertExpectations(t)
	})

	t.Run("rejects negative age", func(t *testing.T) {
		svc := NewPersonService(new(repository.MockPersonStore), DefaultPagination())
		age := -1
		_, err := svc.Create(context.Background(), model.PersonRequest{Name: strPtr("Lee"), Age: &age})
		requireValidation(t, err, "age")
	})

	t.Run("delete in use surfaces conflict", func(t *testing.T) {
		store := new(repository.MockPersonStore)
		svc := NewPersonService(store, DefaultPagination())
		store.On("Delete", mock.Anything, ownerID).Return(model.ErrInUse)

		require.ErrorIs(t, svc.Delete(context.Background(), ownerID), model.ErrInUse)
	})

	t.Run("list pages through store", func(t *testing.T) {
		store := new(repository.MockPersonStore)
		svc := NewPersonService(store, Pagination{DefaultLimit: 10, MaxLimit: 10})
		store.On("List", mock.Anything, 10, 10).Return([]model.Person{{ID: ownerID, Name: "Park"}}, 11, nil)

		list, meta, err := svc.List(context.Background(), 2, 0)
		require.NoError(t, err)
		require.Len(t, list.Persons, 1)
		require.Equal(t, 2, meta.TotalPages)
	})
}

func TestHouseService(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown category", func(t *testing.T) {
		svc := NewHouseService(new(repository.MockHouseStore), nil, DefaultPagination())
		_, err := svc.Create(context.Background(), model.HouseRequest{
			PostNumber: "04524", Address: "Seoul", Category: "Castle",
		})
		requireValidation(t, err, "category")
	})

	t.Run("get passes today for tenancy derivation", func(t *testing.T) {
		store := new(repository.MockHouseStore)
		svc := NewHouseService(store, nil, DefaultPagination())
		today := mustDate(t, "2026-10-14")
		svc.today = func() model.Date { return today }

		tenant := "Choi"
		store.On("FindByID", mock.Anything, houseID, today).
			Return(model.House{ID: houseID, CurrentTenant: &tenant}, nil)

		house, err := svc.Get(context.Background(), houseID)
		require.NoError(t, err)
		require.Equal(t, "Choi", *house.CurrentTenant)
		require.Nil(t, house.CurrentOwner)
	})

	t.Run("expire tenancy publishes event", func(t *testing.T) {
		store := new(repository.MockHouseStore)
		bus := event.NewBus()
		events, unsubscribe := bus.Subscribe()
		defer unsubscribe()

		svc := NewHouseService(store, bus, DefaultPagination())
		today := mustDate(t, "2026-10-14")
		svc.today = func() model.Date { return today }
		store.On("ExpireTenancy", mock.Anything, []string{houseID}, today).Return(int64(2), nil)

		result, err := svc.ExpireTenancy(context.Background(), []string{houseID})
		require.NoError(t, err)
		require.Equal(t, int64(2), result.Affected)
		require.Equal(t, event.TypeTenancyExpired, (<-events).Type)
	})

	t.Run("expire tenancy validates ids", func(t *testing.T) {
		svc := NewHouseService(new(repository.MockHouseStore), nil, DefaultPagination())

		_, err := svc.ExpireTenancy(context.Background(), nil)
		requireValidation(t, err, "house_ids")

		_, err = svc.ExpireTenancy(context.Background(), []string{"17"})
		requireValidation(t, err, "17")
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		svc := NewHouseService(new(repository.MockHouseStore), nil, DefaultPagination())
		_, err := svc.Get(context.Background(), "house-1")
		require.ErrorIs(t, err, model.ErrHouseNotFound)
	})
}

func TestOwnershipService(t *testing.T) {
	t.Parallel()

	amount := int64(500000)

	t.Run("rejects end before start", func(t *testing.T) {
		svc := NewOwnershipService(new(repository.MockOwnershipStore), nil, DefaultPagination())
		started := mustDate(t, "2026-03-01")
		ended := mustDate(t, "2026-02-01")

		_, err := svc.Create(context.Background(), model.OwnershipRequest{
			OwnerID: ownerID, HouseID: houseID, Category: model.OwnershipLongTerm,
			Amount: &amount, Started: &started, Ended: &ended,
		})
		requireValidation(t, err, "ended")
	})

	t.Run("extend moves lease end forward", func(t *testing.T) {
		store := new(repository.MockOwnershipStore)
		svc := NewOwnershipService(store, nil, DefaultPagination())
		ended := mustDate(t, "2026-12-31")
		until := mustDate(t, "2027-12-31")

		store.On("FindByID", mock.Anything, leaseID).Return(model.Ownership{
			ID: leaseID, OwnerID: ownerID, HouseID: houseID, Category: model.OwnershipShortTerm,
			Amount: amount, Started: mustDate(t, "2026-01-01"), Ended: &ended,
		}, nil)
		store.On("Update", mock.Anything, mock.MatchedBy(func(o model.Ownership) bool {
			return o.Ended != nil && o.Ended.String() == "2027-12-31"
		})).Return(nil)

		extended, err := svc.Extend(context.Background(), leaseID, &until)
		require.NoError(t, err)
		require.Equal(t, "2027-12-31", extended.Ended.String())
		store.AssertExpectations(t)
	})

	t.Run("extend rejects non forward date", func(t *testing.T) {
		store := new(repository.MockOwnershipStore)
		svc := NewOwnershipService(store, nil, DefaultPagination())
		ended := mustDate(t, "2026-12-31")
		until := mustDate(t, "2026-06-30")

		store.On("FindByID", mock.Anything, leaseID).Return(model.Ownership{
			ID: leaseID, Category: model.OwnershipLongTerm, Started: mustDate(t, "2026-01-01"), Ended: &ended,
		}, nil)

		_, err := svc.Extend(context.Background(), leaseID, &until)
		requireValidation(t, err, "ended")
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("extend rejects purchases", func(t *testing.T) {
		store := new(repository.MockOwnershipStore)
		svc := NewOwnershipService(store, nil, DefaultPagination())
		until := mustDate(t, "2030-01-01")

		store.On("FindByID", mock.Anything, leaseID).Return(model.Ownership{
			ID: leaseID, Category: model.OwnershipBuy, Started: mustDate(t, "2026-01-01"),
		}, nil)

		_, err := svc.Extend(context.Background(), leaseID, &until)
		requireValidation(t, err, "category")
	})

	t.Run("list validates filters", func(t *testing.T) {
		svc := NewOwnershipService(new(repository.MockOwnershipStore), nil, DefaultPagination())
		_, _, err := svc.List(context.Background(), model.OwnershipFilter{HouseID: "nope"}, 1, 10)
		requireValidation(t, err, "house_id")
	})
}
