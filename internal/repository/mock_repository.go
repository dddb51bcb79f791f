package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"estate-ledger/internal/model"
)

type MockItemStore struct {
	mock.Mock
}

func (m *MockItemStore) Create(ctx context.Context, item model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemStore) Find(ctx context.Context, view model.View, id string) (model.Item, error) {
	args := m.Called(ctx, view, id)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) List(ctx context.Context, view model.View, query model.ItemQuery) ([]model.Item, int, error) {
	args := m.Called(ctx, view, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Item), args.Int(1), args.Error(2)
}

func (m *MockItemStore) Update(ctx context.Context, view model.View, item model.Item) (model.Item, error) {
	args := m.Called(ctx, view, item)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) SoftDelete(ctx context.Context, id string, at time.Time) (model.Item, error) {
	args := m.Called(ctx, id, at)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) Recover(ctx context.Context, id string, at time.Time) (model.Item, error) {
	args := m.Called(ctx, id, at)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) SoftDeleteAll(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemStore) RecoverAll(ctx context.Context, at time.Time) (int64, error) {
	args := m.Called(ctx, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemStore) Purge(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPersonStore struct {
	mock.Mock
}

func (m *MockPersonStore) Create(ctx context.Context, person model.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonStore) FindByID(ctx context.Context, id string) (model.Person, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Person), args.Error(1)
}

func (m *MockPersonStore) List(ctx context.Context, limit int, offset int) ([]model.Person, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Person), args.Int(1), args.Error(2)
}

func (m *MockPersonStore) Update(ctx context.Context, person model.Person) error {
	args := m.Called(ctx, person)
	return args.Error(0)
}

func (m *MockPersonStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHouseStore struct {
	mock.Mock
}

func (m *MockHouseStore) Create(ctx context.Context, house model.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseStore) FindByID(ctx context.Context, id string, today model.Date) (model.House, error) {
	args := m.Called(ctx, id, today)
	return args.Get(0).(model.House), args.Error(1)
}

func (m *MockHouseStore) List(ctx context.Context, today model.Date, limit int, offset int) ([]model.House, int, error) {
	args := m.Called(ctx, today, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.House), args.Int(1), args.Error(2)
}

func (m *MockHouseStore) Update(ctx context.Context, house model.House) error {
	args := m.Called(ctx, house)
	return args.Error(0)
}

func (m *MockHouseStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHouseStore) ExpireTenancy(ctx context.Context, houseIDs []string, on model.Date) (int64, error) {
	args := m.Called(ctx, houseIDs, on)
	return args.Get(0).(int64), args.Error(1)
}

type MockOwnershipStore struct {
	mock.Mock
}

func (m *MockOwnershipStore) Create(ctx context.Context, ownership model.Ownership) error {
	args := m.Called(ctx, ownership)
	return args.Error(0)
}

func (m *MockOwnershipStore) FindByID(ctx context.Context, id string) (model.Ownership, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Ownership), args.Error(1)
}

func (m *MockOwnershipStore) List(ctx context.Context, filter model.OwnershipFilter, limit int, offset int) ([]model.Ownership, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]model.Ownership), args.Int(1), args.Error(2)
}

func (m *MockOwnershipStore) Update(ctx context.Context, ownership model.Ownership) error {
	args := m.Called(ctx, ownership)
	return args.Error(0)
}

func (m *MockOwnershipStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	_ ItemStore      = (*ItemRepository)(nil)
	_ PersonStore    = (*PersonRepository)(nil)
	_ HouseStore     = (*HouseRepository)(nil)
	_ OwnershipStore = (*OwnershipRepository)(nil)
	_ ItemStore      = (*MockItemStore)(nil)
	_ PersonStore    = (*MockPersonStore)(nil)
	_ HouseStore     = (*MockHouseStore)(nil)
	_ OwnershipStore = (*MockOwnershipStore)(nil)
)
