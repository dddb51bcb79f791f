package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"estate-ledger/internal/model"
)

// ItemStore is the persistence contract behind the item views. Every read and
// write is scoped to a view; transitions are single statements so a row never
// shows a half-applied delete or recover.
type ItemStore interface {
	Create(ctx context.Context, item model.Item) error
	Find(ctx context.Context, view model.View, id string) (model.Item, error)
	List(ctx context.Context, view model.View, query model.ItemQuery) ([]model.Item, int, error)
	Update(ctx context.Context, view model.View, item model.Item) (model.Item, error)
	SoftDelete(ctx context.Context, id string, at time.Time) (model.Item, error)
	Recover(ctx context.Context, id string, at time.Time) (model.Item, error)
	SoftDeleteAll(ctx context.Context, at time.Time) (int64, error)
	RecoverAll(ctx context.Context, at time.Time) (int64, error)
	Purge(ctx context.Context, id string) error
}

type PersonStore interface {
	Create(ctx context.Context, person model.Person) error
	FindByID(ctx context.Context, id string) (model.Person, error)
	List(ctx context.Context, limit int, offset int) ([]model.Person, int, error)
	Update(ctx context.Context, person model.Person) error
	Delete(ctx context.Context, id string) error
}

type HouseStore interface {
	Create(ctx context.Context, house model.House) error
	FindByID(ctx context.Context, id string, today model.Date) (model.House, error)
	List(ctx context.Context, today model.Date, limit int, offset int) ([]model.House, int, error)
	Update(ctx context.Context, house model.House) error
	Delete(ctx context.Context, id string) error
	ExpireTenancy(ctx context.Context, houseIDs []string, on model.Date) (int64, error)
}

type OwnershipStore interface {
	Create(ctx context.Context, ownership model.Ownership) error
	FindByID(ctx context.Context, id string) (model.Ownership, error)
	List(ctx context.Context, filter model.OwnershipFilter, limit int, offset int) ([]model.Ownership, int, error)
	Update(ctx context.Context, ownership model.Ownership) error
	Delete(ctx context.Context, id string) error
}

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func datePtr(d *model.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func dateFromPtr(t *time.Time) *model.Date {
	if t == nil {
		return nil
	}
	d := model.NewDate(*t)
	return &d
}
