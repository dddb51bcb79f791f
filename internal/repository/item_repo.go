package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estate-ledger/internal/model"
)

const itemColumns = `id, name, price, created, updated, deleted`

var itemSortColumns = map[string]string{
	"name":    "name",
	"price":   "price",
	"created": "created",
	"updated": "updated",
	"deleted": "deleted",
}

type ItemRepository struct {
	pool *pgxpool.Pool
}

func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// viewPredicate returns the WHERE fragment selecting rows of the view.
func viewPredicate(view model.View) string {
	switch view {
	case model.ViewActive:
		return "deleted IS NULL"
	case model.ViewDeleted:
		return "deleted IS NOT NULL"
	default:
		return "TRUE"
	}
}

func (r *ItemRepository) Create(ctx context.Context, item model.Item) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO items (id, name, price, created, updated, deleted)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.Name, item.Price, item.Created, item.Updated, item.Deleted)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Find(ctx context.Context, view model.View, id string) (model.Item, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1 AND `+viewPredicate(view), id)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, model.ErrItemNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("find item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context, view model.View, query model.ItemQuery) ([]model.Item, int, error) {
	where := ` WHERE ` + viewPredicate(view)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`+where).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count items: %w", err)
	}

	offset := 0
	if query.Page > 1 {
		offset = (query.Page - 1) * query.Limit
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+itemColumns+` FROM items`+where+orderClause(query)+` LIMIT $1 OFFSET $2`,
		query.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *ItemRepository) Update(ctx context.Context, view model.View, item model.Item) (model.Item, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE items SET name = $2, price = $3, updated = $4
		 WHERE id = $1 AND `+viewPredicate(view)+`
		 RETURNING `+itemColumns,
		item.ID, item.Name, item.Price, item.Updated)

	updated, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, model.ErrItemNotFound
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

func (r *ItemRepository) SoftDelete(ctx context.Context, id string, at time.Time) (model.Item, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE items SET deleted = $2, updated = $2
		 WHERE id = $1 AND deleted IS NULL
		 RETURNING `+itemColumns, id, at)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, r.classifyMiss(ctx, id, model.ErrItemAlreadyDeleted)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("soft delete item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) Recover(ctx context.Context, id string, at time.Time) (model.Item, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE items SET deleted = NULL, updated = $2
		 WHERE id = $1 AND deleted IS NOT NULL
		 RETURNING `+itemColumns, id, at)

	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Item{}, r.classifyMiss(ctx, id, model.ErrItemNotDeleted)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("recover item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) SoftDeleteAll(ctx context.Context, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE items SET deleted = $1, updated = $1 WHERE deleted IS NULL`, at)
	if err != nil {
		return 0, fmt.Errorf("soft delete all items: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) RecoverAll(ctx context.Context, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE items SET deleted = NULL, updated = $1 WHERE deleted IS NOT NULL`, at)
	if err != nil {
		return 0, fmt.Errorf("recover all items: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ItemRepository) Purge(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1 AND deleted IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("purge item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrItemNotFound
	}
	return nil
}

// classifyMiss tells a missing id apart from a row already in the target
// state after a guarded UPDATE matched nothing.
func (r *ItemRepository) classifyMiss(ctx context.Context, id string, inTargetState error) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check item exists: %w", err)
	}
	if exists {
		return inTargetState
	}
	return model.ErrItemNotFound
}

func orderClause(query model.ItemQuery) string {
	column, ok := itemSortColumns[strings.ToLower(strings.TrimSpace(query.Sort))]
	if !ok {
		column = "created"
	}

	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(query.Order), "desc") {
		direction = "DESC"
	}

	return fmt.Sprintf(` ORDER BY %s %s NULLS LAST, id ASC`, column, direction)
}

func scanItem(row pgx.Row) (model.Item, error) {
	var item model.Item
	var deleted *time.Time
	if err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Created, &item.Updated, &deleted); err != nil {
		return model.Item{}, err
	}
	item.Created = item.Created.UTC()
	item.Updated = item.Updated.UTC()
	if deleted != nil {
		at := deleted.UTC()
		item.Deleted = &at
	}
	return item, nil
}
