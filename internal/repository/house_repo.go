package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estate-ledger/internal/model"
)

// houseSelect derives the current owner (latest Buy contract) and the current
// tenant (latest lease ending after $2) for each house. $1 is the lease
// category list.
const houseSelect = `
	SELECT h.id, h.post_number, h.address, h.detail_address, h.category,
	       (SELECT p.name FROM ownerships o JOIN persons p ON p.id = o.owner_id
	         WHERE o.house_id = h.id AND o.category = 'Buy'
	         ORDER BY o.started DESC LIMIT 1) AS current_owner,
	       (SELECT p.name FROM ownerships o JOIN persons p ON p.id = o.owner_id
	         WHERE o.house_id = h.id AND o.category = ANY($1) AND o.ended > $2
	         ORDER BY o.started DESC LIMIT 1) AS current_tenant
	FROM houses h`

type HouseRepository struct {
	pool *pgxpool.Pool
}

func NewHouseRepository(pool *pgxpool.Pool) *HouseRepository {
	return &HouseRepository{pool: pool}
}

func leaseCategories() []string {
	out := make([]string, 0, len(model.LeaseCategories))
	for _, c := range model.LeaseCategories {
		out = append(out, string(c))
	}
	return out
}

func (r *HouseRepository) Create(ctx context.Context, h model.House) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO houses (id, post_number, address, detail_address, category)
		 VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.PostNumber, h.Address, h.DetailAddress, string(h.Category))
	if err != nil {
		return fmt.Errorf("create house: %w", err)
	}
	return nil
}

func (r *HouseRepository) FindByID(ctx context.Context, id string, today model.Date) (model.House, error) {
	row := r.pool.QueryRow(ctx, houseSelect+` WHERE h.id = $3`, leaseCategories(), today.Time, id)

	h, err := scanHouse(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.House{}, model.ErrHouseNotFound
	}
	if err != nil {
		return model.House{}, fmt.Errorf("find house by id: %w", err)
	}
	return h, nil
}

func (r *HouseRepository) List(ctx context.Context, today model.Date, limit int, offset int) ([]model.House, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM houses`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count houses: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		houseSelect+` ORDER BY h.category, h.post_number, h.address, h.detail_address, h.id LIMIT $3 OFFSET $4`,
		leaseCategories(), today.Time, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list houses: %w", err)
	}
	defer rows.Close()

	houses := make([]model.House, 0)
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan house: %w", err)
		}
		houses = append(houses, h)
	}
	return houses, total, rows.Err()
}

func (r *HouseRepository) Update(ctx context.Context, h model.House) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE houses SET post_number = $2, address = $3, detail_address = $4, category = $5 WHERE id = $1`,
		h.ID, h.PostNumber, h.Address, h.DetailAddress, string(h.Category))
	if err != nil {
		return fmt.Errorf("update house: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrHouseNotFound
	}
	return nil
}

func (r *HouseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM houses WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return model.ErrInUse
	}
	if err != nil {
		return fmt.Errorf("delete house: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrHouseNotFound
	}
	return nil
}

// ExpireTenancy ends, on the given day, every lease of the given houses that
// has already started and is still running.
func (r *HouseRepository) ExpireTenancy(ctx context.Context, houseIDs []string, on model.Date) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ownerships SET ended = $3
		 WHERE house_id = ANY($1) AND category = ANY($2)
		   AND started <= $3 AND (ended IS NULL OR ended > $3)`,
		houseIDs, leaseCategories(), on.Time)
	if err != nil {
		return 0, fmt.Errorf("expire tenancy: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanHouse(row pgx.Row) (model.House, error) {
	var h model.House
	var category string
	if err := row.Scan(&h.ID, &h.PostNumber, &h.Address, &h.DetailAddress, &category,
		&h.CurrentOwner, &h.CurrentTenant); err != nil {
		return model.House{}, err
	}
	h.Category = model.HouseCategory(category)
	return h, nil
}
