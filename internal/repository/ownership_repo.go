package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estate-ledger/internal/model"
	"estate-ledger/pkg/apierror"
)

const ownershipColumns = `id, owner_id, house_id, category, amount, started, ended`

type OwnershipRepository struct {
	pool *pgxpool.Pool
}

func NewOwnershipRepository(pool *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{pool: pool}
}

func (r *OwnershipRepository) Create(ctx context.Context, o model.Ownership) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ownerships (`+ownershipColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.OwnerID, o.HouseID, string(o.Category), o.Amount, o.Started.Time, datePtr(o.Ended))
	if isForeignKeyViolation(err) {
		return apierror.Validation("owner or house does not exist", "owner_id,house_id")
	}
	if err != nil {
		return fmt.Errorf("create ownership: %w", err)
	}
	return nil
}

func (r *OwnershipRepository) FindByID(ctx context.Context, id string) (model.Ownership, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ownershipColumns+` FROM ownerships WHERE id = $1`, id)

	o, err := scanOwnership(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Ownership{}, model.ErrOwnershipNotFound
	}
	if err != nil {
		return model.Ownership{}, fmt.Errorf("find ownership by id: %w", err)
	}
	return o, nil
}

func (r *OwnershipRepository) List(ctx context.Context, filter model.OwnershipFilter, limit int, offset int) ([]model.Ownership, int, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.HouseID != "" {
		args = append(args, filter.HouseID)
		conditions = append(conditions, "house_id = $"+strconv.Itoa(len(args)))
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conditions = append(conditions, "owner_id = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ownerships`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ownerships: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM ownerships%s ORDER BY started DESC, id LIMIT $%d OFFSET $%d`,
		ownershipColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ownerships: %w", err)
	}
	defer rows.Close()

	ownerships := make([]model.Ownership, 0)
	for rows.Next() {
		o, err := scanOwnership(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan ownership: %w", err)
		}
		ownerships = append(ownerships, o)
	}
	return ownerships, total, rows.Err()
}

func (r *OwnershipRepository) Update(ctx context.Context, o model.Ownership) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE ownerships
		 SET owner_id = $2, house_id = $3, category = $4, amount = $5, started = $6, ended = $7
		 WHERE id = $1`,
		o.ID, o.OwnerID, o.HouseID, string(o.Category), o.Amount, o.Started.Time, datePtr(o.Ended))
	if isForeignKeyViolation(err) {
		return apierror.Validation("owner or house does not exist", "owner_id,house_id")
	}
	if err != nil {
		return fmt.Errorf("update ownership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOwnershipNotFound
	}
	return nil
}

func (r *OwnershipRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ownerships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ownership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOwnershipNotFound
	}
	return nil
}

func scanOwnership(row pgx.Row) (model.Ownership, error) {
	var o model.Ownership
	var category string
	var started time.Time
	var ended *time.Time
	if err := row.Scan(&o.ID, &o.OwnerID, &o.HouseID, &category, &o.Amount, &started, &ended); err != nil {
		return model.Ownership{}, err
	}
	o.Category = model.OwnershipCategory(category)
	o.Started = model.NewDate(started)
	o.Ended = dateFromPtr(ended)
	return o, nil
}
