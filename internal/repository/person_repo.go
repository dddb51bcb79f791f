package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"estate-ledger/internal/model"
)

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) Create(ctx context.Context, p model.Person) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO persons (id, name, age, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.Age, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (model.Person, error) {
	var p model.Person
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, age, created_at, updated_at FROM persons WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Person{}, model.ErrPersonNotFound
	}
	if err != nil {
		return model.Person{}, fmt.Errorf("find person by id: %w", err)
	}
	return p, nil
}

func (r *PersonRepository) List(ctx context.Context, limit int, offset int) ([]model.Person, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM persons`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count persons: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, age, created_at, updated_at FROM persons
		 ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	persons := make([]model.Person, 0)
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, p)
	}
	return persons, total, rows.Err()
}

func (r *PersonRepository) Update(ctx context.Context, p model.Person) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE persons SET name = $2, age = $3, updated_at = $4 WHERE id = $1`,
		p.ID, p.Name, p.Age, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPersonNotFound
	}
	return nil
}

func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return model.ErrInUse
	}
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPersonNotFound
	}
	return nil
}
