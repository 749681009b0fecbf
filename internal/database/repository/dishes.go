package repository

import (
	"context"
	"database/sql"
	"errors"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DishRepo handles the menu catalog.
type DishRepo struct {
	db querier
}

// NewDishRepo accepts a *sql.DB, or a *sql.Tx to group writes.
func NewDishRepo(db querier) *DishRepo { return &DishRepo{db: db} }

func (r *DishRepo) Upsert(ctx context.Context, d Dish) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO dishes(id, name, description, price_cents, category, sort_order, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 description=excluded.description,
	 price_cents=excluded.price_cents,
	 category=excluded.category,
	 sort_order=excluded.sort_order,
	 updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Name, d.Description, d.PriceCents, d.Category, d.SortOrder)
	return err
}

func (r *DishRepo) List(ctx context.Context) ([]Dish, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, description, price_cents, category, sort_order, created_at, updated_at
	FROM dishes ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Dish
	for rows.Next() {
		var d Dish
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.PriceCents, &d.Category, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Get returns nil when no dish has the id.
func (r *DishRepo) Get(ctx context.Context, id string) (*Dish, error) {
	var d Dish
	err := r.db.QueryRowContext(ctx, `
	SELECT id, name, description, price_cents, category, sort_order, created_at, updated_at
	FROM dishes WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Description, &d.PriceCents, &d.Category, &d.SortOrder, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteAll empties the catalog.
func (r *DishRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM dishes`)
	return err
}

// NextSortOrder is one past the highest stored position, or 0 when empty.
func (r *DishRepo) NextSortOrder(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM dishes`).Scan(&n)
	return n, err
}

func (r *DishRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dishes`).Scan(&n)
	return n, err
}
