package database

import (
	"context"
	"database/sql"

	"github.com/jask/orderup/internal/database/repository"
	"github.com/jask/orderup/internal/order"
)

// SeedDefaults stores the built-in menu when the dishes table is empty.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	dishes := repository.NewDishRepo(db)
	n, err := dishes.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for idx, d := range order.DefaultDishes() {
		if err := dishes.Upsert(ctx, repository.FromOrderDish(d, idx)); err != nil {
			return err
		}
	}
	return nil
}
