// Package testdata builds sample menus for tests and demos.
package testdata

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/jask/orderup/internal/database/repository"
	"github.com/jask/orderup/internal/order"
)

var (
	categories = []string{"Starters", "Main", "Dessert", "Sides", "Drinks"}
	bases      = []string{"Terrine", "Meatballs", "Carrot Cake", "Risotto", "Fries", "Lemonade", "Soup", "Tart"}
	styles     = []string{"Smoked", "Roast", "Spiced", "Classic", "Grilled", "Chilled"}
)

// Dishes returns n distinct dishes. The same seed always yields the same
// names, prices and categories; IDs are random UUIDs.
func Dishes(n int, seed int64) []order.Dish {
	rng := rand.New(rand.NewSource(seed))
	out := make([]order.Dish, 0, n)
	for i := 0; i < n; i++ {
		base := bases[rng.Intn(len(bases))]
		style := styles[rng.Intn(len(styles))]
		out = append(out, order.Dish{
			ID:          uuid.NewString(),
			Name:        fmt.Sprintf("%s %s #%d", style, base, i+1),
			Description: fmt.Sprintf("%s %s, house style.", style, base),
			Price:       order.Amount((rng.Intn(400) + 20) * 50),
			Category:    categories[rng.Intn(len(categories))],
		})
	}
	return out
}

// Seed stores n generated dishes and returns them in display order.
func Seed(ctx context.Context, repo *repository.DishRepo, n int, seed int64) ([]order.Dish, error) {
	dishes := Dishes(n, seed)
	for i, d := range dishes {
		if err := repo.Upsert(ctx, repository.FromOrderDish(d, i)); err != nil {
			return nil, err
		}
	}
	return dishes, nil
}
