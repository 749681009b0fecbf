package repository

import (
	"time"

	"github.com/jask/orderup/internal/order"
)

// Dish represents a dishes row.
type Dish struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Category    string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FromOrderDish maps a catalog dish to a row at the given display position.
func FromOrderDish(d order.Dish, sortOrder int) Dish {
	return Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		PriceCents:  int64(d.Price),
		Category:    d.Category,
		SortOrder:   sortOrder,
	}
}

// OrderDish maps the row back to a catalog dish.
func (d Dish) OrderDish() order.Dish {
	return order.Dish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       order.Amount(d.PriceCents),
		Category:    d.Category,
	}
}
