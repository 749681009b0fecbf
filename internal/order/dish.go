package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDishID     = errors.New("dish id is empty")
	ErrDuplicateDishID = errors.New("duplicate dish id")
)

// Dish is a catalog entry. Dishes are never mutated once loaded.
type Dish struct {
	ID          string
	Name        string
	Description string
	Price       Amount
	Category    string
}

// DefaultDishes is the built-in menu used when no catalog has been stored yet.
func DefaultDishes() []Dish {
	return []Dish{
		{ID: "1", Name: "Starters Menu", Description: "Dark chicken and sour cherry terrine...", Price: 10000, Category: "Starters"},
		{ID: "2", Name: "Main Course", Description: "Chicken Picatta meatballs...", Price: 20000, Category: "Main"},
		{ID: "3", Name: "Dessert", Description: "Carrot Cake...", Price: 10000, Category: "Dessert"},
	}
}

// Catalog is the read-only menu shown while browsing.
type Catalog struct {
	dishes []Dish
}

// NewCatalog validates that every dish has a unique, non-empty id.
func NewCatalog(dishes []Dish) (Catalog, error) {
	c := Catalog{dishes: make([]Dish, 0, len(dishes))}
	seen := make(map[string]struct{}, len(dishes))
	for i, d := range dishes {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("dish %d (%s): %w", i, d.Name, ErrEmptyDishID)
		}
		if _, ok := seen[id]; ok {
			return Catalog{}, fmt.Errorf("dish %s: %w", id, ErrDuplicateDishID)
		}
		seen[id] = struct{}{}
		d.ID = id
		c.dishes = append(c.dishes, d)
	}
	return c, nil
}

// Dishes returns a copy of the catalog in display order.
func (c Catalog) Dishes() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

func (c Catalog) Len() int { return len(c.dishes) }
