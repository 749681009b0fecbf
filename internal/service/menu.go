package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/orderup/internal/database/repository"
	"github.com/jask/orderup/internal/order"
)

// Menu loads the catalog from the store and filters it for the browse screen.
type Menu struct {
	Dishes *repository.DishRepo

	catalog order.Catalog
}

// NewMenu wraps an already loaded catalog, e.g. the built-in one.
func NewMenu(c order.Catalog) *Menu {
	return &Menu{catalog: c}
}

// Load reads every stored dish into the catalog.
func (m *Menu) Load(ctx context.Context) (order.Catalog, error) {
	if m.Dishes == nil {
		return order.Catalog{}, fmt.Errorf("menu: dish repo not configured")
	}
	rows, err := m.Dishes.List(ctx)
	if err != nil {
		return order.Catalog{}, fmt.Errorf("list dishes: %w", err)
	}
	dishes := make([]order.Dish, 0, len(rows))
	for _, r := range rows {
		dishes = append(dishes, r.OrderDish())
	}
	c, err := order.NewCatalog(dishes)
	if err != nil {
		return order.Catalog{}, err
	}
	m.catalog = c
	return c, nil
}

// Search returns dishes whose name, description or category contain query,
// followed by dishes with a word within a small edit distance of it.
// An empty query returns the whole catalog.
func (m *Menu) Search(query string) []order.Dish {
	q := strings.ToLower(strings.TrimSpace(query))
	all := m.catalog.Dishes()
	if q == "" {
		return all
	}

	type hit struct {
		dish order.Dish
		dist int
		pos  int
	}
	var hits []hit
	budget := fuzzBudget(q)
	for pos, d := range all {
		hay := strings.ToLower(d.Name + " " + d.Description + " " + d.Category)
		if strings.Contains(hay, q) {
			hits = append(hits, hit{dish: d, dist: 0, pos: pos})
			continue
		}
		if budget == 0 {
			continue
		}
		best := budget + 1
		for _, w := range strings.FieldsFunc(hay, notWordRune) {
			if dist := levenshtein.ComputeDistance(q, w); dist < best {
				best = dist
			}
		}
		if best <= budget {
			hits = append(hits, hit{dish: d, dist: best, pos: pos})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].pos < hits[j].pos
	})
	out := make([]order.Dish, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.dish)
	}
	return out
}

// fuzzBudget allows one typo from four runes and two from eight. Shorter
// queries only match as substrings.
func fuzzBudget(q string) int {
	switch n := utf8.RuneCountInString(q); {
	case n >= 8:
		return 2
	case n >= 4:
		return 1
	default:
		return 0
	}
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
