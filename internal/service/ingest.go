package service

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jask/orderup/internal/database"
	"github.com/jask/orderup/internal/database/repository"
	"github.com/jask/orderup/internal/order"
)

// IngestService imports menu files into the dish store. A file is parsed in
// full before anything is written, and all writes share one transaction.
type IngestService struct {
	DB *sql.DB
	// Currency is the symbol stripped from price strings, e.g. "R".
	Currency string
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ErrNoValidDishes is returned by a replacing import that has nothing to
// replace the stored menu with.
var ErrNoValidDishes = errors.New("no valid dishes in catalog")

var errMissingID = errors.New("missing id")

// catalogFile is the TOML layout:
//
//	currency = "R"
//
//	[[dish]]
//	id = "1"
//	name = "Starters Menu"
//	description = "Dark chicken and sour cherry terrine..."
//	price = "R100.00"
//	category = "Starters"
type catalogFile struct {
	Currency string        `toml:"currency"`
	Dish     []catalogDish `toml:"dish"`
}

type catalogDish struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Price       string `toml:"price"`
	Category    string `toml:"category"`
	SortOrder   *int   `toml:"sort_order"`
}

// pendingDish is a validated row waiting to be written. A nil sortOrder
// means "keep the stored position, or append".
type pendingDish struct {
	dish      order.Dish
	sortOrder *int
}

// ImportFile picks the format from the extension (.toml or .csv). With
// replace set the stored menu is swapped for the file's dishes; otherwise
// they are merged in. Row errors are prefixed with the file name.
func (s *IngestService) ImportFile(ctx context.Context, path string, replace bool) (IngestResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".toml" && ext != ".csv" {
		return IngestResult{}, fmt.Errorf("unsupported catalog format %q", ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return IngestResult{}, err
	}
	defer f.Close()

	var res IngestResult
	if ext == ".toml" {
		res, err = s.ImportTOML(ctx, f, replace)
	} else {
		res, err = s.ImportCSV(ctx, f, replace)
	}
	for i := range res.Errors {
		res.Errors[i] = fmt.Errorf("%s: %w", filepath.Base(path), res.Errors[i])
	}
	return res, err
}

// ImportTOML ingests a catalog TOML document. A file-level currency overrides
// the service default for its prices.
func (s *IngestService) ImportTOML(ctx context.Context, r io.Reader, replace bool) (IngestResult, error) {
	var file catalogFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return IngestResult{}, fmt.Errorf("decode catalog: %w", err)
	}
	currency := s.Currency
	if file.Currency != "" {
		currency = file.Currency
	}
	res := IngestResult{}
	rows := newRowSet()
	for i, cd := range file.Dish {
		rows.add(&res, fmt.Sprintf("dish %d", i+1), cd.ID, cd.Name, cd.Description, cd.Price, cd.Category, cd.SortOrder, currency)
	}
	return s.store(ctx, rows.pending, replace, res)
}

// CSV columns: id, name, description, price, category. A first row whose id
// column reads "id" is treated as a header. Rows keep their file order.
func (s *IngestService) ImportCSV(ctx context.Context, r io.Reader, replace bool) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	rows := newRowSet()
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "id") {
			continue
		}
		if len(rec) < 4 {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected at least 4 columns (id, name, description, price)", line))
			continue
		}
		category := ""
		if len(rec) > 4 {
			category = rec[4]
		}
		rows.add(&res, fmt.Sprintf("line %d", line), rec[0], rec[1], rec[2], rec[3], category, nil, s.Currency)
	}
	return s.store(ctx, rows.pending, replace, res)
}

type rowSet struct {
	pending []pendingDish
	seen    map[string]struct{}
}

func newRowSet() *rowSet {
	return &rowSet{seen: map[string]struct{}{}}
}

func (rs *rowSet) add(res *IngestResult, where, id, name, desc, price, category string, sortOrder *int, currency string) {
	id = strings.TrimSpace(id)
	if id == "" {
		res.Errors = append(res.Errors, fmt.Errorf("%s: %w", where, errMissingID))
		return
	}
	if _, dup := rs.seen[id]; dup {
		res.Skipped++
		return
	}
	amount, err := order.ParsePrice(price, currency)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("%s price: %w", where, err))
		return
	}
	rs.seen[id] = struct{}{}
	rs.pending = append(rs.pending, pendingDish{
		dish: order.Dish{
			ID:          id,
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(desc),
			Price:       amount,
			Category:    strings.TrimSpace(category),
		},
		sortOrder: sortOrder,
	})
}

// store writes rows in one transaction. Dishes without an explicit position
// keep the one already stored for their id; new ones go after the existing
// menu. Any write error rolls the whole import back.
func (s *IngestService) store(ctx context.Context, rows []pendingDish, replace bool, res IngestResult) (IngestResult, error) {
	if s.DB == nil {
		return res, fmt.Errorf("ingest: db not configured")
	}
	if replace && len(rows) == 0 {
		return res, ErrNoValidDishes
	}
	err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		dishes := repository.NewDishRepo(tx)
		if replace {
			if err := dishes.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clear dishes: %w", err)
			}
		}
		next, err := dishes.NextSortOrder(ctx)
		if err != nil {
			return fmt.Errorf("next sort order: %w", err)
		}
		for _, row := range rows {
			pos, err := position(ctx, dishes, row, &next)
			if err != nil {
				return err
			}
			if err := dishes.Upsert(ctx, repository.FromOrderDish(row.dish, pos)); err != nil {
				return fmt.Errorf("insert %s: %w", row.dish.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	res.Imported = len(rows)
	return res, nil
}

func position(ctx context.Context, dishes *repository.DishRepo, row pendingDish, next *int) (int, error) {
	if row.sortOrder != nil {
		return *row.sortOrder, nil
	}
	existing, err := dishes.Get(ctx, row.dish.ID)
	if err != nil {
		return 0, fmt.Errorf("lookup %s: %w", row.dish.ID, err)
	}
	if existing != nil {
		return existing.SortOrder, nil
	}
	pos := *next
	*next++
	return pos, nil
}
