package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"ramenmap/internal/db"
)

var ErrShopNotFound = errors.New("shop not found")

const shopColumns = `id, name, address, lat, lng, cashless, opening_hours, regular_holidays, hours_flagged, created_at, updated_at`

type ShopRepository struct {
	DB *sql.DB
}

func NewShopRepository(db *sql.DB) *ShopRepository {
	return &ShopRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (db.Shop, error) {
	var s db.Shop
	err := row.Scan(
		&s.ID, &s.Name, &s.Address, &s.Lat, &s.Lng, &s.Cashless,
		&s.OpeningHours, &s.RegularHolidays, &s.HoursFlagged, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// ShopFilter narrows ListShops. Empty fields are ignored.
type ShopFilter struct {
	Cashless string
	Name     string
}

func (r *ShopRepository) ListShops(ctx context.Context, filter ShopFilter) ([]db.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.Cashless != "" {
		query += " AND cashless = $" + strconv.Itoa(idx)
		args = append(args, filter.Cashless)
		idx++
	}
	if filter.Name != "" {
		query += " AND name ILIKE $" + strconv.Itoa(idx)
		args = append(args, "%"+filter.Name+"%")
		idx++
	}
	query += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying shops: %w", err)
	}
	defer rows.Close()

	var shops []db.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning shop: %w", err)
		}
		shops = append(shops, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating shops: %w", err)
	}
	return shops, nil
}

func (r *ShopRepository) GetShop(ctx context.Context, id int) (*db.Shop, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id)
	s, err := scanShop(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("error querying shop %d: %w", id, err)
	}
	return &s, nil
}

// CreateShop inserts shop and fills in its ID and timestamps.
func (r *ShopRepository) CreateShop(ctx context.Context, shop *db.Shop) error {
	query := `
		INSERT INTO shops (name, address, lat, lng, cashless, opening_hours, regular_holidays)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		shop.Name, shop.Address, shop.Lat, shop.Lng, shop.Cashless, shop.OpeningHours, shop.RegularHolidays,
	).Scan(&shop.ID, &shop.CreatedAt, &shop.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting shop: %w", err)
	}
	return nil
}

func (r *ShopRepository) UpdateShop(ctx context.Context, shop *db.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, address = $3, lat = $4, lng = $5, cashless = $6,
			opening_hours = $7, regular_holidays = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		shop.ID, shop.Name, shop.Address, shop.Lat, shop.Lng, shop.Cashless, shop.OpeningHours, shop.RegularHolidays,
	).Scan(&shop.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShopNotFound
		}
		return fmt.Errorf("error updating shop %d: %w", shop.ID, err)
	}
	return nil
}

func (r *ShopRepository) DeleteShop(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting shop %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading rows affected: %w", err)
	}
	if n == 0 {
		return ErrShopNotFound
	}
	return nil
}

func (r *ShopRepository) CountShops(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting shops: %w", err)
	}
	return n, nil
}

// SeedShops inserts shops in one transaction, but only while the table is
// empty. It reports how many rows were written.
func (r *ShopRepository) SeedShops(ctx context.Context, shops []db.Shop) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("error starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	// Serialize concurrent seeders so the emptiness check stays valid.
	if _, err := tx.ExecContext(ctx, `LOCK TABLE shops IN EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("error locking shops: %w", err)
	}
	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM shops`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting shops: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO shops (name, address, lat, lng, cashless, opening_hours, regular_holidays)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return 0, fmt.Errorf("error preparing seed insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range shops {
		if _, err := stmt.ExecContext(ctx, s.Name, s.Address, s.Lat, s.Lng, s.Cashless, s.OpeningHours, s.RegularHolidays); err != nil {
			return 0, fmt.Errorf("error seeding shop %q: %w", s.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("error committing seed: %w", err)
	}
	return len(shops), nil
}
