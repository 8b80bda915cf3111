package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetFlaggedShopIDs returns the shops whose hours were flagged by the last audit.
func (r *JobRepository) GetFlaggedShopIDs(ctx context.Context) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id FROM shops WHERE hours_flagged ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying flagged shops: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning shop ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateHoursFlags sets hours_flagged for the given shops.
func (r *JobRepository) UpdateHoursFlags(ctx context.Context, ids []int, flagged bool) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE shops SET hours_flagged = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.ExecContext(ctx, query, flagged, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating hours flags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		slog.Warn("could not get rows affected", slog.Any("error", err))
	} else {
		slog.Info("updated hours flags", slog.Int64("rows", rowsAffected), slog.Bool("flagged", flagged))
	}
	return nil
}
