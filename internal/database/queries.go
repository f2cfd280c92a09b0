package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ListHolidays returns every holiday definition, ordered by position in
// the civil year (Tishrei first, wrapping through Elul).
func (db *DB) ListHolidays(ctx context.Context) ([]Holiday, error) {
	query := `
		SELECT id, name, category, month, day, days
		FROM holidays
		ORDER BY CASE WHEN month >= 7 THEN month - 7 ELSE month + 6 END, day
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []Holiday
	for rows.Next() {
		var h Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Category, &h.Month, &h.Day, &h.Days); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holidays: %w", err)
	}
	return holidays, nil
}

// GetHolidayByName returns a single holiday definition.
// Returns ErrNotFound if no definition has the given name.
func (db *DB) GetHolidayByName(ctx context.Context, name string) (*Holiday, error) {
	query := `
		SELECT id, name, category, month, day, days
		FROM holidays
		WHERE name = ?
	`

	var h Holiday
	err := db.QueryRowContext(ctx, query, name).
		Scan(&h.ID, &h.Name, &h.Category, &h.Month, &h.Day, &h.Days)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("holiday %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get holiday: %w", err)
	}
	return &h, nil
}
