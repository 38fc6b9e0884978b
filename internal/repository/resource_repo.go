package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"roomsign/internal/models"
)

type ResourceSQLite struct {
	db *sql.DB
}

func NewResourceSQLite(db *sql.DB) *ResourceSQLite { return &ResourceSQLite{db: db} }

// Ensure implementation of ResourceRepo interface at compile time.
var _ ResourceRepo = (*ResourceSQLite)(nil)

const (
	resourceColumns = `id, name, ics_url, qr_url, timezone, template, refresh_interval_sec,
		night_mode_from, night_mode_to, debug_display, wifi_ssid, wifi_pass`

	selectResourcesSQL    = `SELECT ` + resourceColumns + ` FROM resources ORDER BY id`
	selectResourceByIDSQL = `SELECT ` + resourceColumns + ` FROM resources WHERE id = ?`
	selectFirstSQL        = `SELECT ` + resourceColumns + ` FROM resources ORDER BY id LIMIT 1`

	insertResourceSQL = `
		INSERT INTO resources (name, ics_url, qr_url, timezone, template, refresh_interval_sec,
			night_mode_from, night_mode_to, debug_display, wifi_ssid, wifi_pass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	updateResourceSQL = `
		UPDATE resources SET name=?, ics_url=?, qr_url=?, timezone=?, template=?,
			refresh_interval_sec=?, night_mode_from=?, night_mode_to=?, debug_display=?,
			wifi_ssid=?, wifi_pass=?
		WHERE id=?
	`

	deleteResourceSQL = `DELETE FROM resources WHERE id = ?`
)

func scanResource(row interface{ Scan(dest ...any) error }) (models.Resource, error) {
	var r models.Resource
	err := row.Scan(
		&r.ID, &r.Name, &r.ICSURL, &r.QRURL, &r.Timezone, &r.Template,
		&r.RefreshIntervalSec, &r.NightModeFrom, &r.NightModeTo,
		&r.DebugDisplay, &r.WifiSSID, &r.WifiPass,
	)
	return r, err
}

// List returns all configured resources ordered by id.
func (s *ResourceSQLite) List(ctx context.Context) ([]models.Resource, error) {
	rows, err := s.db.QueryContext(ctx, selectResourcesSQL)
	if err != nil {
		return nil, fmt.Errorf("select resources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Resource
	for rows.Next() {
		r, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}
	return out, nil
}

// GetByID fetches one resource. Returns (nil, nil) if not found.
func (s *ResourceSQLite) GetByID(ctx context.Context, id int) (*models.Resource, error) {
	r, err := scanResource(s.db.QueryRowContext(ctx, selectResourceByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select resource %d: %w", id, err)
	}
	return &r, nil
}

// First returns the lowest-id resource, or (nil, nil) when the store is empty.
// Displays with an unknown device id fall back to it.
func (s *ResourceSQLite) First(ctx context.Context) (*models.Resource, error) {
	r, err := scanResource(s.db.QueryRowContext(ctx, selectFirstSQL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select first resource: %w", err)
	}
	return &r, nil
}

// Create inserts a new resource and returns its assigned device id.
func (s *ResourceSQLite) Create(ctx context.Context, r models.Resource) (int, error) {
	res, err := s.db.ExecContext(ctx, insertResourceSQL,
		r.Name, r.ICSURL, r.QRURL, r.Timezone, r.Template, r.RefreshIntervalSec,
		r.NightModeFrom, r.NightModeTo, r.DebugDisplay, r.WifiSSID, r.WifiPass,
	)
	if err != nil {
		return 0, fmt.Errorf("insert resource %q: %w", r.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for resource %q: %w", r.Name, err)
	}
	return int(lastID), nil
}

// Update rewrites all fields of an existing resource.
func (s *ResourceSQLite) Update(ctx context.Context, r models.Resource) error {
	res, err := s.db.ExecContext(ctx, updateResourceSQL,
		r.Name, r.ICSURL, r.QRURL, r.Timezone, r.Template, r.RefreshIntervalSec,
		r.NightModeFrom, r.NightModeTo, r.DebugDisplay, r.WifiSSID, r.WifiPass,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("update resource %d: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for resource %d: %w", r.ID, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a resource by id.
func (s *ResourceSQLite) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, deleteResourceSQL, id)
	if err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for resource %d: %w", id, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
