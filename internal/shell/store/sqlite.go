package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/PartTimeLegend/pond-planner/internal/core/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "failed to open database", ErrConnectionFailed)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Row Mapping
// =============================================================================

// pondRow represents a saved pond row in the database.
type pondRow struct {
	ID          int     `db:"id"`
	ReferenceID string  `db:"reference_id"`
	Name        string  `db:"name"`
	Slug        string  `db:"slug"`
	Description string  `db:"description"`
	Length      float64 `db:"length_meters"`
	Width       float64 `db:"width_meters"`
	Depth       float64 `db:"avg_depth_meters"`
	Shape       string  `db:"shape"`
	FishStock   string  `db:"fish_stock"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
}

// rowToPond converts a database row to a domain.SavedPond.
func rowToPond(row *pondRow) (*domain.SavedPond, error) {
	var stock domain.FishStock
	if err := json.Unmarshal([]byte(row.FishStock), &stock); err != nil {
		return nil, NewStoreError("rowToPond", row.Slug, "failed to parse fish stock", ErrInvalidData)
	}

	createdAt, err := time.Parse(time.RFC3339, row.CreatedAt)
	if err != nil {
		return nil, NewStoreError("rowToPond", row.Slug, "failed to parse created_at", ErrInvalidData)
	}
	updatedAt, err := time.Parse(time.RFC3339, row.UpdatedAt)
	if err != nil {
		return nil, NewStoreError("rowToPond", row.Slug, "failed to parse updated_at", ErrInvalidData)
	}

	return &domain.SavedPond{
		ID:          row.ID,
		ReferenceID: row.ReferenceID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Dimensions: domain.PondDimensions{
			LengthM: row.Length,
			WidthM:  row.Width,
			DepthM:  row.Depth,
			Shape:   row.Shape,
		},
		FishStock: stock,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// =============================================================================
// Pond Operations
// =============================================================================

// SavePond inserts or replaces the record for pond.Slug. On overwrite the
// original created_at is preserved and updated_at is refreshed.
func (s *SQLiteStore) SavePond(ctx context.Context, pond *domain.SavedPond) error {
	if pond.FishStock == nil {
		pond.FishStock = domain.FishStock{}
	}
	stockJSON, err := json.Marshal(pond.FishStock)
	if err != nil {
		return NewStoreError("SavePond", pond.Slug, "failed to serialize fish stock", ErrInvalidData)
	}

	query := `
		INSERT INTO ponds (
			reference_id, name, slug, description,
			length_meters, width_meters, avg_depth_meters, shape,
			fish_stock, created_at, updated_at
		) VALUES (
			:reference_id, :name, :slug, :description,
			:length_meters, :width_meters, :avg_depth_meters, :shape,
			:fish_stock, :created_at, :updated_at
		)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			length_meters = excluded.length_meters,
			width_meters = excluded.width_meters,
			avg_depth_meters = excluded.avg_depth_meters,
			shape = excluded.shape,
			fish_stock = excluded.fish_stock,
			updated_at = excluded.updated_at`

	row := map[string]any{
		"reference_id":     pond.ReferenceID,
		"name":             pond.Name,
		"slug":             pond.Slug,
		"description":      pond.Description,
		"length_meters":    pond.Dimensions.LengthM,
		"width_meters":     pond.Dimensions.WidthM,
		"avg_depth_meters": pond.Dimensions.DepthM,
		"shape":            pond.Dimensions.Shape,
		"fish_stock":       string(stockJSON),
		"created_at":       pond.CreatedAt.Format(time.RFC3339),
		"updated_at":       pond.UpdatedAt.Format(time.RFC3339),
	}

	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return NewStoreError("SavePond", pond.Slug, err.Error(), err)
	}

	return nil
}

// GetPond returns the record for a slug.
func (s *SQLiteStore) GetPond(ctx context.Context, slug string) (*domain.SavedPond, error) {
	var row pondRow
	query := `SELECT * FROM ponds WHERE slug = ?`

	err := s.db.GetContext(ctx, &row, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetPond", slug, "pond not found", ErrNotFound)
		}
		return nil, NewStoreError("GetPond", slug, err.Error(), err)
	}

	return rowToPond(&row)
}

// ListPonds returns all saved ponds, newest first.
func (s *SQLiteStore) ListPonds(ctx context.Context) ([]domain.SavedPond, error) {
	var rows []pondRow
	query := `SELECT * FROM ponds ORDER BY created_at DESC, id DESC`

	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, NewStoreError("ListPonds", "", err.Error(), err)
	}

	ponds := make([]domain.SavedPond, 0, len(rows))
	for i := range rows {
		pond, err := rowToPond(&rows[i])
		if err != nil {
			return nil, err
		}
		ponds = append(ponds, *pond)
	}

	return ponds, nil
}

// DeletePond removes the record for a slug.
func (s *SQLiteStore) DeletePond(ctx context.Context, slug string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM ponds WHERE slug = ?`, slug)
	if err != nil {
		return NewStoreError("DeletePond", slug, err.Error(), err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NewStoreError("DeletePond", slug, "pond not found", ErrNotFound)
	}

	return nil
}

// PondExists reports whether a record exists for a slug.
func (s *SQLiteStore) PondExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM ponds WHERE slug = ?`, slug)
	if err != nil {
		return false, NewStoreError("PondExists", slug, err.Error(), err)
	}
	return count > 0, nil
}
