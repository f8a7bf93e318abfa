package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_load_store.go -package=mocks icongallery/internal/storage LoadStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// timeLayout is fixed width so loaded_at sorts lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// LoadStore defines the interface for load history storage operations.
type LoadStore interface {
	// Save stores a load. A new UUID is assigned when the record has no ID.
	Save(ctx context.Context, load *LoadRecord) error
	// Latest returns the most recent load including its document.
	// Returns nil and ErrNotFound if nothing has been stored.
	Latest(ctx context.Context) (*LoadRecord, error)
	// List returns up to limit loads, newest first, without documents.
	List(ctx context.Context, limit int) ([]LoadRecord, error)
	// Prune deletes all but the newest keep loads and returns how many were removed.
	Prune(ctx context.Context, keep int) (int64, error)
}

// LoadRepo provides methods for load history operations.
// It implements the LoadStore interface.
type LoadRepo struct {
	db *sql.DB
}

// NewLoadRepo creates a new LoadRepo.
func NewLoadRepo(db *sql.DB) *LoadRepo {
	return &LoadRepo{db: db}
}

// Save stores a load.
func (r *LoadRepo) Save(ctx context.Context, load *LoadRecord) error {
	if load.ID == "" {
		load.ID = uuid.New().String()
	}
	if load.LoadedAt.IsZero() {
		load.LoadedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO loads (id, source, root_path, icon_count, document, loaded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		load.ID, load.Source, load.RootPath, load.IconCount, load.Document, load.LoadedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert load: %w", err)
	}

	return nil
}

// Latest returns the most recent load.
func (r *LoadRepo) Latest(ctx context.Context) (*LoadRecord, error) {
	var (
		load        LoadRecord
		loadedAtStr string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, root_path, icon_count, document, loaded_at
		 FROM loads ORDER BY loaded_at DESC, rowid DESC LIMIT 1`,
	).Scan(&load.ID, &load.Source, &load.RootPath, &load.IconCount, &load.Document, &loadedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest load: %w", err)
	}

	load.LoadedAt, err = time.Parse(timeLayout, loadedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse loaded_at timestamp: %w", err)
	}

	return &load, nil
}

// List returns up to limit loads, newest first.
func (r *LoadRepo) List(ctx context.Context, limit int) ([]LoadRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, root_path, icon_count, loaded_at
		 FROM loads ORDER BY loaded_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query loads: %w", err)
	}
	defer rows.Close()

	var loads []LoadRecord
	for rows.Next() {
		var (
			load        LoadRecord
			loadedAtStr string
		)
		if err := rows.Scan(&load.ID, &load.Source, &load.RootPath, &load.IconCount, &loadedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan load: %w", err)
		}

		load.LoadedAt, err = time.Parse(timeLayout, loadedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse loaded_at timestamp: %w", err)
		}

		loads = append(loads, load)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}

// Prune deletes all but the newest keep loads.
func (r *LoadRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM loads WHERE id NOT IN (
			SELECT id FROM loads ORDER BY loaded_at DESC, rowid DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune loads: %w", err)
	}

	return result.RowsAffected()
}
