package history

import (
	"context"
	"errors"
	"fmt"

	"cs2-localizer/core/database"

	"gorm.io/gorm"
)

// ErrDisabled is returned by a Repository without a database.
var ErrDisabled = errors.New("run history is disabled")

// Repository persists runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository wraps db. A nil db yields a repository whose writes are no-ops.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Enabled reports whether runs are persisted.
func (r *Repository) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the runs table.
func (r *Repository) Migrate() error {
	if !r.Enabled() {
		return nil
	}
	if err := r.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate history: %w", err)
	}
	return nil
}

// MissingColumns reports model columns absent from the live table.
func (r *Repository) MissingColumns() ([]string, error) {
	if !r.Enabled() {
		return nil, ErrDisabled
	}
	return database.MissingColumns(r.db, Run{}.TableName(), Columns())
}

// Record stores run.
func (r *Repository) Record(ctx context.Context, run *Run) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first. An empty category matches all.
func (r *Repository) Recent(ctx context.Context, category string, limit int) ([]Run, error) {
	if !r.Enabled() {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var runs []Run
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
