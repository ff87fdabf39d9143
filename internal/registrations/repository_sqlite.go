package registrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/communityday/registrations/internal/models"
)

// SQLiteRepository stores registrations in an embedded SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a SQLite-backed store. The schema must already be migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Put inserts the registration, replacing any row with the same id.
func (r *SQLiteRepository) Put(ctx context.Context, reg *models.Registration) error {
	doc, err := document(reg)
	if err != nil {
		return err
	}
	const q = `INSERT INTO registrations (id, email, created_at, document)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET email = excluded.email, created_at = excluded.created_at, document = excluded.document`
	if _, err := r.db.ExecContext(ctx, q, reg.ID, reg.Email, reg.CreatedAt, string(doc)); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// GetByID returns the stored registration, or nil if none exists.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Registration, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, `SELECT document FROM registrations WHERE id = ?`, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select registration: %w", err)
	}
	var reg models.Registration
	if err := json.Unmarshal([]byte(doc), &reg); err != nil {
		return nil, fmt.Errorf("unmarshal registration: %w", err)
	}
	return &reg, nil
}
