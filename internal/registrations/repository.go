package registrations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/communityday/registrations/internal/models"
)

// PostgresRepository stores registrations in PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Put inserts the registration, replacing any row with the same id.
func (r *PostgresRepository) Put(ctx context.Context, reg *models.Registration) error {
	doc, err := document(reg)
	if err != nil {
		return err
	}
	const q = `INSERT INTO registrations (id, email, created_at, document)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, created_at = EXCLUDED.created_at, document = EXCLUDED.document`
	if _, err := r.pool.Exec(ctx, q, reg.ID, reg.Email, reg.CreatedAt, doc); err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

// document is the full JSON record, as stored by the document-oriented backends.
func document(reg *models.Registration) ([]byte, error) {
	doc, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("marshal registration: %w", err)
	}
	return doc, nil
}
