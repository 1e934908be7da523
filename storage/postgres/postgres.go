// Package postgres stores analyses in PostgreSQL as JSONB payloads.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/errs"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/internal/utils"
	"github.com/Mjmurray03/smart-deal-analyzer-sub001/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL,
	package_id TEXT NOT NULL,
	property_type TEXT NOT NULL,
	payload JSONB NOT NULL
)`

const listLimit = 100

type PostgresStorage struct {
	db *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, databaseDsn string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, databaseDsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	store := &PostgresStorage{db: db}
	err = utils.WithRetry(ctx, func() error {
		_, execErr := db.Exec(ctx, schema)
		return execErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return store, nil
}

func (store *PostgresStorage) Save(ctx context.Context, a *model.Analysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	return utils.WithRetry(ctx, func() error {
		_, execErr := store.db.Exec(ctx,
			`INSERT INTO analyses (id, created_at, package_id, property_type, payload)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload`,
			a.ID, a.CreatedAt, a.PackageID, string(a.PropertyType), payload)
		return execErr
	})
}

func (store *PostgresStorage) Get(ctx context.Context, id uuid.UUID) (*model.Analysis, error) {
	var payload []byte
	err := utils.WithRetry(ctx, func() error {
		return store.db.QueryRow(ctx,
			`SELECT payload FROM analyses WHERE id = $1`, id).Scan(&payload)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}

	var a model.Analysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &a, nil
}

func (store *PostgresStorage) List(ctx context.Context) ([]*model.Analysis, error) {
	var result []*model.Analysis
	err := utils.WithRetry(ctx, func() error {
		rows, queryErr := store.db.Query(ctx,
			`SELECT payload FROM analyses ORDER BY created_at DESC LIMIT $1`, listLimit)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		result = result[:0]
		for rows.Next() {
			var payload []byte
			if scanErr := rows.Scan(&payload); scanErr != nil {
				return scanErr
			}
			var a model.Analysis
			if umErr := json.Unmarshal(payload, &a); umErr != nil {
				return umErr
			}
			result = append(result, &a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return result, nil
}

func (store *PostgresStorage) Ping(ctx context.Context) error {
	return store.db.Ping(ctx)
}

func (store *PostgresStorage) Close() {
	store.db.Close()
}
