package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			input JSONB NOT NULL,
			default_probability DOUBLE PRECISION NOT NULL,
			risk_level TEXT NOT NULL,
			approval_status TEXT NOT NULL,
			suggested_rate DOUBLE PRECISION NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			source TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *PostgresStore) RecordAssessment(ctx context.Context, a *Assessment) error {
	inputJSON, _ := json.Marshal(a.Input)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO assessments (id, input, default_probability, risk_level,
			approval_status, suggested_rate, confidence, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		a.ID, inputJSON, a.DefaultProbability, a.RiskLevel,
		a.ApprovalStatus, a.SuggestedRate, a.Confidence, a.Source,
	).Scan(&a.CreatedAt)
}

func (s *PostgresStore) ListAssessments(ctx context.Context, limit int) ([]*Assessment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx, `
		SELECT id, input, default_probability, risk_level,
			approval_status, suggested_rate, confidence, source, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a := &Assessment{}
		var inputJSON []byte
		if err := rows.Scan(
			&a.ID, &inputJSON, &a.DefaultProbability, &a.RiskLevel,
			&a.ApprovalStatus, &a.SuggestedRate, &a.Confidence, &a.Source, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(inputJSON, &a.Input); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
