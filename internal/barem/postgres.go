package barem

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists criteria in a single assessment_criteria table.
// Skills and weights are stored as JSON columns; job_title carries a unique
// constraint so the upsert implements last-write-wins.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Get returns the stored criteria for a job title, or nil when absent.
func (s *PostgresStore) Get(ctx context.Context, jobTitle string) (*Criteria, error) {
	var (
		c       Criteria
		skills  []byte
		weights []byte
	)
	err := s.pool.QueryRow(ctx,
		`SELECT job_title, skills, weights, updated_at
		 FROM assessment_criteria WHERE job_title = $1`,
		jobTitle,
	).Scan(&c.JobTitle, &skills, &weights, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get criteria: %w", err)
	}
	if err := json.Unmarshal(skills, &c.CategorizedSkills); err != nil {
		return nil, fmt.Errorf("failed to decode skills for %s: %w", jobTitle, err)
	}
	if err := json.Unmarshal(weights, &c.Weights); err != nil {
		return nil, fmt.Errorf("failed to decode weights for %s: %w", jobTitle, err)
	}
	return &c, nil
}

// Put upserts criteria for a job title.
func (s *PostgresStore) Put(ctx context.Context, c *Criteria) error {
	skills, err := json.Marshal(c.CategorizedSkills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}
	weights, err := json.Marshal(c.Weights)
	if err != nil {
		return fmt.Errorf("failed to encode weights: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO assessment_criteria (id, job_title, skills, weights, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (job_title) DO UPDATE SET skills = $3, weights = $4, updated_at = NOW()`,
		uuid.New(), c.JobTitle, skills, weights,
	)
	if err != nil {
		return fmt.Errorf("failed to save criteria for %s: %w", c.JobTitle, err)
	}
	return nil
}

// Delete removes the criteria for a job title.
func (s *PostgresStore) Delete(ctx context.Context, jobTitle string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM assessment_criteria WHERE job_title = $1`, jobTitle)
	if err != nil {
		return fmt.Errorf("failed to delete criteria for %s: %w", jobTitle, err)
	}
	return nil
}

// List returns all stored criteria ordered by job title.
func (s *PostgresStore) List(ctx context.Context) ([]*Criteria, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT job_title, skills, weights, updated_at
		 FROM assessment_criteria ORDER BY job_title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}
	defer rows.Close()

	var out []*Criteria
	for rows.Next() {
		var (
			c       Criteria
			skills  []byte
			weights []byte
		)
		if err := rows.Scan(&c.JobTitle, &skills, &weights, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan criteria row: %w", err)
		}
		if err := json.Unmarshal(skills, &c.CategorizedSkills); err != nil {
			return nil, fmt.Errorf("failed to decode skills for %s: %w", c.JobTitle, err)
		}
		if err := json.Unmarshal(weights, &c.Weights); err != nil {
			return nil, fmt.Errorf("failed to decode weights for %s: %w", c.JobTitle, err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read criteria rows: %w", err)
	}
	return out, nil
}
