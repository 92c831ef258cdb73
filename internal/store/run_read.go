package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/persistorai/genenet/internal/models"
)

// GetRun loads a run with its interactions and networks.
func (s *RunStore) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // read-only transaction.

	run := &models.Run{ID: id}

	err = tx.QueryRow(ctx, "SELECT created_at, quality, genes FROM runs WHERE id = $1", id).
		Scan(&run.CreatedAt, &run.Quality, &run.Genes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRunNotFound
		}

		return nil, fmt.Errorf("querying run: %w", err)
	}

	if run.Interactions, err = readInteractions(ctx, tx, id); err != nil {
		return nil, err
	}

	if run.Networks, err = readNetworks(ctx, tx, id); err != nil {
		return nil, err
	}

	return run, nil
}

func readInteractions(ctx context.Context, tx pgx.Tx, id uuid.UUID) ([]models.Interaction, error) {
	rows, err := tx.Query(ctx,
		`SELECT gene_a, gene_b, score, status FROM run_interactions
		WHERE run_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	out := make([]models.Interaction, 0)

	for rows.Next() {
		var in models.Interaction
		var status string

		if err := rows.Scan(&in.GeneA, &in.GeneB, &in.Score, &status); err != nil {
			return nil, fmt.Errorf("scanning interaction: %w", err)
		}

		in.Status = models.Status(status)
		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}

	return out, nil
}

func readNetworks(ctx context.Context, tx pgx.Tx, id uuid.UUID) ([]models.Network, error) {
	rows, err := tx.Query(ctx,
		`SELECT components, edges, annotations FROM run_networks
		WHERE run_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying networks: %w", err)
	}
	defer rows.Close()

	out := make([]models.Network, 0)

	for rows.Next() {
		var n models.Network
		var annotations []byte

		if err := rows.Scan(&n.Components, &n.Edges, &annotations); err != nil {
			return nil, fmt.Errorf("scanning network: %w", err)
		}

		if err := unmarshalAnnotations(annotations, &n); err != nil {
			return nil, err
		}

		out = append(out, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating networks: %w", err)
	}

	return out, nil
}

// ListRuns returns run summaries, newest first.
func (s *RunStore) ListRuns(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error) {
	limit, offset = clampPage(limit, offset)

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		"SELECT "+runSummaryColumns+" FROM runs ORDER BY created_at DESC, id LIMIT $1 OFFSET $2",
		limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := make([]models.RunSummary, 0, limit+1)

	for rows.Next() {
		r, err := scanRunSummary(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning run: %w", err)
		}

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating runs: %w", err)
	}

	hasMore := len(runs) > limit
	if hasMore {
		runs = runs[:limit]
	}

	return runs, hasMore, nil
}
