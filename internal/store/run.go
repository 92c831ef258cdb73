package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/persistorai/genenet/internal/models"
)

// RunStore persists runs, their interactions and their networks in PostgreSQL.
type RunStore struct {
	Base
}

// NewRunStore creates a new RunStore.
func NewRunStore(base Base) *RunStore {
	return &RunStore{Base: base}
}

// SaveRun writes the run, its interactions and its networks in one transaction.
func (s *RunStore) SaveRun(ctx context.Context, run *models.Run) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	_, err = tx.Exec(ctx,
		`INSERT INTO runs (id, created_at, quality, genes, interaction_count, network_count)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		run.ID, run.CreatedAt, run.Quality, run.Genes, len(run.Interactions), len(run.Networks))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	if err := copyInteractions(ctx, tx, run); err != nil {
		return err
	}

	if err := insertNetworks(ctx, tx, run); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}

	s.Log.WithField("run_id", run.ID.String()).Debug("run saved")

	return nil
}

func copyInteractions(ctx context.Context, tx pgx.Tx, run *models.Run) error {
	if len(run.Interactions) == 0 {
		return nil
	}

	owners := networkOwners(len(run.Interactions), run.Networks)

	rows := make([][]any, len(run.Interactions))
	for i, in := range run.Interactions {
		var owner *int
		if owners[i] >= 0 {
			owner = &owners[i]
		}

		rows[i] = []any{run.ID, i, in.GeneA, in.GeneB, in.Score, string(in.Status), owner}
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"run_interactions"},
		[]string{"run_id", "position", "gene_a", "gene_b", "score", "status", "network_index"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copying interactions: %w", err)
	}

	return nil
}

func insertNetworks(ctx context.Context, tx pgx.Tx, run *models.Run) error {
	if len(run.Networks) == 0 {
		return nil
	}

	batch := &pgx.Batch{}

	for i := range run.Networks {
		n := &run.Networks[i]

		annotations, err := marshalAnnotations(n)
		if err != nil {
			return err
		}

		edges := n.Edges
		if edges == nil {
			edges = []int{}
		}

		batch.Queue(
			`INSERT INTO run_networks (run_id, position, components, edges, annotations)
			VALUES ($1, $2, $3, $4, $5)`,
			run.ID, i, n.Components, edges, annotations)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting networks: %w", err)
	}

	return nil
}

// DeleteRun removes a run; interactions and networks cascade.
func (s *RunStore) DeleteRun(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx, "DELETE FROM runs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrRunNotFound
	}

	return nil
}
