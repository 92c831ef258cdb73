// Package service provides business logic between API handlers, the CLI and data stores.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/domain"
	"github.com/persistorai/genenet/internal/metrics"
	"github.com/persistorai/genenet/internal/models"
	"github.com/persistorai/genenet/internal/network"
)

// Fetcher retrieves scored interactions for a gene list.
type Fetcher interface {
	Fetch(ctx context.Context, genes []string, quality float64) ([]models.Interaction, error)
}

// Annotator appends pathway and process annotations to networks.
type Annotator interface {
	Annotate(ctx context.Context, networks []models.Network) error
}

// RunStore is an alias for the canonical domain.RunStore interface.
type RunStore = domain.RunStore

// Compile-time checks.
var (
	_ domain.RunService     = (*RunService)(nil)
	_ domain.NetworkService = (*RunService)(nil)
)

// RunService drives the fetch, build, annotate and persist pipeline.
type RunService struct {
	fetcher   Fetcher
	annotator Annotator
	store     RunStore
	quality   float64
	log       *logrus.Logger
	now       func() time.Time
}

// NewRunService creates a RunService. annotator and store may be nil, in
// which case networks are left unannotated or runs are not persisted.
// defaultQuality applies to requests that omit a threshold.
func NewRunService(fetcher Fetcher, annotator Annotator, store RunStore, defaultQuality float64, log *logrus.Logger) *RunService {
	return &RunService{
		fetcher:   fetcher,
		annotator: annotator,
		store:     store,
		quality:   defaultQuality,
		log:       log,
		now:       time.Now,
	}
}

// Run executes the full pipeline for genes at the given MI-score threshold.
// The returned run holds the interactions as the builder left them, all checked.
func (s *RunService) Run(ctx context.Context, genes []string, quality float64) (*models.Run, error) {
	if len(genes) == 0 {
		return nil, models.ErrEmptyGeneList
	}

	if err := models.ValidateQuality(quality); err != nil {
		return nil, err
	}

	start := s.now()
	run := &models.Run{
		ID:        uuid.New(),
		CreatedAt: start.UTC(),
		Quality:   quality,
		Genes:     genes,
	}
	log := s.log.WithField("run_id", run.ID.String())

	interactions, err := s.fetcher.Fetch(ctx, genes, quality)
	if err != nil {
		return nil, fmt.Errorf("fetching interactions: %w", err)
	}

	log.WithFields(logrus.Fields{
		"genes":        len(genes),
		"interactions": len(interactions),
		"quality":      quality,
	}).Info("run.fetched")

	networks := network.IdentifyNetworks(interactions)
	observeNetworks(networks)

	log.WithField("networks", len(networks)).Info("run.built")

	if s.annotator != nil {
		if err := s.annotator.Annotate(ctx, networks); err != nil {
			return nil, fmt.Errorf("annotating networks: %w", err)
		}

		log.Debug("run.annotated")
	}

	run.Interactions = interactions
	run.Networks = networks

	if s.store != nil {
		if err := s.store.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("saving run: %w", err)
		}
	}

	metrics.RunDuration.Observe(time.Since(start).Seconds())
	log.WithField("duration_ms", time.Since(start).Milliseconds()).Info("run.complete")

	return run, nil
}

// Rebuild identifies networks in a saved interaction list without any
// upstream calls. Statuses are reset on a copy; interactions is not modified.
func (s *RunService) Rebuild(interactions []models.Interaction) []models.Network {
	work := make([]models.Interaction, len(interactions))
	copy(work, interactions)
	models.ResetStatus(work)

	networks := network.IdentifyNetworks(work)
	observeNetworks(networks)

	s.log.WithFields(logrus.Fields{
		"interactions": len(work),
		"networks":     len(networks),
	}).Debug("run.rebuilt")

	return networks
}

// CreateRun validates req and runs the pipeline.
func (s *RunService) CreateRun(ctx context.Context, req models.CreateRunRequest) (*models.Run, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quality := s.quality
	if req.Quality != nil {
		quality = *req.Quality
	}

	return s.Run(ctx, req.Genes, quality)
}

// BuildNetworks validates and rebuilds networks from posted interactions.
func (s *RunService) BuildNetworks(_ context.Context, interactions []models.Interaction) ([]models.Network, error) {
	req := models.BuildNetworksRequest{Interactions: interactions}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.Rebuild(interactions), nil
}

// GetRun returns a stored run (pass-through).
func (s *RunService) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	if s.store == nil {
		return nil, models.ErrRunNotFound
	}

	return s.store.GetRun(ctx, id)
}

// ListRuns returns a page of run summaries, newest first (pass-through).
func (s *RunService) ListRuns(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error) {
	if s.store == nil {
		return []models.RunSummary{}, false, nil
	}

	return s.store.ListRuns(ctx, limit, offset)
}

// DeleteRun removes a stored run (pass-through).
func (s *RunService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	if s.store == nil {
		return models.ErrRunNotFound
	}

	return s.store.DeleteRun(ctx, id)
}

func observeNetworks(networks []models.Network) {
	metrics.NetworksBuilt.Add(float64(len(networks)))

	for i := range networks {
		metrics.NetworkSize.Observe(float64(len(networks[i].Components)))
	}
}
