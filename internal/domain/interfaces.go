// Package domain defines the canonical service and storage interfaces shared
// across layers (REST handlers, CLI, stores). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/persistorai/genenet/internal/models"
)

// RunService defines operations on pipeline runs.
type RunService interface {
	CreateRun(ctx context.Context, req models.CreateRunRequest) (*models.Run, error)
	GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error)
	ListRuns(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error)
	DeleteRun(ctx context.Context, id uuid.UUID) error
}

// NetworkService builds networks from a caller-supplied interaction list.
type NetworkService interface {
	BuildNetworks(ctx context.Context, interactions []models.Interaction) ([]models.Network, error)
}

// RunStore persists runs. GetRun and DeleteRun return models.ErrRunNotFound
// for unknown IDs.
type RunStore interface {
	SaveRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error)
	ListRuns(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error)
	DeleteRun(ctx context.Context, id uuid.UUID) error
}

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
