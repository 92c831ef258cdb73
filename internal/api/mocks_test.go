package api_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/persistorai/genenet/internal/models"
)

// mockRunService returns configured responses and records calls.
type mockRunService struct {
	mu    sync.Mutex
	calls []string

	createFn func(ctx context.Context, req models.CreateRunRequest) (*models.Run, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*models.Run, error)
	listFn   func(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	buildFn  func(ctx context.Context, interactions []models.Interaction) ([]models.Network, error)
}

func (m *mockRunService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockRunService) CreateRun(ctx context.Context, req models.CreateRunRequest) (*models.Run, error) {
	m.record("CreateRun")
	return m.createFn(ctx, req)
}

func (m *mockRunService) GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error) {
	m.record("GetRun")
	return m.getFn(ctx, id)
}

func (m *mockRunService) ListRuns(ctx context.Context, limit, offset int) ([]models.RunSummary, bool, error) {
	m.record("ListRuns")
	return m.listFn(ctx, limit, offset)
}

func (m *mockRunService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	m.record("DeleteRun")
	return m.deleteFn(ctx, id)
}

func (m *mockRunService) BuildNetworks(ctx context.Context, interactions []models.Interaction) ([]models.Network, error) {
	m.record("BuildNetworks")
	return m.buildFn(ctx, interactions)
}

func (m *mockRunService) called(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.calls {
		if c == name {
			return true
		}
	}

	return false
}

// mockPinger is a HealthChecker with a fixed result.
type mockPinger struct {
	err error
}

func (p *mockPinger) Ping(context.Context) error { return p.err }

func sampleRun() *models.Run {
	n := models.NewNetwork([]string{"At1g01010", "At1g01020"}, []int{0})
	n.KEGGIDs = []string{"path:ath00010"}
	n.KEGGNames = []string{"Glycolysis / Gluconeogenesis"}

	in := models.NewInteraction("At1g01010", "At1g01020", 0.8)
	in.Status = models.Checked

	return &models.Run{
		ID:           uuid.MustParse("6f1c1d3e-1f55-4c71-9f5c-1d2a1b7e0a01"),
		Quality:      0.4,
		Genes:        []string{"At1g01010"},
		Interactions: []models.Interaction{in},
		Networks:     []models.Network{n},
	}
}
