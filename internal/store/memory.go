package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/persistorai/genenet/internal/models"
)

// MemoryRunStore keeps runs in process memory. Runs are lost on restart.
type MemoryRunStore struct {
	mu   sync.RWMutex
	runs map[uuid.UUID]*models.Run
}

// NewMemoryRunStore creates an empty MemoryRunStore.
func NewMemoryRunStore() *MemoryRunStore {
	return &MemoryRunStore{runs: make(map[uuid.UUID]*models.Run)}
}

// SaveRun stores a copy of run, replacing any run with the same ID.
func (s *MemoryRunStore) SaveRun(_ context.Context, run *models.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = cloneRun(run)

	return nil
}

// GetRun returns a copy of the stored run.
func (s *MemoryRunStore) GetRun(_ context.Context, id uuid.UUID) (*models.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, models.ErrRunNotFound
	}

	return cloneRun(run), nil
}

// ListRuns returns run summaries, newest first.
func (s *MemoryRunStore) ListRuns(_ context.Context, limit, offset int) ([]models.RunSummary, bool, error) {
	limit, offset = clampPage(limit, offset)

	s.mu.RLock()
	all := make([]models.RunSummary, 0, len(s.runs))
	for _, r := range s.runs {
		all = append(all, r.Summary())
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}

		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []models.RunSummary{}, false, nil
	}

	page := all[offset:]
	hasMore := len(page) > limit

	if hasMore {
		page = page[:limit]
	}

	return page, hasMore, nil
}

// DeleteRun removes a run.
func (s *MemoryRunStore) DeleteRun(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return models.ErrRunNotFound
	}

	delete(s.runs, id)

	return nil
}

// cloneRun copies the run and its slices so callers cannot alias stored state.
func cloneRun(r *models.Run) *models.Run {
	c := *r
	c.Genes = append([]string(nil), r.Genes...)
	c.Interactions = append([]models.Interaction(nil), r.Interactions...)

	c.Networks = make([]models.Network, len(r.Networks))
	for i, n := range r.Networks {
		c.Networks[i] = models.Network{
			Components: append([]string(nil), n.Components...),
			KEGGIDs:    append([]string{}, n.KEGGIDs...),
			KEGGNames:  append([]string{}, n.KEGGNames...),
			GOIDs:      append([]string{}, n.GOIDs...),
			GONames:    append([]string{}, n.GONames...),
			Edges:      append([]int(nil), n.Edges...),
		}
	}

	return &c
}
