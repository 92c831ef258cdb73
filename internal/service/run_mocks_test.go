package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/persistorai/genenet/internal/models"
)

// fakeFetcher returns a fixed interaction list.
type fakeFetcher struct {
	interactions []models.Interaction
	err          error

	gotGenes   []string
	gotQuality float64
}

func (f *fakeFetcher) Fetch(_ context.Context, genes []string, quality float64) ([]models.Interaction, error) {
	f.gotGenes = genes
	f.gotQuality = quality

	if f.err != nil {
		return nil, f.err
	}

	out := make([]models.Interaction, len(f.interactions))
	copy(out, f.interactions)

	return out, nil
}

// fakeAnnotator tags every network with one KEGG pathway per gene.
type fakeAnnotator struct {
	err   error
	calls int
}

func (a *fakeAnnotator) Annotate(_ context.Context, networks []models.Network) error {
	a.calls++
	if a.err != nil {
		return a.err
	}

	for i := range networks {
		for _, g := range networks[i].Components {
			networks[i].KEGGIDs = append(networks[i].KEGGIDs, "path:"+g)
			networks[i].KEGGNames = append(networks[i].KEGGNames, "pathway of "+g)
		}
	}

	return nil
}

// fakeRunStore is a map-backed RunStore.
type fakeRunStore struct {
	mu      sync.Mutex
	runs    map[uuid.UUID]*models.Run
	saveErr error
	calls   []string
}

func newFakeRunStore() *fakeRunStore {
	return &fakeRunStore{runs: make(map[uuid.UUID]*models.Run)}
}

func (s *fakeRunStore) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
}

func (s *fakeRunStore) SaveRun(_ context.Context, run *models.Run) error {
	s.record("SaveRun")
	if s.saveErr != nil {
		return s.saveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run

	return nil
}

func (s *fakeRunStore) GetRun(_ context.Context, id uuid.UUID) (*models.Run, error) {
	s.record("GetRun")
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, models.ErrRunNotFound
	}

	return run, nil
}

func (s *fakeRunStore) ListRuns(_ context.Context, _, _ int) ([]models.RunSummary, bool, error) {
	s.record("ListRuns")
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.RunSummary, 0, len(s.runs))
	for _, r := range s.runs {
		out = append(out, r.Summary())
	}

	return out, false, nil
}

func (s *fakeRunStore) DeleteRun(_ context.Context, id uuid.UUID) error {
	s.record("DeleteRun")
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return models.ErrRunNotFound
	}

	delete(s.runs, id)

	return nil
}
