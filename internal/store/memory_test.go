package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/persistorai/genenet/internal/domain"
	"github.com/persistorai/genenet/internal/models"
)

var (
	_ domain.RunStore = (*MemoryRunStore)(nil)
	_ domain.RunStore = (*RunStore)(nil)
)

func sampleRun(created time.Time) *models.Run {
	in := []models.Interaction{
		models.NewInteraction("At1g01010", "At1g01020", 0.8),
		models.NewInteraction("At1g01030", "At1g01040", 0.5),
	}
	in[0].Status = models.Checked
	in[1].Status = models.Checked

	n1 := models.NewNetwork([]string{"At1g01010", "At1g01020"}, []int{0})
	n1.KEGGIDs = []string{"path:ath00010"}
	n1.KEGGNames = []string{"Glycolysis"}

	return &models.Run{
		ID:           uuid.New(),
		CreatedAt:    created,
		Quality:      0.4,
		Genes:        []string{"At1g01010", "At1g01030"},
		Interactions: in,
		Networks: []models.Network{
			n1,
			models.NewNetwork([]string{"At1g01030", "At1g01040"}, []int{1}),
		},
	}
}

func TestMemoryRunStore_SaveGetDelete(t *testing.T) {
	s := NewMemoryRunStore()
	ctx := context.Background()
	run := sampleRun(time.Now())

	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}

	if diff := cmp.Diff(run, got); diff != "" {
		t.Errorf("run mismatch (-want +got):\n%s", diff)
	}

	got.Networks[0].Components[0] = "mutated"

	again, _ := s.GetRun(ctx, run.ID)
	if again.Networks[0].Components[0] != "At1g01010" {
		t.Error("stored run was mutated through a returned copy")
	}

	if err := s.DeleteRun(ctx, run.ID); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}

	if _, err := s.GetRun(ctx, run.ID); !errors.Is(err, models.ErrRunNotFound) {
		t.Errorf("GetRun after delete err = %v", err)
	}

	if err := s.DeleteRun(ctx, run.ID); !errors.Is(err, models.ErrRunNotFound) {
		t.Errorf("second DeleteRun err = %v", err)
	}
}

func TestMemoryRunStore_ListRuns(t *testing.T) {
	s := NewMemoryRunStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := range 5 {
		r := sampleRun(base.Add(time.Duration(i) * time.Hour))
		ids = append(ids, r.ID)

		if err := s.SaveRun(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	page, more, err := s.ListRuns(ctx, 2, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}

	if !more || len(page) != 2 {
		t.Fatalf("page 1: len=%d more=%v", len(page), more)
	}

	if page[0].ID != ids[4] || page[1].ID != ids[3] {
		t.Errorf("page 1 not newest first: %v", page)
	}

	if page[0].InteractionCount != 2 || page[0].NetworkCount != 2 || page[0].GeneCount != 2 {
		t.Errorf("summary counts = %+v", page[0])
	}

	page, more, err = s.ListRuns(ctx, 2, 4)
	if err != nil {
		t.Fatal(err)
	}

	if more || len(page) != 1 || page[0].ID != ids[0] {
		t.Errorf("last page: %v more=%v", page, more)
	}

	page, more, _ = s.ListRuns(ctx, 2, 10)
	if more || len(page) != 0 {
		t.Errorf("past end: %v more=%v", page, more)
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{0, 0, defaultListLimit, 0},
		{-5, -1, defaultListLimit, 0},
		{10, 20, 10, 20},
		{maxListLimit + 1, 0, maxListLimit, 0},
	}

	for _, tc := range tests {
		l, o := clampPage(tc.limit, tc.offset)
		if l != tc.wantLimit || o != tc.wantOffset {
			t.Errorf("clampPage(%d, %d) = %d, %d; want %d, %d", tc.limit, tc.offset, l, o, tc.wantLimit, tc.wantOffset)
		}
	}
}

func TestNetworkOwners(t *testing.T) {
	networks := []models.Network{
		models.NewNetwork([]string{"a", "b"}, []int{0, 2}),
		models.NewNetwork([]string{"c", "d"}, []int{1, 9}),
	}

	got := networkOwners(4, networks)
	if diff := cmp.Diff([]int{0, 1, 0, -1}, got); diff != "" {
		t.Errorf("owners mismatch (-want +got):\n%s", diff)
	}
}

func TestAnnotationsRoundTrip(t *testing.T) {
	n := models.NewNetwork([]string{"a"}, []int{0})
	n.GOIDs = []string{"GO:1"}
	n.GONames = []string{"process"}

	raw, err := marshalAnnotations(&n)
	if err != nil {
		t.Fatal(err)
	}

	var got models.Network
	if err := unmarshalAnnotations(raw, &got); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"GO:1"}, got.GOIDs); diff != "" {
		t.Errorf("GOIDs (-want +got):\n%s", diff)
	}

	if got.KEGGIDs == nil || len(got.KEGGIDs) != 0 {
		t.Errorf("KEGGIDs = %#v, want empty non-nil", got.KEGGIDs)
	}
}
