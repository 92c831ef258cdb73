package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/persistorai/genenet/client"
	"github.com/persistorai/genenet/internal/config"
	"github.com/persistorai/genenet/internal/models"
)

// stdoutOf runs f with os.Stdout redirected to a temp file and returns what
// was printed. Not safe for parallel tests.
func stdoutOf(t *testing.T, f func()) string {
	t.Helper()

	tmp, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	defer tmp.Close()

	orig := os.Stdout
	os.Stdout = tmp
	defer func() { os.Stdout = orig }()

	f()

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// tableLines splits table output, dropping the trailing newline.
func tableLines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func fixtureRun() *models.Run {
	first := models.NewNetwork([]string{"At1g01010", "At1g01020", "At1g01030"}, []int{0, 1})
	first.KEGGIDs = []string{"path:ath00010"}
	first.KEGGNames = []string{"Glycolysis / Gluconeogenesis"}
	first.GOIDs = []string{"GO:0006096", "GO:0009737"}
	first.GONames = []string{"glycolytic process", "response to abscisic acid"}

	return &models.Run{
		ID:        uuid.MustParse("0b7e4c52-2f0e-4f51-9a43-3c55c6a0b001"),
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Quality:   0.45,
		Genes:     []string{"At1g01010", "At2g01010"},
		Interactions: []models.Interaction{
			models.NewInteraction("At1g01010", "At1g01020", 0.6),
			models.NewInteraction("At1g01020", "At1g01030", 0.5),
			models.NewInteraction("At2g01010", "At2g01020", 0.9),
		},
		Networks: []models.Network{first, models.NewNetwork([]string{"At2g01010", "At2g01020"}, []int{2})},
	}
}

func TestFormatJSON_RunSummary(t *testing.T) {
	out := stdoutOf(t, func() { formatJSON(fixtureRun().Summary()) })

	var got models.RunSummary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, out)
	}

	want := fixtureRun().Summary()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, "\n  \"network_count\": 2") {
		t.Errorf("expected two-space indentation:\n%s", out)
	}
}

func TestFormatJSON_Networks(t *testing.T) {
	out := stdoutOf(t, func() { formatJSON(fixtureRun().Networks) })

	var got []models.Network
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("not JSON: %v\n%s", err, out)
	}
	if len(got) != 2 || got[0].GONames[1] != "response to abscisic acid" {
		t.Errorf("networks = %+v", got)
	}
}

func TestFormatNetworks_Table(t *testing.T) {
	out := stdoutOf(t, func() { formatNetworks(fixtureRun().Networks) })
	lines := tableLines(out)

	if len(lines) != 4 {
		t.Fatalf("want header, separator and 2 networks, got %d lines:\n%s", len(lines), out)
	}

	if fields := strings.Fields(lines[0]); !cmp.Equal(fields, []string{"NETWORK", "SIZE", "GENES", "KEGG", "GO"}) {
		t.Errorf("header = %v", fields)
	}
	if strings.Trim(lines[1], "- ") != "" {
		t.Errorf("separator has non-dash content: %q", lines[1])
	}

	wantRows := [][]string{
		{"1", "3", "At1g01010,At1g01020,At1g01030", "1", "2"},
		{"2", "2", "At2g01010,At2g01020", "0", "0"},
	}
	for i, want := range wantRows {
		if diff := cmp.Diff(want, strings.Fields(lines[i+2])); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i+1, diff)
		}
	}

	// GENES is padded to the longest gene list so the counts line up.
	if strings.Index(lines[2], " 1 ") != strings.Index(lines[3], " 0 ") {
		t.Errorf("KEGG column not aligned:\n%s", out)
	}
}

func TestFormatNetworks_NoNetworks(t *testing.T) {
	lines := tableLines(stdoutOf(t, func() { formatNetworks(nil) }))

	if len(lines) != 2 {
		t.Fatalf("want only header and separator, got %v", lines)
	}
	if len(lines[0]) != len(lines[1]) {
		t.Errorf("separator width %d does not match header width %d", len(lines[1]), len(lines[0]))
	}
}

func TestFormatRuns_Table(t *testing.T) {
	runs := []client.RunSummary{
		{ID: "run-a", CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), Quality: 0.4, GeneCount: 168, InteractionCount: 30, NetworkCount: 4},
		{ID: "run-b", CreatedAt: time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC), Quality: 0.55, GeneCount: 3, InteractionCount: 0, NetworkCount: 0},
	}

	lines := tableLines(stdoutOf(t, func() { formatRuns(runs) }))
	if len(lines) != 4 {
		t.Fatalf("got %d lines: %v", len(lines), lines)
	}

	want := []string{"run-b", "2026-03-02T08:30:00Z", "0.55", "3", "0", "0"}
	if diff := cmp.Diff(want, strings.Fields(lines[3])); diff != "" {
		t.Errorf("second run row mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRows_QualityFormatting(t *testing.T) {
	rows := runRows([]client.RunSummary{{ID: "r", Quality: 0.4}, {ID: "s", Quality: 1}})

	if rows[0][2] != "0.4" || rows[1][2] != "1" {
		t.Errorf("quality cells = %q, %q", rows[0][2], rows[1][2])
	}
}

func TestClientNetworks(t *testing.T) {
	in := []client.Network{{
		Components: []string{"At1g01010", "At1g01020"},
		KEGGIDs:    []string{"path:ath00010"},
		KEGGNames:  []string{"Glycolysis / Gluconeogenesis"},
		GOIDs:      []string{},
		GONames:    []string{},
		Edges:      []int{0},
	}}

	want := []models.Network{{
		Components: []string{"At1g01010", "At1g01020"},
		KEGGIDs:    []string{"path:ath00010"},
		KEGGNames:  []string{"Glycolysis / Gluconeogenesis"},
		GOIDs:      []string{},
		GONames:    []string{},
		Edges:      []int{0},
	}}
	if diff := cmp.Diff(want, clientNetworks(in)); diff != "" {
		t.Errorf("conversion mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintRun(t *testing.T) {
	run := fixtureRun()

	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"quiet", func(t *testing.T, out string) {
			if out != run.ID.String()+"\n" {
				t.Errorf("quiet output = %q", out)
			}
		}},
		{"table", func(t *testing.T, out string) {
			if !strings.HasPrefix(out, "NETWORK") || len(tableLines(out)) != 4 {
				t.Errorf("table output:\n%s", out)
			}
		}},
		{"json", func(t *testing.T, out string) {
			var s models.RunSummary
			if err := json.Unmarshal([]byte(out), &s); err != nil {
				t.Fatalf("not JSON: %v", err)
			}
			if s.InteractionCount != 3 || s.GeneCount != 2 {
				t.Errorf("summary = %+v", s)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			resetFlags(t)
			flagFmt = tc.format
			tc.check(t, stdoutOf(t, func() { printRun(run) }))
		})
	}
}

func TestOutput_RunCreated(t *testing.T) {
	run := &client.Run{ID: "run-a", Quality: 0.4, Genes: []string{"At1g01010"}}

	resetFlags(t)

	flagFmt = "quiet"
	if out := stdoutOf(t, func() { output(run, run.ID) }); out != "run-a\n" {
		t.Errorf("quiet = %q", out)
	}

	// Table has no generic renderer and falls back to JSON.
	for _, f := range []string{"json", "table"} {
		flagFmt = f
		out := stdoutOf(t, func() { output(run, run.ID) })

		var got client.Run
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("%s: not JSON: %v", f, err)
		}
		if got.ID != "run-a" || got.Genes[0] != "At1g01010" {
			t.Errorf("%s: got %+v", f, got)
		}
	}
}

func TestVersionString(t *testing.T) {
	origCommit, origDate := commit, buildDate
	t.Cleanup(func() { commit, buildDate = origCommit, origDate })

	commit, buildDate = "", ""
	if got := versionString(); got != "genenet version "+config.Version {
		t.Errorf("dev build = %q", got)
	}

	commit, buildDate = "abc1234", "2026-01-01"
	want := "genenet version " + config.Version + " (commit: abc1234, built: 2026-01-01)"
	if got := versionString(); got != want {
		t.Errorf("release build = %q, want %q", got, want)
	}
}
