package client

import "time"

// Interaction is one scored gene pair.
type Interaction struct {
	GeneA  string  `json:"gene_a"`
	GeneB  string  `json:"gene_b"`
	Score  float64 `json:"score"`
	Status string  `json:"status,omitempty"`
}

// Network is a connected component of interacting genes with its annotations.
// KEGGIDs and KEGGNames are parallel, as are GOIDs and GONames.
type Network struct {
	Components []string `json:"components"`
	KEGGIDs    []string `json:"kegg_ids"`
	KEGGNames  []string `json:"kegg_names"`
	GOIDs      []string `json:"go_ids"`
	GONames    []string `json:"go_names"`
	Edges      []int    `json:"edges"`
}

// Run is a completed pipeline execution.
type Run struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	Quality      float64       `json:"quality"`
	Genes        []string      `json:"genes"`
	Interactions []Interaction `json:"interactions"`
	Networks     []Network     `json:"networks"`
}

// RunSummary is the listing form of a Run.
type RunSummary struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Quality          float64   `json:"quality"`
	GeneCount        int       `json:"gene_count"`
	InteractionCount int       `json:"interaction_count"`
	NetworkCount     int       `json:"network_count"`
}

// CreateRunRequest starts a run. A nil Quality uses the server default.
type CreateRunRequest struct {
	Genes   []string `json:"genes"`
	Quality *float64 `json:"quality,omitempty"`
}

// ListOptions controls pagination.
type ListOptions struct {
	Limit  int
	Offset int
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	SchemaVersion int     `json:"schema_version"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
