package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Run is one execution of the fetch, build and annotate pipeline.
type Run struct {
	ID           uuid.UUID     `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	Quality      float64       `json:"quality"`
	Genes        []string      `json:"genes"`
	Interactions []Interaction `json:"interactions"`
	Networks     []Network     `json:"networks"`
}

// RunSummary is the lightweight listing form of a Run.
type RunSummary struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Quality          float64   `json:"quality"`
	GeneCount        int       `json:"gene_count"`
	InteractionCount int       `json:"interaction_count"`
	NetworkCount     int       `json:"network_count"`
}

// Summary returns the listing form of the run.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:               r.ID,
		CreatedAt:        r.CreatedAt,
		Quality:          r.Quality,
		GeneCount:        len(r.Genes),
		InteractionCount: len(r.Interactions),
		NetworkCount:     len(r.Networks),
	}
}

// CreateRunRequest is the payload for starting a new run.
type CreateRunRequest struct {
	Genes   []string `json:"genes"`
	Quality *float64 `json:"quality,omitempty"`
}

// Validate checks the gene list and optional quality threshold.
func (r *CreateRunRequest) Validate() error {
	if len(r.Genes) == 0 {
		return ErrEmptyGeneList
	}

	if len(r.Genes) > MaxGenesPerRun {
		return ErrFieldTooLong("genes", MaxGenesPerRun)
	}

	for _, g := range r.Genes {
		if g == "" {
			return ErrMissingGene
		}

		if len(g) > 255 {
			return ErrFieldTooLong("gene", 255)
		}
	}

	if r.Quality != nil {
		return ValidateQuality(*r.Quality)
	}

	return nil
}

// BuildNetworksRequest is the payload for building networks from a supplied interaction list.
type BuildNetworksRequest struct {
	Interactions []Interaction `json:"interactions"`
}

// Validate checks every interaction in the request.
func (r *BuildNetworksRequest) Validate() error {
	if len(r.Interactions) > MaxInteractionsPerRequest {
		return ErrFieldTooLong("interactions", MaxInteractionsPerRequest)
	}

	for i := range r.Interactions {
		if err := r.Interactions[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Request size limits.
const (
	MaxGenesPerRun            = 500
	MaxInteractionsPerRequest = 50000
)

// ValidateQuality checks that an MI-score threshold lies in [0, 1].
func ValidateQuality(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return ErrInvalidQuality
	}

	return nil
}
