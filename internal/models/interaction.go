// Package models defines data types for interaction networks.
package models

import (
	"fmt"
	"math"
)

// Status records whether an interaction has been attributed to a network.
type Status string

// Interaction statuses.
const (
	Unchecked Status = "unchecked"
	Checked   Status = "checked"
)

// Interaction is a scored pairwise relationship between two genes.
// Two interactions with identical fields are still distinct list entries.
type Interaction struct {
	GeneA  string  `json:"gene_a"`
	GeneB  string  `json:"gene_b"`
	Score  float64 `json:"score"`
	Status Status  `json:"status"`
}

// NewInteraction returns an unchecked interaction.
func NewInteraction(a, b string, score float64) Interaction {
	return Interaction{GeneA: a, GeneB: b, Score: score, Status: Unchecked}
}

// Validate checks that both endpoints are present and the score is a finite quality value.
func (i *Interaction) Validate() error {
	if i.GeneA == "" || i.GeneB == "" {
		return ErrMissingGene
	}

	if len(i.GeneA) > 255 {
		return ErrFieldTooLong("gene_a", 255)
	}

	if len(i.GeneB) > 255 {
		return ErrFieldTooLong("gene_b", 255)
	}

	if math.IsNaN(i.Score) || math.IsInf(i.Score, 0) {
		return fmt.Errorf("score must be a finite number")
	}

	return nil
}

// ResetStatus marks every interaction unchecked so the list can be rebuilt.
func ResetStatus(interactions []Interaction) {
	for i := range interactions {
		interactions[i].Status = Unchecked
	}
}
