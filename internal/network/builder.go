// Package network partitions an interaction list into connected gene networks.
//
// The interaction list doubles as the visited set: an interaction is claimed
// by exactly one network, the first whose frontier reaches it, and is marked
// models.Checked in place. Network boundaries therefore depend on input order
// and must be computed sequentially.
package network

import (
	"strings"

	"github.com/persistorai/genenet/internal/models"
)

// IdentifyNetworks scans interactions in order and grows one network from each
// interaction still unchecked when the scan reaches it. The slice is mutated in
// place; on return every interaction is checked.
func IdentifyNetworks(interactions []models.Interaction) []models.Network {
	networks := make([]models.Network, 0)

	for i := range interactions {
		if interactions[i].Status != models.Unchecked {
			continue
		}

		networks = append(networks, grow(interactions, i))
	}

	return networks
}

// grow builds the network seeded by interactions[seed] using round-based frontier expansion.
func grow(interactions []models.Interaction, seed int) models.Network {
	interactions[seed].Status = models.Checked

	frontier := []string{interactions[seed].GeneA, interactions[seed].GeneB}
	edges := []int{seed}

	var members []string

	for {
		members = append(members, frontier...)

		var next []string

		for _, gene := range frontier {
			found, claimed := claim(interactions, gene)
			next = append(next, found...)
			edges = append(edges, claimed...)
		}

		if len(next) == 0 {
			break
		}

		frontier = next
	}

	return models.NewNetwork(dedupeFold(members), edges)
}

// claim marks every unchecked interaction touching gene as checked and returns
// the opposite endpoints together with the claimed positions. Matching is
// case-sensitive.
func claim(interactions []models.Interaction, gene string) (genes []string, positions []int) {
	for i := range interactions {
		in := &interactions[i]
		if in.Status != models.Unchecked {
			continue
		}

		switch gene {
		case in.GeneA:
			genes = append(genes, in.GeneB)
		case in.GeneB:
			genes = append(genes, in.GeneA)
		default:
			continue
		}

		in.Status = models.Checked
		positions = append(positions, i)
	}

	return genes, positions
}

// dedupeFold removes case-insensitive duplicates, keeping the first spelling seen.
func dedupeFold(genes []string) []string {
	seen := make(map[string]bool, len(genes))
	out := make([]string, 0, len(genes))

	for _, g := range genes {
		key := strings.ToLower(g)
		if seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, g)
	}

	return out
}
