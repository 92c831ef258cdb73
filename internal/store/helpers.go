package store

import "github.com/persistorai/genenet/internal/models"

// maxListLimit is a defense-in-depth cap on limit values for list queries.
const maxListLimit = 1000

const defaultListLimit = 50

// clampPage normalises list pagination arguments.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// networkOwners maps each interaction position to the index of the network
// whose edges include it; unowned positions hold -1.
func networkOwners(interactionCount int, networks []models.Network) []int {
	owners := make([]int, interactionCount)
	for i := range owners {
		owners[i] = -1
	}

	for n := range networks {
		for _, e := range networks[n].Edges {
			if e >= 0 && e < interactionCount {
				owners[e] = n
			}
		}
	}

	return owners
}
