package intact

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/persistorai/genenet/internal/models"
)

var (
	// miScorePattern captures the IntAct MI-score column value.
	miScorePattern = regexp.MustCompile(`intact-miscore:(0.\d+)`)

	// agiPattern matches Arabidopsis Genome Initiative locus codes.
	agiPattern = regexp.MustCompile(`At\dg\d{5}`)
)

// ParseTab25 extracts scored gene pairs from a PSICQUIC tab25 response.
// Lines without an MI-score or with fewer than two locus codes are skipped,
// as are lines scoring below quality. The first two locus codes on a line
// are the interacting pair.
func ParseTab25(body string, quality float64) []models.Interaction {
	var out []models.Interaction

	for _, line := range strings.Split(body, "\n") {
		in, ok := parseLine(line)
		if !ok || in.Score < quality {
			continue
		}

		out = append(out, in)
	}

	return out
}

func parseLine(line string) (models.Interaction, bool) {
	if strings.TrimSpace(line) == "" {
		return models.Interaction{}, false
	}

	m := miScorePattern.FindStringSubmatch(line)
	if m == nil {
		return models.Interaction{}, false
	}

	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Interaction{}, false
	}

	genes := agiPattern.FindAllString(line, 2)
	if len(genes) < 2 {
		return models.Interaction{}, false
	}

	return models.NewInteraction(genes[0], genes[1], score), true
}

// pairKey identifies an interaction by its endpoints and score.
type pairKey struct {
	a, b  string
	score float64
}

// Dedupe removes exact (GeneA, GeneB, Score) repeats, keeping the first occurrence.
// Reversed pairs are distinct entries.
func Dedupe(interactions []models.Interaction) []models.Interaction {
	seen := make(map[pairKey]bool, len(interactions))
	out := make([]models.Interaction, 0, len(interactions))

	for _, in := range interactions {
		k := pairKey{a: in.GeneA, b: in.GeneB, score: in.Score}
		if seen[k] {
			continue
		}

		seen[k] = true
		out = append(out, in)
	}

	return out
}
