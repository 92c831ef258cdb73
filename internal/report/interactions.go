// Package report renders interaction lists and annotated networks as text files.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/persistorai/genenet/internal/models"
)

const (
	interactionsTitle  = "Interactions found between proteins in %d pairs\n"
	interactionsHeader = "id1\tid2\tscore"
)

// WriteInteractions writes the pair count, a header row and one comma-joined
// row per interaction.
func WriteInteractions(w io.Writer, interactions []models.Interaction) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, interactionsTitle, len(interactions))
	fmt.Fprintln(bw, interactionsHeader)

	for _, in := range interactions {
		fmt.Fprintf(bw, "%s,%s,%s\n", in.GeneA, in.GeneB, formatScore(in.Score))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing interactions: %w", err)
	}

	return nil
}

// ReadInteractions parses a file written by WriteInteractions. The title and
// header lines are optional; rows that do not hold two genes and a numeric
// score are skipped. Every returned interaction is unchecked.
func ReadInteractions(r io.Reader) ([]models.Interaction, error) {
	var out []models.Interaction

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line == interactionsHeader || strings.HasPrefix(line, "Interactions found") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			continue
		}

		a, b := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if a == "" || b == "" {
			continue
		}

		score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			continue
		}

		out = append(out, models.NewInteraction(a, b, score))
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading interactions: %w", err)
	}

	return out, nil
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
