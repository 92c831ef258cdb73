package intact

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/persistorai/genenet/internal/models"
)

// ReadGeneList reads one gene identifier per line, trimming whitespace and
// skipping blank lines.
func ReadGeneList(r io.Reader) ([]string, error) {
	var genes []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		g := strings.TrimSpace(sc.Text())
		if g == "" {
			continue
		}

		genes = append(genes, g)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading gene list: %w", err)
	}

	if len(genes) == 0 {
		return nil, models.ErrEmptyGeneList
	}

	return genes, nil
}
