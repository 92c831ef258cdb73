package annotate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/genenet/internal/models"
)

// Annotator fills the KEGG and GO lists of networks.
type Annotator struct {
	kegg    Lookup
	goTerms Lookup
	workers int
	log     *logrus.Logger
}

// NewAnnotator creates an Annotator. Either lookup may be nil to skip that source.
func NewAnnotator(kegg, goTerms Lookup, workers int, log *logrus.Logger) *Annotator {
	if workers <= 0 {
		workers = 1
	}

	return &Annotator{kegg: kegg, goTerms: goTerms, workers: workers, log: log}
}

// geneResult is one gene's lookup output.
type geneResult struct {
	ids   []string
	names []string
}

// Annotate appends KEGG pathways, then GO processes, to every network. Within
// a network, results are appended in component order. Components are never
// modified.
func (a *Annotator) Annotate(ctx context.Context, networks []models.Network) error {
	for i := range networks {
		n := &networks[i]

		if a.kegg != nil {
			results, err := a.lookupAll(ctx, a.kegg, n.Components)
			if err != nil {
				return fmt.Errorf("annotating network %d with KEGG: %w", i+1, err)
			}

			for _, r := range results {
				n.KEGGIDs = append(n.KEGGIDs, r.ids...)
				n.KEGGNames = append(n.KEGGNames, r.names...)
			}
		}

		if a.goTerms != nil {
			results, err := a.lookupAll(ctx, a.goTerms, n.Components)
			if err != nil {
				return fmt.Errorf("annotating network %d with GO: %w", i+1, err)
			}

			for _, r := range results {
				n.GOIDs = append(n.GOIDs, r.ids...)
				n.GONames = append(n.GONames, r.names...)
			}
		}

		a.log.WithFields(logrus.Fields{
			"network": i + 1,
			"genes":   len(n.Components),
			"kegg":    len(n.KEGGIDs),
			"go":      len(n.GOIDs),
		}).Debug("annotate.network")
	}

	return nil
}

// lookupAll runs l for every gene, at most a.workers at a time, and returns
// results indexed like genes.
func (a *Annotator) lookupAll(ctx context.Context, l Lookup, genes []string) ([]geneResult, error) {
	results := make([]geneResult, len(genes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, gene := range genes {
		g.Go(func() error {
			ids, names, err := l.Lookup(gctx, gene)
			if err != nil {
				return err
			}

			results[i] = geneResult{ids: ids, names: names}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
