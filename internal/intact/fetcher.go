// Package intact fetches scored protein interactions from the IntAct PSICQUIC service.
package intact

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/genenet/internal/metrics"
	"github.com/persistorai/genenet/internal/models"
)

// Getter performs a GET request and returns the body.
type Getter interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// Fetcher queries IntAct for each gene of interest.
type Fetcher struct {
	getter  Getter
	baseURL string
	species string
	workers int
	log     *logrus.Logger
}

// NewFetcher creates a Fetcher. baseURL is the PSICQUIC service root, e.g.
// "http://www.ebi.ac.uk/Tools/webservices/psicquic/intact/webservices/current".
func NewFetcher(getter Getter, baseURL, species string, workers int, log *logrus.Logger) *Fetcher {
	if workers <= 0 {
		workers = 1
	}

	return &Fetcher{
		getter:  getter,
		baseURL: strings.TrimRight(baseURL, "/"),
		species: species,
		workers: workers,
		log:     log,
	}
}

// InteractorURL returns the tab25 search URL for gene.
func (f *Fetcher) InteractorURL(gene string) string {
	q := url.Values{}
	q.Set("query", "species:"+f.species)
	q.Set("format", "tab25")

	return f.baseURL + "/search/interactor/" + url.PathEscape(gene) + "?" + q.Encode()
}

// Fetch returns the deduplicated interactions of all genes scoring at least
// quality, in gene-list order. Any upstream failure aborts the fetch.
func (f *Fetcher) Fetch(ctx context.Context, genes []string, quality float64) ([]models.Interaction, error) {
	if len(genes) == 0 {
		return nil, models.ErrEmptyGeneList
	}

	if err := models.ValidateQuality(quality); err != nil {
		return nil, err
	}

	perGene := make([][]models.Interaction, len(genes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, gene := range genes {
		g.Go(func() error {
			body, err := f.getter.Get(gctx, f.InteractorURL(gene))
			if err != nil {
				return fmt.Errorf("fetching interactions for %s: %w", gene, err)
			}

			perGene[i] = ParseTab25(string(body), quality)

			f.log.WithFields(logrus.Fields{
				"gene":         gene,
				"interactions": len(perGene[i]),
			}).Debug("intact.interactor")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.Interaction
	for _, list := range perGene {
		merged = append(merged, list...)
	}

	out := Dedupe(merged)
	metrics.InteractionsFetched.Add(float64(len(out)))

	f.log.WithFields(logrus.Fields{
		"genes":        len(genes),
		"raw":          len(merged),
		"interactions": len(out),
		"quality":      quality,
	}).Info("intact.fetch")

	return out, nil
}
