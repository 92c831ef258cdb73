package store

import (
	"encoding/json"
	"fmt"

	"github.com/persistorai/genenet/internal/models"
)

// runSummaryColumns lists the columns selected for run listings.
const runSummaryColumns = `id, created_at, quality, cardinality(genes), interaction_count, network_count`

// annotationDoc is the JSONB shape of run_networks.annotations.
type annotationDoc struct {
	KEGGIDs   []string `json:"kegg_ids"`
	KEGGNames []string `json:"kegg_names"`
	GOIDs     []string `json:"go_ids"`
	GONames   []string `json:"go_names"`
}

func marshalAnnotations(n *models.Network) ([]byte, error) {
	doc := annotationDoc{
		KEGGIDs:   nonNil(n.KEGGIDs),
		KEGGNames: nonNil(n.KEGGNames),
		GOIDs:     nonNil(n.GOIDs),
		GONames:   nonNil(n.GONames),
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshalling annotations: %w", err)
	}

	return b, nil
}

func unmarshalAnnotations(raw []byte, n *models.Network) error {
	var doc annotationDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshalling annotations: %w", err)
	}

	n.KEGGIDs = nonNil(doc.KEGGIDs)
	n.KEGGNames = nonNil(doc.KEGGNames)
	n.GOIDs = nonNil(doc.GOIDs)
	n.GONames = nonNil(doc.GONames)

	return nil
}

// scanRunSummary scans a single row selected with runSummaryColumns.
func scanRunSummary(scan func(dest ...any) error) (models.RunSummary, error) {
	var s models.RunSummary

	err := scan(&s.ID, &s.CreatedAt, &s.Quality, &s.GeneCount, &s.InteractionCount, &s.NetworkCount)
	if err != nil {
		return models.RunSummary{}, err
	}

	return s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
