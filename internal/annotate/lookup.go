// Package annotate attaches KEGG pathways and GO biological processes to networks.
package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/persistorai/genenet/internal/upstream"
)

// Lookup returns the annotation ids and names for one gene.
type Lookup interface {
	Lookup(ctx context.Context, gene string) (ids, names []string, err error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, gene string) (ids, names []string, err error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, gene string) (ids, names []string, err error) {
	return f(ctx, gene)
}

// Getter performs a GET request and returns the body.
type Getter interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// KEGGLookup resolves KEGG pathways for Arabidopsis genes through togows.
type KEGGLookup struct {
	getter  Getter
	baseURL string
}

// NewKEGGLookup creates a KEGGLookup against the togows root, e.g. "http://togows.org".
func NewKEGGLookup(getter Getter, baseURL string) *KEGGLookup {
	return &KEGGLookup{getter: getter, baseURL: strings.TrimRight(baseURL, "/")}
}

// Lookup returns the pathways of gene in the order togows lists them.
func (k *KEGGLookup) Lookup(ctx context.Context, gene string) (ids, names []string, err error) {
	u := k.baseURL + "/entry/kegg-genes/ath:" + url.PathEscape(gene) + "/pathways.json"

	body, err := k.getter.Get(ctx, u)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("kegg lookup for %s: %w", gene, err)
	}

	ids, names, err = parseKEGG(body)
	if err != nil {
		return nil, nil, fmt.Errorf("kegg lookup for %s: %w", gene, err)
	}

	return ids, names, nil
}

// parseKEGG reads the first object of a togows pathways array, keeping key order.
func parseKEGG(body []byte) (ids, names []string, err error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding pathways: %w", err)
	}

	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, nil, fmt.Errorf("decoding pathways: expected array, got %v", tok)
	}

	if !dec.More() {
		return nil, nil, nil
	}

	tok, err = dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decoding pathways: %w", err)
	}

	if tok == nil {
		return nil, nil, nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("decoding pathways: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decoding pathway id: %w", err)
		}

		id, ok := keyTok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("decoding pathways: unexpected key %v", keyTok)
		}

		var name string
		if err := dec.Decode(&name); err != nil {
			return nil, nil, fmt.Errorf("decoding pathway %s: %w", id, err)
		}

		ids = append(ids, id)
		names = append(names, name)
	}

	return ids, names, nil
}

// GOLookup resolves GO biological processes for a UniProt entry through togows.
type GOLookup struct {
	getter  Getter
	baseURL string
}

// NewGOLookup creates a GOLookup against the togows root.
func NewGOLookup(getter Getter, baseURL string) *GOLookup {
	return &GOLookup{getter: getter, baseURL: strings.TrimRight(baseURL, "/")}
}

// goProcessPrefix marks biological process terms in UniProt cross-references.
const goProcessPrefix = "P:"

// Lookup returns the biological processes of gene, deduplicated by GO id.
func (g *GOLookup) Lookup(ctx context.Context, gene string) (ids, names []string, err error) {
	u := g.baseURL + "/entry/uniprot/" + url.PathEscape(gene) + "/dr.json"

	body, err := g.getter.Get(ctx, u)
	if err != nil {
		if upstream.IsNotFound(err) {
			return nil, nil, nil
		}

		return nil, nil, fmt.Errorf("go lookup for %s: %w", gene, err)
	}

	ids, names, err = parseGO(body)
	if err != nil {
		return nil, nil, fmt.Errorf("go lookup for %s: %w", gene, err)
	}

	return ids, names, nil
}

func parseGO(body []byte) (ids, names []string, err error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, nil, fmt.Errorf("decoding cross-references: %w", err)
	}

	if len(entries) == 0 || entries[0] == nil {
		return nil, nil, nil
	}

	raw, ok := entries[0]["GO"]
	if !ok {
		return nil, nil, nil
	}

	var refs [][]string
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil, nil, fmt.Errorf("decoding GO references: %w", err)
	}

	seen := make(map[string]bool)

	for _, ref := range refs {
		if len(ref) < 2 || !strings.HasPrefix(ref[1], "P") {
			continue
		}

		if seen[ref[0]] {
			continue
		}

		seen[ref[0]] = true
		ids = append(ids, ref[0])
		names = append(names, strings.TrimPrefix(ref[1], goProcessPrefix))
	}

	return ids, names, nil
}
