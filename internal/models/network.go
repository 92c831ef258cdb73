package models

// Network is a set of genes connected through the interactions consumed while building it.
type Network struct {
	Components []string `json:"components"`
	KEGGIDs    []string `json:"kegg_ids"`
	KEGGNames  []string `json:"kegg_names"`
	GOIDs      []string `json:"go_ids"`
	GONames    []string `json:"go_names"`

	// Edges holds positions in the input interaction list, seed first.
	Edges []int `json:"edges"`
}

// NewNetwork creates a network with empty annotation lists.
func NewNetwork(components []string, edges []int) Network {
	return Network{
		Components: components,
		KEGGIDs:    []string{},
		KEGGNames:  []string{},
		GOIDs:      []string{},
		GONames:    []string{},
		Edges:      edges,
	}
}

// Annotation is an (id, name) pair from a pathway or process database.
type Annotation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// KEGG returns the network's KEGG pathways as pairs.
func (n *Network) KEGG() []Annotation {
	return pairs(n.KEGGIDs, n.KEGGNames)
}

// GO returns the network's GO processes as pairs.
func (n *Network) GO() []Annotation {
	return pairs(n.GOIDs, n.GONames)
}

// pairs zips ids with names; a missing name is left empty.
func pairs(ids, names []string) []Annotation {
	out := make([]Annotation, 0, len(ids))
	for i, id := range ids {
		a := Annotation{ID: id}
		if i < len(names) {
			a.Name = names[i]
		}
		out = append(out, a)
	}

	return out
}
