package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/persistorai/genenet/client"
	"github.com/persistorai/genenet/internal/models"
)

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.Join(parts, "  "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

func formatQuiet(id string) {
	fmt.Println(id)
}

func output(v any, quietVal string) {
	switch flagFmt {
	case "quiet":
		formatQuiet(quietVal)
	default:
		// Table requires caller to use formatTable directly.
		formatJSON(v)
	}
}

// networkRows renders one row per network: index, size, genes and
// annotation counts.
func networkRows(networks []models.Network) [][]string {
	rows := make([][]string, 0, len(networks))
	for i, n := range networks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(n.Components)),
			strings.Join(n.Components, ","),
			strconv.Itoa(len(n.KEGGIDs)),
			strconv.Itoa(len(n.GOIDs)),
		})
	}
	return rows
}

func formatNetworks(networks []models.Network) {
	formatTable([]string{"NETWORK", "SIZE", "GENES", "KEGG", "GO"}, networkRows(networks))
}

func formatRuns(runs []client.RunSummary) {
	formatTable([]string{"ID", "CREATED", "QUALITY", "GENES", "INTERACTIONS", "NETWORKS"}, runRows(runs))
}

// clientNetworks converts SDK networks for the shared table renderer.
func clientNetworks(in []client.Network) []models.Network {
	out := make([]models.Network, len(in))
	for i, n := range in {
		out[i] = models.Network{
			Components: n.Components,
			KEGGIDs:    n.KEGGIDs,
			KEGGNames:  n.KEGGNames,
			GOIDs:      n.GOIDs,
			GONames:    n.GONames,
			Edges:      n.Edges,
		}
	}
	return out
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
