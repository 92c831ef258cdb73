package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/persistorai/genenet/internal/models"
)

// Title is the banner written at the top of every network report.
var Title = []string{
	"******** Gene interaction networks",
	"******** IntAct interactions annotated with KEGG pathways and GO processes",
}

const (
	separator    = "------------------------------------------------"
	subSeparator = "---"
)

// WriteNetworks renders networks in the given order. Within a network the
// genes come first, then KEGG pathways, then GO processes, each in stored order.
func WriteNetworks(w io.Writer, networks []models.Network) error {
	bw := bufio.NewWriter(w)

	for _, line := range Title {
		fmt.Fprintln(bw, line)
	}

	fmt.Fprintf(bw, "\nA total of %d networks were found.\n\n", len(networks))
	fmt.Fprintln(bw, separator)

	for i := range networks {
		writeNetwork(bw, i+1, &networks[i])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing network report: %w", err)
	}

	return nil
}

func writeNetwork(w io.Writer, n int, network *models.Network) {
	fmt.Fprintf(w, "**NETWORK %d\n", n)
	fmt.Fprintln(w, subSeparator)
	fmt.Fprintln(w, "*GENES:")

	for _, g := range network.Components {
		fmt.Fprintln(w, g)
	}

	fmt.Fprintln(w, subSeparator)
	fmt.Fprintln(w, "*KEGG PATHWAYS:")

	for _, a := range network.KEGG() {
		fmt.Fprintf(w, "%s: %s\n", a.ID, a.Name)
	}

	fmt.Fprintln(w, subSeparator)
	fmt.Fprintln(w, "*GO PROCESSES:")

	for _, a := range network.GO() {
		fmt.Fprintf(w, "%s: %s\n", a.ID, a.Name)
	}

	fmt.Fprintln(w, separator)
}
