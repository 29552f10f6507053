package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ablescan/ablescan/match"
)

// DefaultProperties are the report columns printed when the caller selects
// none.
var DefaultProperties = []string{"phrase", "lemma", "position", "alternatives", "example"}

// ReportRenderer writes the scan report: a count header followed by one
// numbered block per match with the requested properties.
type ReportRenderer struct {
	W io.Writer

	// Properties selects the fields of each match to print. Requested
	// properties that a match cannot resolve are printed with the
	// "field not available" marker.
	Properties []string
}

func NewReportRenderer(w io.Writer) *ReportRenderer {
	return &ReportRenderer{W: w, Properties: DefaultProperties}
}

// Render prints the report for the matches of one document.
func (r *ReportRenderer) Render(results []*match.SentenceMatch) {
	total := 0
	for _, sm := range results {
		total += len(sm.Matches)
	}

	fmt.Fprintf(r.W, "Found %d instances of ableist language.\n", total)

	props := r.Properties
	if len(props) == 0 {
		props = DefaultProperties
	}

	n := 0
	for _, sm := range results {
		for _, m := range sm.Matches {
			n++
			fmt.Fprintf(r.W, "\nMatch #%d\n", n)

			fields := m.Fields(props)
			parts := make([]string, 0, len(props))
			for _, p := range props {
				parts = append(parts, fmt.Sprintf("%s: %s", strings.ToUpper(p), fields[p]))
			}
			fmt.Fprintf(r.W, "%s\n", strings.Join(parts, " | "))
		}
	}
}
