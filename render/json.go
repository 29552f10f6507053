package render

import (
	"encoding/json"
	"io"

	"github.com/ablescan/ablescan/match"
)

// JSONRenderer writes sentence match results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes sentence match results as a JSON array.
func (r *JSONRenderer) Render(results []*match.SentenceMatch) {
	json.NewEncoder(r.W).Encode(results)
}
