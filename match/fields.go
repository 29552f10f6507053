package match

import (
	"strconv"
	"strings"
)

// NotAvailable marks a requested property that exists neither on the match
// record nor in its side-table entry. Requested properties always appear in
// the output, never silently dropped.
const NotAvailable = "field not available"

// Fields resolves the requested property names for a match: first against
// the flat match record, then against the side-table entry of the matched
// lemma. The resolution is an explicit two-level lookup, no reflection.
func (m Match) Fields(props []string) map[string]string {
	fields := make(map[string]string, len(props))
	for _, p := range props {
		fields[p] = m.field(p)
	}
	return fields
}

// KnownProperty reports whether name can resolve to a value on at least
// some matches. Unknown names still appear in the output as NotAvailable.
func KnownProperty(name string) bool {
	switch name {
	case "kind", "text", "phrase", "lemma", "start", "end", "position", "alternatives", "example":
		return true
	}
	return false
}

func (m Match) field(name string) string {
	switch name {
	case "kind":
		return string(m.Kind)
	case "text", "phrase":
		return m.Text
	case "lemma":
		return m.Lemma
	case "start":
		return strconv.Itoa(m.Start)
	case "end":
		return strconv.Itoa(m.End)
	case "position":
		return m.Position()
	}

	// side table
	if m.Data != nil {
		switch name {
		case "alternatives":
			if len(m.Data.Alternatives) > 0 {
				return strings.Join(m.Data.Alternatives, ", ")
			}
		case "example":
			if m.Data.Example != "" {
				return m.Data.Example
			}
		}
	}

	return NotAvailable
}
