package lexicon

import "sort"

// List names of the four curated word lists.
const (
	ListVerbs            = "verbs"
	ListObjects          = "objects"
	ListDependentVerbs   = "dependent_verbs"
	ListDependentObjects = "dependent_objects"
)

// ListNames returns the names of the curated lists in canonical order.
func ListNames() []string {
	return []string{ListVerbs, ListObjects, ListDependentVerbs, ListDependentObjects}
}

// Set is a collection of lemmas.
type Set map[string]struct{}

func NewSet(lemmas ...string) Set {
	s := Set{}
	for _, l := range lemmas {
		s.Add(l)
	}
	return s
}

func (s Set) Has(lemma string) bool {
	_, ok := s[lemma]
	return ok
}

func (s Set) Add(lemma string) {
	s[lemma] = struct{}{}
}

func (s Set) Del(lemma string) {
	delete(s, lemma)
}

// Lemmas returns the set members sorted alphabetically.
func (s Set) Lemmas() []string {
	lemmas := make([]string, 0, len(s))
	for l := range s {
		lemmas = append(lemmas, l)
	}
	sort.Strings(lemmas)
	return lemmas
}

// Entry carries the descriptive side data of a flagged lemma: suggested
// alternative wording and a usage example.
type Entry struct {
	Lemma        string   `json:"lemma"`
	Alternatives []string `json:"alternatives,omitempty"`
	Example      string   `json:"example,omitempty"`
}

// Lexicon holds the curated word lists driving the matcher.
//
// Verbs are flagged standalone. DependentVerbs are flagged only in
// combination with a direct object whose lemma is in DependentObjects.
// Objects lists ability-referencing nouns on their own; kept for curation
// and statistics, the matcher itself only consults the other three.
//
// A Lexicon is never written after load, so it is safe to share between
// concurrent scans.
type Lexicon struct {
	Verbs            Set
	Objects          Set
	DependentVerbs   Set
	DependentObjects Set

	data map[string]Entry
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		Verbs:            Set{},
		Objects:          Set{},
		DependentVerbs:   Set{},
		DependentObjects: Set{},
		data:             map[string]Entry{},
	}
}

// List returns the named list, or nil for an unknown name.
func (l *Lexicon) List(name string) Set {
	switch name {
	case ListVerbs:
		return l.Verbs
	case ListObjects:
		return l.Objects
	case ListDependentVerbs:
		return l.DependentVerbs
	case ListDependentObjects:
		return l.DependentObjects
	}
	return nil
}

// Lookup returns the side-table entry of a lemma.
func (l *Lexicon) Lookup(lemma string) (Entry, bool) {
	e, ok := l.data[lemma]
	return e, ok
}

// SetData replaces the side table.
func (l *Lexicon) SetData(entries []Entry) {
	l.data = make(map[string]Entry, len(entries))
	for _, e := range entries {
		l.data[e.Lemma] = e
	}
}

// Lemmas returns the unique lemmas across all lists, sorted. Used by the
// query REPL for completion and by the indexed-candidate search.
func (l *Lexicon) Lemmas() []string {
	all := Set{}
	for _, name := range ListNames() {
		for lemma := range l.List(name) {
			all.Add(lemma)
		}
	}
	return all.Lemmas()
}
