package match

import (
	"fmt"

	"github.com/ablescan/ablescan/lexicon"
	sent "github.com/ablescan/ablescan/sentence"
)

// Kind distinguishes a standalone verb match from a verb-object phrase match.
// The renderers format their positions differently: a single token reports
// its index, a phrase reports a start:end range.
type Kind string

const (
	KindToken  Kind = "token"
	KindPhrase Kind = "phrase"
)

// Match is one flagged occurrence inside a sentence. Start/End are token
// indices, End exclusive. Lemma is the lemma of the anchoring verb. Data is
// the side-table entry of that lemma, nil when the lexicon carries none.
type Match struct {
	Kind  Kind           `json:"kind"`
	Text  string         `json:"text"`
	Lemma string         `json:"lemma"`
	Start int            `json:"start"`
	End   int            `json:"end"`
	Data  *lexicon.Entry `json:"data,omitempty"`
}

// Position renders the match position: the token index for a standalone
// verb, start:end for a phrase.
func (m Match) Position() string {
	if m.Kind == KindToken {
		return fmt.Sprintf("%d", m.Start)
	}
	return fmt.Sprintf("%d:%d", m.Start, m.End)
}

// SentenceMatch pairs a sentence with the matches found in it. Used by the
// renderer to highlight the flagged tokens inside their sentence.
type SentenceMatch struct {
	Sentence sent.Sentence `json:"sentence"`
	Matches  []Match       `json:"matches"`
}

// Tokens returns the sentence tokens covered by any match, for highlighting.
func (sm *SentenceMatch) Tokens() []sent.Token {
	var tokens []sent.Token
	for _, m := range sm.Matches {
		for i := m.Start; i < m.End && i < len(sm.Sentence.Tokens); i++ {
			tokens = append(tokens, sm.Sentence.Tokens[i])
		}
	}
	return tokens
}

// auxiliary and negation dependency labels; a verb carrying one of these as
// its own label is a helper, not a semantically primary verb.
var auxDeps = map[string]bool{
	"aux":     true,
	"auxpass": true,
	"neg":     true,
}

// IsVerb reports whether the token is a semantically primary verb: POS VERB
// and not itself an auxiliary or negation. The exclusion applies to the
// token's own dependency label only; a sibling "neg" token does not disturb
// the verb it negates.
func IsVerb(t sent.Token) bool {
	return t.Pos == "VERB" && !auxDeps[t.Dep]
}

// Matcher finds ableist language in parsed sentences. It holds a read-only
// Lexicon and no other state, so a single Matcher may serve concurrent scans.
type Matcher struct {
	lex *lexicon.Lexicon
}

func NewMatcher(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// Verbs returns the standalone matches: every primary verb whose lemma is in
// the ableist verb list, in sentence order. The verb is flagged alone,
// regardless of its objects.
func (m *Matcher) Verbs(s *sent.Sentence) []Match {
	var matches []Match
	for _, t := range s.Tokens {
		if !IsVerb(t) {
			continue
		}
		if !m.lex.Verbs.Has(t.Lemma) {
			continue
		}

		matches = append(matches, Match{
			Kind:  KindToken,
			Text:  t.Text,
			Lemma: t.Lemma,
			Start: t.Index,
			End:   t.Index + 1,
			Data:  m.entry(t.Lemma),
		})
	}

	return matches
}

// Phrases returns the verb-object matches: a direct object whose lemma is in
// the dependent-object list, attached to a primary verb whose lemma is in
// the dependent-verb list. The span runs from the verb to the right edge of
// the object's own subtree, so object modifiers ("your", "of bricks") are
// captured while verb modifiers ("repeatedly") are not.
//
// Spans are emitted in the order their object token appears; two qualifying
// objects under one verb yield two spans.
func (m *Matcher) Phrases(s *sent.Sentence) []Match {
	s.Derive()

	var matches []Match
	for _, t := range s.Tokens {
		if t.Dep != "dobj" || !m.lex.DependentObjects.Has(t.Lemma) {
			continue
		}

		verb := s.Head(t.Index)
		if !IsVerb(verb) || !m.lex.DependentVerbs.Has(verb.Lemma) {
			continue
		}

		start := verb.Index
		end := s.RightEdge(t.Index) + 1
		if end <= start {
			// fronted object ("hands you must move"): the object subtree
			// ends before the verb, so there is no verb-to-object span.
			continue
		}

		matches = append(matches, Match{
			Kind:  KindPhrase,
			Text:  s.Text(start, end),
			Lemma: verb.Lemma,
			Start: start,
			End:   end,
			Data:  m.entry(verb.Lemma),
		})
	}

	return matches
}

// Match runs both matchers over one sentence: standalone verbs first, then
// phrases. A lemma present in both the standalone and the dependent list
// fires twice; results are deliberately not deduplicated.
func (m *Matcher) Match(s *sent.Sentence) []Match {
	return append(m.Verbs(s), m.Phrases(s)...)
}

// MatchDoc runs the matcher over every sentence of a doc and returns the
// sentences that produced at least one match, in document order.
func (m *Matcher) MatchDoc(doc *sent.Doc) []SentenceMatch {
	var results []SentenceMatch
	for i := range doc.Sentences {
		s := &doc.Sentences[i]
		matches := m.Match(s)
		if len(matches) == 0 {
			continue
		}
		results = append(results, SentenceMatch{Sentence: *s, Matches: matches})
	}
	return results
}

func (m *Matcher) entry(lemma string) *lexicon.Entry {
	e, ok := m.lex.Lookup(lemma)
	if !ok {
		return nil
	}
	return &e
}
