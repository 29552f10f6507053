package search

import (
	"testing"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage"
)

// memRepo is a minimal in-memory DocRepository for tests.
type memRepo struct {
	docs []sent.Doc
}

func (r *memRepo) List(labelMatch string) ([]sent.Doc, error) { return r.docs, nil }

func (r *memRepo) Read(id int) (sent.Doc, error) { return r.docs[id], nil }

func (r *memRepo) Labels(pattern string) ([]string, error) { return nil, nil }

func (r *memRepo) Write(doc sent.Doc) error {
	r.docs = append(r.docs, doc)
	return nil
}

func (r *memRepo) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(sent.Sentence) error) (storage.Cursor, error) {
	var pos storage.Cursor
	cursor := after
	for _, doc := range r.docs {
		for _, s := range doc.Sentences {
			pos++
			if pos <= after {
				continue
			}
			cursor = pos
			has := true
			for _, lemma := range lemmas {
				found := false
				for _, t := range s.Tokens {
					if t.Lemma == lemma {
						found = true
						break
					}
				}
				if !found {
					has = false
					break
				}
			}
			if !has {
				continue
			}
			if err := onCandidate(s); err != nil {
				return cursor, err
			}
		}
	}
	return cursor, nil
}

func testLexicon() *lexicon.Lexicon {
	lex := lexicon.New()
	lex.Verbs.Add("walk")
	lex.DependentVerbs.Add("lift")
	lex.DependentObjects.Add("box")
	return lex
}

func fixtureRepo() *memRepo {
	lift := sent.New(0, []sent.Token{
		{Text: "lift", Lemma: "lift", Pos: "VERB", Dep: "ROOT", Head: 0, Index: 0},
		{Text: "boxes", Lemma: "box", Pos: "NOUN", Dep: "dobj", Head: 0, Index: 1},
	})
	walk := sent.New(1, []sent.Token{
		{Text: "walk", Lemma: "walk", Pos: "VERB", Dep: "ROOT", Head: 0, Index: 0},
		{Text: "daily", Lemma: "daily", Pos: "ADV", Dep: "advmod", Head: 0, Index: 1},
	})
	clean := sent.New(2, []sent.Token{
		{Text: "review", Lemma: "review", Pos: "VERB", Dep: "ROOT", Head: 0, Index: 0},
		{Text: "code", Lemma: "code", Pos: "NOUN", Dep: "dobj", Head: 0, Index: 1},
	})

	return &memRepo{docs: []sent.Doc{
		{Id: 0, Title: "posting.json", Sentences: []sent.Sentence{lift, walk, clean}},
	}}
}

func TestSentencesIndexed(t *testing.T) {
	s := New(testLexicon(), fixtureRepo())

	var got []*match.SentenceMatch
	_, err := s.Sentences("lift", 0, 10, func(m *match.SentenceMatch) error {
		got = append(got, m)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence match, got %d", len(got))
	}
	if got[0].Matches[0].Lemma != "lift" {
		t.Fatalf("unexpected anchor: %s", got[0].Matches[0].Lemma)
	}
	if got[0].Matches[0].Kind != match.KindPhrase {
		t.Fatalf("expected phrase match, got %s", got[0].Matches[0].Kind)
	}
}

func TestSentencesIndexedRequiresLemma(t *testing.T) {
	s := New(testLexicon(), fixtureRepo())
	_, err := s.Sentences("", 0, 10, func(m *match.SentenceMatch) error { return nil })
	if err == nil {
		t.Fatal("expected error for empty lemma without doc id")
	}
}

func TestSentencesSingleDoc(t *testing.T) {
	s := New(testLexicon(), fixtureRepo()).WithDocID(0)

	var got []*match.SentenceMatch
	_, err := s.Sentences("", 0, 10, func(m *match.SentenceMatch) error {
		got = append(got, m)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// "lift boxes" and "walk daily" match, "review code" does not.
	if len(got) != 2 {
		t.Fatalf("expected 2 sentence matches, got %d", len(got))
	}
}

func TestSentencesSingleDocFilteredByLemma(t *testing.T) {
	s := New(testLexicon(), fixtureRepo()).WithDocID(0)

	var got []*match.SentenceMatch
	_, err := s.Sentences("walk", 0, 10, func(m *match.SentenceMatch) error {
		got = append(got, m)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Matches[0].Lemma != "walk" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}
