package search

import (
	"errors"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage"
)

// Search orchestrates the strategy selection for finding sentences whose
// ableist matches anchor on a given lemma, against a document repository.
type Search struct {
	matcher *match.Matcher
	repo    storage.DocRepository
	docID   *int
}

// New creates a new Search instance with the given lexicon and repository.
func New(lex *lexicon.Lexicon, dr storage.DocRepository) *Search {
	return &Search{
		matcher: match.NewMatcher(lex),
		repo:    dr,
	}
}

// WithDocID restricts the search to a single document ID.
// If set, the single-document strategy (Read) will be favored over
// the indexed strategy (FindCandidates).
func (s *Search) WithDocID(id int) *Search {
	s.docID = &id
	return s
}

// Sentences streams matched sentences anchored on the given lemma, handling
// pagination. An empty lemma means any match.
func (s *Search) Sentences(lemma string, cursor storage.Cursor, limit int, onMatch func(*match.SentenceMatch) error) (storage.Cursor, error) {
	// Strategy 1: Single Document (No Index)
	if s.docID != nil {
		doc, err := s.repo.Read(*s.docID)
		if err != nil {
			return cursor, err
		}
		// Ensure doc has ID set (Read might return 0 if backend doesn't populate)
		doc.Id = *s.docID

		for _, sm := range s.matcher.MatchDoc(&doc) {
			sm := sm
			if filtered, ok := forLemma(&sm, lemma); ok {
				if err := onMatch(filtered); err != nil {
					return cursor, err
				}
			}
		}
		return cursor, nil
	}

	// Strategy 2: indexed candidate search
	if lemma == "" {
		return cursor, errors.New("a lemma is required for an indexed search")
	}

	return s.repo.FindCandidates([]string{lemma}, cursor, limit, func(candidate sent.Sentence) error {
		matches := s.matcher.Match(&candidate)
		if len(matches) == 0 {
			return nil
		}

		sm := match.SentenceMatch{Sentence: candidate, Matches: matches}
		if filtered, ok := forLemma(&sm, lemma); ok {
			return onMatch(filtered)
		}
		return nil
	})
}

// forLemma narrows a sentence match to the matches anchored on the given
// lemma. An empty lemma keeps everything.
func forLemma(sm *match.SentenceMatch, lemma string) (*match.SentenceMatch, bool) {
	if lemma == "" {
		return sm, len(sm.Matches) > 0
	}

	var kept []match.Match
	for _, m := range sm.Matches {
		if m.Lemma == lemma {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return nil, false
	}

	return &match.SentenceMatch{Sentence: sm.Sentence, Matches: kept}, true
}
