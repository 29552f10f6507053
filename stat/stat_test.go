package stat

import (
	"testing"

	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
)

func TestAggregate(t *testing.T) {
	doc := sent.Doc{
		Sentences: []sent.Sentence{
			{Id: 0, Tokens: make([]sent.Token, 4)},
			{Id: 1, Tokens: make([]sent.Token, 6)},
		},
	}

	h := NewHandler()
	h.Aggregate(doc)

	stats := h.Get()
	if stats.NumSentences != 2 {
		t.Errorf("NumSentences = %d, want 2", stats.NumSentences)
	}
	if stats.NumTokens != 10 {
		t.Errorf("NumTokens = %d, want 10", stats.NumTokens)
	}
	if stats.TokensPerSentenceMean != 5 {
		t.Errorf("TokensPerSentenceMean = %d, want 5", stats.TokensPerSentenceMean)
	}
	if stats.TokensPerSentenceDis[4] != 1 || stats.TokensPerSentenceDis[6] != 1 {
		t.Errorf("TokensPerSentenceDis = %v", stats.TokensPerSentenceDis)
	}
}

func TestAggregateEmptyDoc(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.Doc{})

	if stats := h.Get(); stats.NumSentences != 0 || stats.TokensPerSentenceMean != 0 {
		t.Errorf("unexpected stats for empty doc: %+v", stats)
	}
}

func TestAggregateMatches(t *testing.T) {
	results := []*match.SentenceMatch{
		{Matches: []match.Match{
			{Kind: match.KindToken, Lemma: "lift"},
			{Kind: match.KindPhrase, Lemma: "move"},
		}},
		{Matches: []match.Match{
			{Kind: match.KindToken, Lemma: "lift"},
		}},
	}

	h := NewHandler()
	h.AggregateMatches(results)

	stats := h.Get()
	if stats.NumMatches != 3 {
		t.Errorf("NumMatches = %d, want 3", stats.NumMatches)
	}
	if stats.PerLemma["lift"] != 2 || stats.PerLemma["move"] != 1 {
		t.Errorf("PerLemma = %v", stats.PerLemma)
	}
}
