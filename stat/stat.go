package stat

import (
	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// NumMatches and PerLemma aggregate matcher results, when scans are
	// fed to the handler.
	NumMatches int
	PerLemma   map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		PerLemma:             map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the token counts of a doc.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// AggregateMatches adds scan results: total matches and occurrences per
// anchor lemma.
func (h *Handler) AggregateMatches(results []*match.SentenceMatch) {
	for _, sm := range results {
		h.stats.NumMatches += len(sm.Matches)
		for _, m := range sm.Matches {
			h.stats.PerLemma[m.Lemma]++
		}
	}
}
