package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/stat"
	"github.com/ablescan/ablescan/storage/filesystem"
)

func statCommand(opts StatOptions, source string, sentId *int, isFile bool, ui UI) error {
	var doc sent.Doc

	if isFile {
		var err error
		doc, err = filesystem.ReadDoc(source)
		if err != nil {
			return err
		}
	} else {
		pool := &Pool{}
		defer pool.Close()

		repo, err := NewDocRepository(pool, opts.DocPath)
		if err != nil {
			return err
		}

		id, _ := strconv.Atoi(source)
		doc, err = repo.Read(id)
		if err != nil {
			return err
		}
	}

	if sentId != nil {
		if *sentId < 0 || *sentId >= len(doc.Sentences) {
			return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", *sentId, len(doc.Sentences))
		}
		doc = sent.Doc{Sentences: doc.Sentences[*sentId : *sentId+1]}
	}

	hdl := stat.NewHandler()
	hdl.Aggregate(doc)

	// Per-lemma match counts only when a lexicon is reachable
	if opts.LexiconPath != "" {
		lex, err := lexicon.NewStore(opts.LexiconPath).Load()
		if err != nil {
			return err
		}
		matcher := match.NewMatcher(lex)
		var results []*match.SentenceMatch
		for _, sm := range matcher.MatchDoc(&doc) {
			sm := sm
			results = append(results, &sm)
		}
		hdl.AggregateMatches(results)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num sentences %d, num tokens per sentence %d\n", stats.NumSentences, stats.TokensPerSentenceMean)

	if stats.NumMatches > 0 {
		fmt.Fprintf(ui.Out, "Num matches %d\n", stats.NumMatches)

		lemmas := make([]string, 0, len(stats.PerLemma))
		for lemma := range stats.PerLemma {
			lemmas = append(lemmas, lemma)
		}
		sort.Strings(lemmas)
		for _, lemma := range lemmas {
			fmt.Fprintf(ui.Out, "  %s %d\n", lemma, stats.PerLemma[lemma])
		}
	}

	return nil
}
