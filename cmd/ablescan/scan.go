package main

import (
	"fmt"
	"strings"

	"github.com/ablescan/ablescan/match"
	"github.com/ablescan/ablescan/render"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage/filesystem"
)

// scanCommand runs the detector over the given files, or over the doc
// repository when no files are given, and reports the matches.
func scanCommand(opts ScanOptions, sources []string, ui UI) error {
	lex, _, err := loadLexicon(opts.LexiconPath)
	if err != nil {
		return err
	}
	matcher := match.NewMatcher(lex)

	var results []*match.SentenceMatch
	docNames := map[int]string{}

	if len(sources) > 0 {
		for docId, source := range sources {
			doc, err := filesystem.ReadDoc(source)
			if err != nil {
				return err
			}
			doc.Id = docId
			for i := range doc.Sentences {
				doc.Sentences[i].Id = i
				doc.Sentences[i].DocId = docId
			}
			docNames[docId] = source

			results = append(results, matchDoc(matcher, &doc)...)
		}
	} else {
		pool := &Pool{}
		defer pool.Close()

		repo, err := NewDocRepository(pool, opts.DocPath)
		if err != nil {
			return err
		}
		if err := preload(repo); err != nil {
			return err
		}

		if opts.Doc != nil {
			doc, err := repo.Read(*opts.Doc)
			if err != nil {
				return err
			}
			docNames[doc.Id] = doc.Title

			if opts.Sent != nil {
				if *opts.Sent < 0 || *opts.Sent >= len(doc.Sentences) {
					return fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", *opts.Sent, len(doc.Sentences))
				}
				doc = sent.Doc{Id: doc.Id, Title: doc.Title, Sentences: doc.Sentences[*opts.Sent : *opts.Sent+1]}
			}

			results = matchDoc(matcher, &doc)
		} else {
			docs, err := repo.List("")
			if err != nil {
				return err
			}

			for _, meta := range docs {
				if !hasLabels(meta.Labels, opts.Labels) {
					continue
				}

				doc, err := repo.Read(meta.Id)
				if err != nil {
					return err
				}
				docNames[meta.Id] = meta.Title

				results = append(results, matchDoc(matcher, &doc)...)
			}
		}
	}

	if opts.JSON {
		render.NewJSONRenderer(ui.Out).Render(results)
		return nil
	}

	if opts.Highlight {
		r := render.NewRenderer()
		r.Out = ui.Out
		r.HasColor = !opts.NoColor
		r.Format = opts.Format
		r.DocNames = docNames
		r.Match(results)
		return nil
	}

	rep := render.NewReportRenderer(ui.Out)
	rep.Properties = opts.Properties
	rep.Render(results)
	return nil
}

func matchDoc(matcher *match.Matcher, doc *sent.Doc) []*match.SentenceMatch {
	var results []*match.SentenceMatch
	for _, sm := range matcher.MatchDoc(doc) {
		sm := sm
		results = append(results, &sm)
	}
	return results
}

func hasLabels(docLabels, cmdLabels []string) bool {
	// No command line labels to match
	if nil == cmdLabels {
		return true
	}

	for _, label := range cmdLabels {

		isLabel := false
		for _, l := range docLabels {
			if strings.Contains(l, label) {
				isLabel = true
			}
		}

		if !isLabel {
			return false
		}
	}

	return true
}
