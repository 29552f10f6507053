package main

import (
	"github.com/ablescan/ablescan/query"
	"github.com/ablescan/ablescan/render"
)

func queryCommand(opts QueryOptions, isRepoFile bool, ui UI) error {
	lex, _, err := loadLexicon(opts.LexiconPath)
	if err != nil {
		return err
	}

	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	// The filesystem store scans in memory, load it up front.
	if !isRepoFile {
		if err := preload(repo); err != nil {
			return err
		}
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format

	h := query.NewHandler(repo, lex, r)
	return h.Run()
}
