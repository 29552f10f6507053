package main

import (
	"github.com/ablescan/ablescan/edit"
)

func editCommand(opts EditOptions, ui UI) error {
	lex, store, err := loadLexicon(opts.LexiconPath)
	if err != nil {
		return err
	}

	h := edit.NewHandler(lex, store)
	return h.Run()
}
