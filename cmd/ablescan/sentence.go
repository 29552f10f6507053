package main

import (
	"fmt"
	"strconv"

	"github.com/ablescan/ablescan/render"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage/filesystem"
)

func sentenceCommand(opts SentenceOptions, source string, sentId int, isFile bool, ui UI) error {
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

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(doc.Sentences)-1)
	}

	s := doc.Sentences[sentId]
	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = false
	prefix := fmt.Sprintf("✍  %d ", sentId)
	r.Sentence(s.Tokens, prefix)
	fmt.Fprintln(ui.Out)

	for _, token := range s.Tokens {
		fmt.Fprintf(ui.Out, "%20q %15q %8s %6d %6d %8s %s\n", token.Text, token.Lemma, token.Pos, token.Id, token.Head, token.Dep, token.Tag)
	}

	return nil
}
