package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ablescan/ablescan/render"
	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage"
	"github.com/ablescan/ablescan/storage/filesystem"
)

func docCommand(opts DocOptions, arg string, isArgFile bool, isRepoFile bool, ui UI) error {
	if isArgFile {
		return renderFile(arg, opts, ui)
	}

	pool := &Pool{}
	defer pool.Close()

	repo, err := NewDocRepository(pool, opts.DocPath)
	if err != nil {
		return err
	}

	if arg == "" {
		return listDocs(repo, ui)
	}

	if !isRepoFile {
		if err := preload(repo); err != nil {
			return err
		}
	}

	id, _ := strconv.Atoi(arg)
	doc, err := repo.Read(id)
	if err != nil {
		return err
	}

	renderDoc(doc, opts, ui)
	return nil
}

func renderFile(path string, opts DocOptions, ui UI) error {
	doc, err := filesystem.ReadDoc(path)
	if err != nil {
		absPath, _ := filepath.Abs(path)
		return fmt.Errorf("filesystem document %q: %w", absPath, err)
	}

	renderDoc(doc, opts, ui)
	return nil
}

func renderDoc(doc sent.Doc, opts DocOptions, ui UI) {
	start := opts.Start
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return
	}

	sentences := doc.Sentences[start:]
	if opts.Count >= 0 && opts.Count < len(sentences) {
		sentences = sentences[:opts.Count]
	}

	r := render.NewRenderer()
	r.Out = ui.Out
	r.HasColor = false
	for i, sentence := range sentences {
		prefix := fmt.Sprintf("✍  %d ", start+i)
		r.Sentence(sentence.Tokens, prefix)
	}
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List("")
	if err != nil {
		return err
	}

	for _, doc := range docs {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", doc.Id, doc.Title)
	}
	return nil
}
