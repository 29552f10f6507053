package main

import (
	"fmt"
	"os"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/storage"
	"github.com/ablescan/ablescan/storage/filesystem"
	"github.com/ablescan/ablescan/storage/sqlite/zombiezen"

	"github.com/gosuri/uiprogress"
)

// NewDocRepository opens a doc repository. A directory path yields the
// filesystem store, a file path the SQLite store.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// loadLexicon reads the word lists and the side table from the lexicon
// directory.
func loadLexicon(path string) (*lexicon.Lexicon, *lexicon.Store, error) {
	store := lexicon.NewStore(path)
	lex, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load lexicon from %s: %w", path, err)
	}
	return lex, store, nil
}

// preload fills the repository cache, with a progress bar when the
// repository supports preloading.
func preload(repo storage.DocRepository) error {
	pl, ok := repo.(storage.Preloader)
	if !ok {
		return nil
	}

	var bar *uiprogress.Bar
	uiprogress.Start()
	name := ""

	err := pl.Preload(func(total int, current string) {
		if bar == nil {
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
			bar.AppendFunc(func(b *uiprogress.Bar) string {
				return name
			})
		}
		name = current
		bar.Incr()
	})

	uiprogress.Stop()
	return err
}
