package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	sent "github.com/ablescan/ablescan/sentence"
	"github.com/ablescan/ablescan/storage"
)

// DocStore reads parsed docs from a directory of JSON files, one doc per
// file. Docs are cached in memory after Preload.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []sent.Doc
	loaded bool
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document handler. The doc list (titles,
// ids) is built immediately; contents load on Preload.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	var docs []sent.Doc
	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: file.Name(),
		})
		idx++
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
	}, nil
}

// Preload loads all doc contents into memory.
// The callback is called for each file loaded (total, current name).
func (h *DocStore) Preload(cb func(total int, name string)) error {
	if h.loaded {
		return nil
	}

	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i]

		if cb != nil {
			cb(total, doc.Title)
		}

		full, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return err
		}

		doc.Labels = full.Labels
		doc.Sentences = full.Sentences
		for j := range doc.Sentences {
			doc.Sentences[j].Id = j
			doc.Sentences[j].DocId = doc.Id
		}
	}

	h.loaded = true
	return nil
}

func (h *DocStore) List(labelMatch string) ([]sent.Doc, error) {
	if labelMatch == "" {
		return h.metadata(h.docs), nil
	}

	var docs []sent.Doc
	for _, doc := range h.docs {
		for _, l := range doc.Labels {
			if strings.Contains(l, labelMatch) {
				docs = append(docs, doc)
				break
			}
		}
	}

	return h.metadata(docs), nil
}

func (h *DocStore) metadata(docs []sent.Doc) []sent.Doc {
	meta := make([]sent.Doc, 0, len(docs))
	for _, doc := range docs {
		meta = append(meta, sent.Doc{Id: doc.Id, Title: doc.Title, Labels: doc.Labels})
	}
	return meta
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	if !h.loaded {
		if err := h.Preload(nil); err != nil {
			return sent.Doc{}, err
		}
	}

	return h.docs[id], nil
}

// FindCandidates scans the in-memory sentences for those containing ALL
// given lemmas. The cursor counts consumed sentences across all docs.
func (h *DocStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(sent.Sentence) error) (storage.Cursor, error) {
	if !h.loaded {
		if err := h.Preload(nil); err != nil {
			return after, err
		}
	}

	var pos storage.Cursor
	emitted := 0
	cursor := after

	for _, doc := range h.docs {
		for _, sentence := range doc.Sentences {
			pos++
			if pos <= after {
				continue
			}
			if emitted >= limit {
				return cursor, nil
			}

			cursor = pos
			if !hasLemmas(sentence, lemmas) {
				continue
			}

			if err := onCandidate(sentence); err != nil {
				return cursor, err
			}
			emitted++
		}
	}

	return cursor, nil
}

func hasLemmas(s sent.Sentence, lemmas []string) bool {
	for _, lemma := range lemmas {
		found := false
		for _, t := range s.Tokens {
			if t.Lemma == lemma {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	seen := map[string]bool{}
	for _, doc := range h.docs {
		for _, l := range doc.Labels {
			if pattern != "" && !strings.Contains(l, pattern) {
				continue
			}
			seen[l] = true
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return labels, nil
}

// Write persists a doc as a JSON file named after its title.
func (h *DocStore) Write(doc sent.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc has no title")
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	title := doc.Title
	if filepath.Ext(title) != ".json" {
		title += ".json"
	}

	path := filepath.Join(h.docDir, title)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write doc %s: %w", path, err)
	}

	doc.Id = len(h.docs)
	h.docs = append(h.docs, doc)
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
