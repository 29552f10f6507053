package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataFile is the side-table file name inside a lexicon directory.
const DataFile = "data.json"

// Store is a filesystem-backed lexicon repository: one plain-text file per
// word list (one lemma per line) plus an optional JSON side table.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the four word lists and, if present, the side table.
func (s *Store) Load() (*Lexicon, error) {
	lex := New()

	for _, name := range ListNames() {
		lemmas, err := ReadList(s.path(name))
		if err != nil {
			return nil, fmt.Errorf("lexicon list %s: %w", name, err)
		}
		set := lex.List(name)
		for _, l := range lemmas {
			set.Add(l)
		}
	}

	entries, err := readData(filepath.Join(s.dir, DataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return lex, nil
		}
		return nil, fmt.Errorf("lexicon side table: %w", err)
	}
	lex.SetData(entries)

	return lex, nil
}

// Write persists one named list, sorted, one lemma per line.
func (s *Store) Write(name string, set Set) error {
	if set == nil {
		return fmt.Errorf("unknown lexicon list: %s", name)
	}

	var b strings.Builder
	for _, lemma := range set.Lemmas() {
		b.WriteString(lemma)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path(name), []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("lexicon list %s: %w", name, err)
	}

	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// ReadList reads a plain-text lemma list: one lemma per line, lowercased and
// trimmed. Blank lines and '#' comment lines are skipped.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lemmas []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lemmas = append(lemmas, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lemmas, nil
}

func readData(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	return entries, nil
}
