package query

import (
	"fmt"
	"strings"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/match"
	"github.com/ablescan/ablescan/render"
	"github.com/ablescan/ablescan/search"
	"github.com/ablescan/ablescan/storage"

	"github.com/c-bata/go-prompt"
)

// batchSize is the number of candidates fetched from the repository per
// round trip.
const batchSize = 500

// limit caps the candidates examined per lemma to avoid a hang on very
// large corpora.
const limit = 2000

type Handler struct {
	DocRepo  storage.DocRepository
	Lexicon  *lexicon.Lexicon
	Renderer *render.Renderer
}

func NewHandler(dr storage.DocRepository, lex *lexicon.Lexicon, r *render.Renderer) *Handler {
	return &Handler{
		DocRepo:  dr,
		Lexicon:  lex,
		Renderer: r,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	lemmas := h.Lexicon.Lemmas()

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔍 ", h.completer(lemmas),
			prompt.OptionTitle("ablescan query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}

		lemma := strings.TrimSpace(strings.ToLower(in))
		if lemma == "" {
			continue
		}

		history = append(history, in)

		h.printLists(lemma)

		// Fetch doc names for rendering
		docList, err := h.DocRepo.List("")
		if err != nil {
			fmt.Printf("Error listing docs: %v\n", err)
			continue
		}
		for _, d := range docList {
			h.Renderer.AddDocName(d.Id, d.Title)
		}

		s := search.New(h.Lexicon, h.DocRepo)

		var results []*match.SentenceMatch
		cursor := storage.Cursor(0)
		fetched := 0
		for {
			newCursor, err := s.Sentences(lemma, cursor, batchSize, func(sm *match.SentenceMatch) error {
				fetched++
				results = append(results, sm)
				return nil
			})
			if err != nil {
				fmt.Printf("Error fetching candidates: %v\n", err)
				break
			}
			if cursor == newCursor {
				break // No more progress
			}

			if fetched >= limit {
				break
			}
			cursor = newCursor
		}

		h.Renderer.Match(results)
	}
}

// printLists shows the lists containing the lemma, with its side-table
// data when present.
func (h *Handler) printLists(lemma string) {
	var member []string
	for _, name := range lexicon.ListNames() {
		if h.Lexicon.List(name).Has(lemma) {
			member = append(member, name)
		}
	}

	if len(member) == 0 {
		fmt.Printf("      ∅ %s is not in any list\n", lemma)
		return
	}

	fmt.Printf("      📋 %s: %s\n", lemma, strings.Join(member, ", "))

	if entry, ok := h.Lexicon.Lookup(lemma); ok {
		if len(entry.Alternatives) > 0 {
			fmt.Printf("      ♻  alternatives: %s\n", strings.Join(entry.Alternatives, ", "))
		}
		if entry.Example != "" {
			fmt.Printf("      💬 example: %s\n", entry.Example)
		}
	}
}

func (h *Handler) completer(lemmas []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		if "" == befCursor {
			return s
		}

		for _, lemma := range lemmas {
			if !strings.HasPrefix(lemma, befCursor) {
				continue
			}

			desc := ""
			if entry, ok := h.Lexicon.Lookup(lemma); ok && len(entry.Alternatives) > 0 {
				desc = "♻ " + strings.Join(entry.Alternatives, ", ")
			}
			s = append(s, prompt.Suggest{Text: lemma, Description: desc})
		}

		return s
	}
}
