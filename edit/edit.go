package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ablescan/ablescan/lexicon"

	prompt "github.com/c-bata/go-prompt"
)

const (
	actionAdd    = 1
	actionDelete = 0
)

// Handler is an interactive curator for the lexicon word lists. An input
// line "<list> <lemma>" adds the lemma to the list, a trailing "/" on the
// lemma deletes it instead.
type Handler struct {
	Lexicon *lexicon.Lexicon
	Store   *lexicon.Store
}

func NewHandler(lex *lexicon.Lexicon, store *lexicon.Store) *Handler {
	return &Handler{
		Lexicon: lex,
		Store:   store,
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔑 Ctrl+L: clear, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      📋 ", h.completer(),
			prompt.OptionTitle("ablescan edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)
		listName, lemma, action, err := h.parse(in)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		set := h.Lexicon.List(listName)

		if action == actionAdd {
			if set.Has(lemma) {
				fmt.Printf("❌ %s\n", "Lemma already in list.")
				continue
			}

			set.Add(lemma)

		} else {

			if !set.Has(lemma) {
				fmt.Printf("❌ %s\n", "Lemma is not in the list.")
				continue
			}

			set.Del(lemma)
		}

		if werr := h.Store.Write(listName, set); werr != nil {
			return werr
		}
	}
}

func (h *Handler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {

		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()

		// Only one character in line
		if "" == befCursor {
			return s
		}

		tokens := strings.Split(befCursor, " ")

		if len(tokens) == 1 {
			for _, name := range lexicon.ListNames() {
				if strings.HasPrefix(name, befCursor) {
					s = append(s, prompt.Suggest{Text: name, Description: ""})
				}
			}

			return s
		}

		// First token must be a known list
		listName := tokens[0]
		known := false
		for _, name := range lexicon.ListNames() {
			if name == listName {
				known = true
				break
			}
		}
		if !known {
			return s
		}

		rest := strings.Join(tokens[1:], " ")
		if rest == "" {
			return s
		}

		for _, lemma := range h.Lexicon.List(listName).Lemmas() {
			if strings.HasPrefix(lemma, rest) {
				// Do not show suggestion at the end of the text
				if len(rest) < len(lemma) {
					s = append(s, prompt.Suggest{Text: lemma, Description: ""})
				}
			}
		}

		return s
	}
}

func (h *Handler) parse(in string) (string, string, int, error) {

	tokens := strings.Fields(in)

	action := actionAdd
	if len(tokens) == 0 {
		return "", "", action, errors.New("No list given to refine")
	}

	lastToken := tokens[len(tokens)-1]
	if strings.HasSuffix(lastToken, "/") {
		action = actionDelete
		tokens[len(tokens)-1] = lastToken[:len(lastToken)-1]
	}

	// First token must be a valid list name
	listName := ""
	for _, name := range lexicon.ListNames() {
		if strings.HasPrefix(name, tokens[0]) {
			listName = name
			break
		}
	}

	if listName == "" {
		return "", "", action, errors.New("There is no such list: " + tokens[0] + ".")
	}

	if len(tokens) < 2 {
		return "", "", action, errors.New("No lemma given.")
	}

	lemma := strings.ToLower(tokens[1])
	if lemma == "" {
		return "", "", action, errors.New("No lemma given.")
	}

	return listName, lemma, action, nil
}
