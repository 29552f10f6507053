package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
)

const (
	partialOffset = 6
	Defaultformat = "all"
)

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
	//Yellow256  = "\033[1;38;5;202m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Red256    = "\033[1;38;5;160m"
	ClearLine = "\033[K"
)

func SupportedFormats() []string {
	return []string{"all", "part", "lemma"}
}

// Renderer prints matched sentences to a terminal, with the flagged tokens
// highlighted.
type Renderer struct {
	Out io.Writer

	HasColor bool

	HasPrefix bool

	PrefixFunc func(*match.SentenceMatch) string

	// Format determines the format of the sentence
	//
	// all: print the whole sentence
	// part: print the surrounding of the matches in the sentence, cut the rest.
	// lemma: print only the matched lemmas
	Format string

	DocNames map[int]string
}

func NewRenderer() *Renderer {
	return &Renderer{
		Out:      os.Stdout,
		Format:   Defaultformat,
		DocNames: map[int]string{},
	}
}

func (r *Renderer) AddDocName(docId int, name string) {
	r.DocNames[docId] = name
}

// Match renders the matched sentences in the configured format.
func (r *Renderer) Match(results []*match.SentenceMatch) {
	for _, sm := range results {
		matched := sm.Tokens()

		prefix := r.buildPrefix(sm)

		var text string
		switch r.Format {
		case "all":
			text = r.sentence(sm.Sentence.Tokens, matched)
		case "part":
			text = r.syntagma(sm.Sentence.Tokens, matched)
		case "lemma":
			text = r.lemma(matched)
		}

		fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.ReplaceAll(text, "\n", " "))
	}
}

// Sentence prints one plain sentence with a prefix, nothing highlighted.
func (r *Renderer) Sentence(s []sent.Token, prefix string) {
	text := r.sentence(s, []sent.Token{})
	fmt.Fprintf(r.Out, "%s%s\n", prefix, strings.ReplaceAll(text, "\n", " "))
}

func (r *Renderer) sentence(sentence, matches []sent.Token) string {
	var str strings.Builder
	first := true
	var lastIdx, lastLen int
	for _, token := range sentence {
		l := len([]rune(token.Text))
		if first {
			str.WriteString(colorToken(token, matches, r.HasColor))
			first = false
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		// multi-part tokens share the same text and idx in the parser
		// export; a zero diff skips the duplicate rendering.
		diff := token.Idx - lastIdx

		switch {
		case diff > 0:
			if pad := diff - lastLen; pad > 0 {
				str.WriteString(strings.Repeat(" ", pad))
			}
			str.WriteString(colorToken(token, matches, r.HasColor))
		case token.Idx == 0:
			// tokens without offsets: plain space joining
			str.WriteString(" ")
			str.WriteString(colorToken(token, matches, r.HasColor))
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return str.String()
}

func (r *Renderer) syntagma(sentence, matches []sent.Token) string {
	// if no matches, print the whole sentence
	if len(matches) == 0 {
		return r.sentence(sentence, matches)
	}

	firstMatchIndex := matches[0].Index
	for _, mt := range matches {
		if mt.Index < firstMatchIndex {
			firstMatchIndex = mt.Index
		}
	}

	lastMatchIndex := matches[0].Index
	for _, mt := range matches {
		if mt.Index > lastMatchIndex {
			lastMatchIndex = mt.Index
		}
	}

	lastTokenIndex := len(sentence) - 1

	syntagmaFirstIdx := 0
	syntagmaLastIdx := lastTokenIndex

	if firstMatchIndex > partialOffset {
		syntagmaFirstIdx = firstMatchIndex - partialOffset
	}

	if lastTokenIndex-lastMatchIndex > partialOffset {
		syntagmaLastIdx = lastMatchIndex + partialOffset
	}

	return r.sentence(sentence[syntagmaFirstIdx:syntagmaLastIdx+1], matches)
}

// lemma renders only the matched tokens (the lemma field)
func (r *Renderer) lemma(matches []sent.Token) string {
	matchedWords := []string{}
	for _, t := range matches {
		matchedWords = append(matchedWords, t.Lemma)
	}

	return strings.Join(matchedWords, " ")
}

func colorToken(token sent.Token, matches []sent.Token, hasColor bool) string {
	if !hasColor {
		return token.Text
	}

	for _, mt := range matches {
		if mt.Index == token.Index {
			return Red256 + token.Text + Off
		}
	}

	return token.Text
}

func (r *Renderer) buildPrefix(sm *match.SentenceMatch) string {
	if !r.HasPrefix {
		return PrefixFuncEmpty(sm)
	}

	if r.PrefixFunc != nil {
		return r.PrefixFunc(sm)
	}

	// Default
	return fmt.Sprintf("[%37s %2d %5d:%2d] ✍  ", r.title(sm.Sentence.DocId), sm.Sentence.DocId, sm.Sentence.Id, len(sm.Matches))
}

func PrefixFuncEmpty(sm *match.SentenceMatch) string {
	return ""
}

func PrefixFuncIconHand(sm *match.SentenceMatch) string {
	return fmt.Sprintf("%2d ✍  ", sm.Sentence.Id)
}

func (r *Renderer) title(docId int) string {
	title := r.DocNames[docId]
	l := len(title)
	var part string
	if l <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}

	return Grey256 + part + Off
}

// NextFormat sets the Renderer Format option to a different one, following
// the SupportedFormats() order.
func (r *Renderer) NextFormat() {

	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			switch i {
			case len(supported) - 1:
				r.Format = supported[0]
			default:
				r.Format = supported[i+1]
			}

			break
		}
	}
}

func (r *Renderer) NextPrefix() {

	// toggle
	r.HasPrefix = !r.HasPrefix
}
