package sentence

// Token represents a word of the sentence, with POS and dependency metadata.
type Token struct {
	Id   int    `json:"id"`
	Head int    `json:"head"`
	Pos  string `json:"pos"`
	Dep  string `json:"dep"`

	// A string containing detailed POS data
	Tag string `json:"tag"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// Sentence is one parsed unit of text: an ordered token sequence plus the
// dependency structure derived from the Head fields.
//
// The Head field of a token holds the sentence index of its syntactic head.
// The root token has itself as head. children and rightEdge are derived once
// and never recomputed.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc_id,omitempty"`
	Tokens []Token `json:"tokens"`

	children  [][]int
	rightEdge []int
}

// New builds a Sentence and derives its dependency structure.
func New(id int, tokens []Token) Sentence {
	s := Sentence{Id: id, Tokens: tokens}
	s.Derive()
	return s
}

// Derive computes the children lists and the rightmost-descendant index of
// every token. Safe to call more than once; later calls are no-ops.
func (s *Sentence) Derive() {
	if s.rightEdge != nil {
		return
	}

	n := len(s.Tokens)
	s.children = make([][]int, n)
	s.rightEdge = make([]int, n)

	for i, t := range s.Tokens {
		s.rightEdge[i] = i
		if t.Head == i || t.Head < 0 || t.Head >= n {
			continue
		}
		s.children[t.Head] = append(s.children[t.Head], i)
	}

	// Propagate each token index up its head chain. The walk is bounded by
	// the tree depth; the rightEdge check also breaks head cycles in
	// malformed input, since a propagated index never shrinks.
	for i := range s.Tokens {
		at := i
		for {
			head := s.Tokens[at].Head
			if head == at || head < 0 || head >= n {
				break
			}
			if s.rightEdge[head] >= i {
				break
			}
			s.rightEdge[head] = i
			at = head
		}
	}
}

// Children returns the indices of the tokens that depend on token i,
// in sentence order.
func (s *Sentence) Children(i int) []int {
	s.Derive()
	return s.children[i]
}

// RightEdge returns the highest sentence index among token i and all its
// transitive syntactic descendants.
func (s *Sentence) RightEdge(i int) int {
	s.Derive()
	return s.rightEdge[i]
}

// Head returns the head token of token i.
func (s *Sentence) Head(i int) Token {
	return s.Tokens[s.Tokens[i].Head]
}

// Text reconstructs the text covered by tokens [start, end).
//
// When the tokens carry original character offsets (Idx), the original
// spacing is restored, and multi-part tokens sharing the same offset are
// emitted only once. Tokens without offsets fall back
// to single-space joining.
func (s *Sentence) Text(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}
	if start >= end {
		return ""
	}

	covered := s.Tokens[start:end]
	if !hasOffsets(covered) {
		var out string
		for i, t := range covered {
			if i > 0 {
				out += " "
			}
			out += t.Text
		}
		return out
	}

	var str []byte
	lastIdx := -1
	lastLen := 0
	for _, token := range covered {
		l := len([]rune(token.Text))
		if lastIdx == -1 {
			str = append(str, token.Text...)
			lastIdx = token.Idx
			lastLen = l
			continue
		}

		diff := token.Idx - lastIdx
		if diff > 0 {
			for i := 0; i < diff-lastLen; i++ {
				str = append(str, ' ')
			}
			str = append(str, token.Text...)
		}

		lastIdx = token.Idx
		lastLen = l
	}

	return string(str)
}

func hasOffsets(tokens []Token) bool {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Idx > tokens[0].Idx {
			return true
		}
	}
	return false
}

// Doc is a parsed document: the output of an external NLP pipeline (spacy,
// stanza) exported as JSON, one token table per sentence.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title,omitempty"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc
