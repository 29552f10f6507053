package sentence

import (
	"reflect"
	"testing"
)

// "must be able to move your hands repeatedly", parse as produced by spacy
// en_core_web_sm.
func handsTokens() []Token {
	return []Token{
		{Index: 0, Text: "must", Lemma: "must", Pos: "AUX", Dep: "aux", Head: 1, Idx: 0},
		{Index: 1, Text: "be", Lemma: "be", Pos: "AUX", Dep: "ROOT", Head: 1, Idx: 5},
		{Index: 2, Text: "able", Lemma: "able", Pos: "ADJ", Dep: "acomp", Head: 1, Idx: 8},
		{Index: 3, Text: "to", Lemma: "to", Pos: "PART", Dep: "aux", Head: 4, Idx: 13},
		{Index: 4, Text: "move", Lemma: "move", Pos: "VERB", Dep: "xcomp", Head: 2, Idx: 16},
		{Index: 5, Text: "your", Lemma: "your", Pos: "PRON", Dep: "poss", Head: 6, Idx: 21},
		{Index: 6, Text: "hands", Lemma: "hand", Pos: "NOUN", Dep: "dobj", Head: 4, Idx: 26},
		{Index: 7, Text: "repeatedly", Lemma: "repeatedly", Pos: "ADV", Dep: "advmod", Head: 4, Idx: 32},
	}
}

func TestDeriveChildren(t *testing.T) {
	s := New(0, handsTokens())

	tests := []struct {
		token int
		want  []int
	}{
		{1, []int{0, 2}},
		{2, []int{4}},
		{4, []int{3, 6, 7}},
		{6, []int{5}},
		{0, nil},
		{7, nil},
	}

	for _, tc := range tests {
		got := s.Children(tc.token)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Children(%d) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestDeriveRightEdge(t *testing.T) {
	s := New(0, handsTokens())

	tests := []struct {
		token int
		want  int
	}{
		{1, 7}, // root spans the whole sentence
		{4, 7}, // "move" includes "repeatedly"
		{6, 6}, // "hands" has only a left child ("your")
		{5, 5},
		{7, 7},
	}

	for _, tc := range tests {
		if got := s.RightEdge(tc.token); got != tc.want {
			t.Errorf("RightEdge(%d) = %d, want %d", tc.token, got, tc.want)
		}
	}
}

func TestDeriveRightEdgeNestedModifier(t *testing.T) {
	// "lift boxes of bricks": "bricks" hangs off "of" which hangs off
	// "boxes", so the right edge of "boxes" crosses two levels.
	tokens := []Token{
		{Index: 0, Text: "lift", Lemma: "lift", Pos: "VERB", Dep: "ROOT", Head: 0},
		{Index: 1, Text: "boxes", Lemma: "box", Pos: "NOUN", Dep: "dobj", Head: 0},
		{Index: 2, Text: "of", Lemma: "of", Pos: "ADP", Dep: "prep", Head: 1},
		{Index: 3, Text: "bricks", Lemma: "brick", Pos: "NOUN", Dep: "pobj", Head: 2},
	}
	s := New(0, tokens)

	if got := s.RightEdge(1); got != 3 {
		t.Errorf("RightEdge(1) = %d, want 3", got)
	}
	if got := s.RightEdge(0); got != 3 {
		t.Errorf("RightEdge(0) = %d, want 3", got)
	}
}

func TestDeriveEmptySentence(t *testing.T) {
	s := New(0, nil)
	if len(s.Tokens) != 0 {
		t.Fatalf("expected no tokens")
	}
}

func TestHead(t *testing.T) {
	s := New(0, handsTokens())
	if got := s.Head(6); got.Text != "move" {
		t.Errorf("Head(6).Text = %q, want %q", got.Text, "move")
	}
}

func TestTextWithOffsets(t *testing.T) {
	s := New(0, handsTokens())

	if got := s.Text(4, 7); got != "move your hands" {
		t.Errorf("Text(4, 7) = %q, want %q", got, "move your hands")
	}

	if got := s.Text(0, len(s.Tokens)); got != "must be able to move your hands repeatedly" {
		t.Errorf("Text(all) = %q", got)
	}
}

func TestTextWithoutOffsets(t *testing.T) {
	tokens := []Token{
		{Index: 0, Text: "grip"},
		{Index: 1, Text: "the"},
		{Index: 2, Text: "tool"},
	}
	s := New(0, tokens)

	if got := s.Text(0, 3); got != "grip the tool" {
		t.Errorf("Text(0, 3) = %q, want %q", got, "grip the tool")
	}
}

func TestTextBoundsClamped(t *testing.T) {
	s := New(0, handsTokens())

	if got := s.Text(6, 100); got != "hands repeatedly" {
		t.Errorf("Text(6, 100) = %q, want %q", got, "hands repeatedly")
	}
	if got := s.Text(3, 3); got != "" {
		t.Errorf("Text(3, 3) = %q, want empty", got)
	}
}
