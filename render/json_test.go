package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render(nil)

	var results []*match.SentenceMatch
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestJSONRendererRenderOneResult(t *testing.T) {
	sm := &match.SentenceMatch{
		Sentence: sent.Sentence{
			Id:    5,
			DocId: 1,
			Tokens: []sent.Token{
				{Index: 0, Lemma: "lift", Text: "lift"},
				{Index: 1, Lemma: "box", Text: "boxes"},
			},
		},
		Matches: []match.Match{
			{Kind: match.KindToken, Text: "lift", Lemma: "lift", Start: 0, End: 1},
		},
	}

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	r.Render([]*match.SentenceMatch{sm})

	var results []match.SentenceMatch
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	if results[0].Sentence.Id != 5 {
		t.Errorf("expected sentence id 5, got %d", results[0].Sentence.Id)
	}

	if len(results[0].Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results[0].Matches))
	}

	if results[0].Matches[0].Kind != match.KindToken {
		t.Errorf("expected kind %s, got %s", match.KindToken, results[0].Matches[0].Kind)
	}
}
