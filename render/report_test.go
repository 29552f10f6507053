package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ablescan/ablescan/lexicon"
	"github.com/ablescan/ablescan/match"
	sent "github.com/ablescan/ablescan/sentence"
)

func phraseResult() *match.SentenceMatch {
	return &match.SentenceMatch{
		Sentence: sent.Sentence{Id: 0},
		Matches: []match.Match{
			{
				Kind: match.KindPhrase, Text: "move your hands", Lemma: "move",
				Start: 4, End: 7,
				Data: &lexicon.Entry{
					Lemma:        "move",
					Alternatives: []string{"transport"},
					Example:      "Transports boxes between stations.",
				},
			},
		},
	}
}

func TestReportRendererHeader(t *testing.T) {
	var buf bytes.Buffer
	r := NewReportRenderer(&buf)
	r.Render([]*match.SentenceMatch{phraseResult()})

	out := buf.String()
	if !strings.Contains(out, "Found 1 instances of ableist language.") {
		t.Errorf("missing count header:\n%s", out)
	}
	if !strings.Contains(out, "Match #1") {
		t.Errorf("missing match number:\n%s", out)
	}
	if !strings.Contains(out, "PHRASE: move your hands") {
		t.Errorf("missing phrase:\n%s", out)
	}
	if !strings.Contains(out, "POSITION: 4:7") {
		t.Errorf("missing phrase position:\n%s", out)
	}
	if !strings.Contains(out, "ALTERNATIVES: transport") {
		t.Errorf("missing alternatives:\n%s", out)
	}
}

func TestReportRendererEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewReportRenderer(&buf)
	r.Render(nil)

	if got := buf.String(); got != "Found 0 instances of ableist language.\n" {
		t.Errorf("unexpected empty report: %q", got)
	}
}

func TestReportRendererSelectedProperties(t *testing.T) {
	var buf bytes.Buffer
	r := NewReportRenderer(&buf)
	r.Properties = []string{"lemma", "severity"}
	r.Render([]*match.SentenceMatch{phraseResult()})

	out := buf.String()
	if !strings.Contains(out, "LEMMA: move") {
		t.Errorf("missing lemma:\n%s", out)
	}
	// requested but unresolvable properties are marked, not dropped
	if !strings.Contains(out, "SEVERITY: "+match.NotAvailable) {
		t.Errorf("missing not-available marker:\n%s", out)
	}
	if strings.Contains(out, "ALTERNATIVES") {
		t.Errorf("unselected property printed:\n%s", out)
	}
}

func TestReportRendererTokenPosition(t *testing.T) {
	sm := &match.SentenceMatch{
		Matches: []match.Match{
			{Kind: match.KindToken, Text: "lift", Lemma: "lift", Start: 2, End: 3},
		},
	}

	var buf bytes.Buffer
	r := NewReportRenderer(&buf)
	r.Properties = []string{"position"}
	r.Render([]*match.SentenceMatch{sm})

	if !strings.Contains(buf.String(), "POSITION: 2") {
		t.Errorf("token match must report a single index:\n%s", buf.String())
	}
}

func TestRendererSentenceHighlight(t *testing.T) {
	sm := &match.SentenceMatch{
		Sentence: sent.New(0, []sent.Token{
			{Index: 0, Text: "must"},
			{Index: 1, Text: "lift"},
			{Index: 2, Text: "boxes"},
		}),
		Matches: []match.Match{
			{Kind: match.KindToken, Text: "lift", Lemma: "lift", Start: 1, End: 2},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.HasColor = true
	r.Format = "all"
	r.Match([]*match.SentenceMatch{sm})

	out := buf.String()
	if !strings.Contains(out, Red256+"lift"+Off) {
		t.Errorf("matched token not highlighted: %q", out)
	}
	if !strings.Contains(out, "must") || !strings.Contains(out, "boxes") {
		t.Errorf("sentence context missing: %q", out)
	}
}

func TestRendererLemmaFormat(t *testing.T) {
	sm := &match.SentenceMatch{
		Sentence: sent.New(0, []sent.Token{
			{Index: 0, Text: "must", Lemma: "must"},
			{Index: 1, Text: "lift", Lemma: "lift"},
		}),
		Matches: []match.Match{
			{Kind: match.KindToken, Text: "lift", Lemma: "lift", Start: 1, End: 2},
		},
	}

	var buf bytes.Buffer
	r := NewRenderer()
	r.Out = &buf
	r.Format = "lemma"
	r.Match([]*match.SentenceMatch{sm})

	if got := strings.TrimSpace(buf.String()); got != "lift" {
		t.Errorf("lemma format = %q, want %q", got, "lift")
	}
}
