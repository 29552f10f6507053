package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Render.Format != "all" {
		t.Errorf("unexpected default format: %s", c.Render.Format)
	}
	if !c.Render.Color || !c.Render.Prefix {
		t.Error("color and prefix should default to on")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateFormat(t *testing.T) {
	c := DefaultConfig()
	c.Render.Format = "xml"
	if err := c.Validate(); err == nil {
		t.Error("expected invalid format error")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ablescan.yaml")
	content := `
lexicon:
  path: /data/lexicon
docs:
  path: /data/docs
render:
  format: lemma
  color: false
  prefix: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Lexicon.Path != "/data/lexicon" {
		t.Errorf("lexicon path: %s", c.Lexicon.Path)
	}
	if c.Docs.Path != "/data/docs" {
		t.Errorf("docs path: %s", c.Docs.Path)
	}
	if c.Render.Format != "lemma" || c.Render.Color || !c.Render.Prefix {
		t.Errorf("render config: %+v", c.Render)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Lexicon.Path = "/base/lexicon"

	other := DefaultConfig()
	other.Docs.Path = "/other/docs"
	other.Render.Format = "part"

	base.Merge(other)

	if base.Lexicon.Path != "/base/lexicon" {
		t.Errorf("merge clobbered lexicon path: %s", base.Lexicon.Path)
	}
	if base.Docs.Path != "/other/docs" {
		t.Errorf("merge missed docs path: %s", base.Docs.Path)
	}
	if base.Render.Format != "part" {
		t.Errorf("merge missed format: %s", base.Render.Format)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	c := DefaultConfig()
	c.Lexicon.Path = "/save/lexicon"
	if err := c.SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	read, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if read.Lexicon.Path != "/save/lexicon" {
		t.Errorf("round trip failed: %s", read.Lexicon.Path)
	}
}
