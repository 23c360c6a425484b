package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"
)

func TestReadDefaults(t *testing.T) {
	c, err := Read("")
	if err != nil {
		t.Fatalf("Read() error = %+v", err)
	}

	if c.API.URL != "http://localhost:8000" {
		t.Errorf("API.URL = %q", c.API.URL)
	}

	if c.API.Limits.ArticlesPerQuery != 50 {
		t.Errorf("Limits.ArticlesPerQuery = %d, want 50", c.API.Limits.ArticlesPerQuery)
	}

	if c.API.Limits.BreakingNews != 10 {
		t.Errorf("Limits.BreakingNews = %d, want 10", c.API.Limits.BreakingNews)
	}

	if c.Timeout.Converted.Connect != time.Second {
		t.Errorf("Timeout.Converted.Connect = %v, want 1s", c.Timeout.Converted.Connect)
	}

	if c.UI.Converted.SearchDebounce != 500*time.Millisecond {
		t.Errorf("UI.Converted.SearchDebounce = %v, want 500ms", c.UI.Converted.SearchDebounce)
	}

	if c.UI.MinSearchRunes != 2 {
		t.Errorf("UI.MinSearchRunes = %d, want 2", c.UI.MinSearchRunes)
	}

	if c.Log.Converted.Writer == nil {
		t.Error("Log.Converted.Writer not set")
	}
}

func TestReadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akhbar.toml")
	data := `
[api]
	url = "https://news.example.com/"
[timeout]
	read-write = "10s"
[ui]
	search-debounce = "250ms"
`
	if err := ioutil.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %+v", err)
	}

	if c.API.URL != "https://news.example.com/" {
		t.Errorf("API.URL = %q", c.API.URL)
	}

	if c.Timeout.Converted.ReadWrite != 10*time.Second {
		t.Errorf("Timeout.Converted.ReadWrite = %v, want 10s", c.Timeout.Converted.ReadWrite)
	}

	if c.Timeout.Converted.Connect != time.Second {
		t.Errorf("Timeout.Converted.Connect = %v, want default 1s", c.Timeout.Converted.Connect)
	}

	if c.UI.Converted.SearchDebounce != 250*time.Millisecond {
		t.Errorf("UI.Converted.SearchDebounce = %v, want 250ms", c.UI.Converted.SearchDebounce)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Read() expected an error for a missing file")
	}
}

func TestReadBadDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "akhbar.toml")
	data := `
[timeout]
	connect = "soon"
	read-write = "later"
[ui]
	search-debounce = "whenever"
`
	if err := ioutil.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %+v", err)
	}

	if c.Timeout.Converted.Connect != time.Second {
		t.Errorf("Timeout.Converted.Connect = %v, want fallback 1s", c.Timeout.Converted.Connect)
	}

	if c.Timeout.Converted.ReadWrite != 5*time.Second {
		t.Errorf("Timeout.Converted.ReadWrite = %v, want fallback 5s", c.Timeout.Converted.ReadWrite)
	}

	if c.UI.Converted.SearchDebounce != 500*time.Millisecond {
		t.Errorf("UI.Converted.SearchDebounce = %v, want fallback 500ms", c.UI.Converted.SearchDebounce)
	}
}
