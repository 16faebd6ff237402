package main

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestURLPath(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "/"},
		{"about.md", "/about"},
		{"guide/intro.md", "/guide/intro"},
		{"guide/index.md", "/guide/"},
		{"notes.markdown", "/notes"},
	}
	for _, tt := range tests {
		if got := urlPath(tt.rel); got != tt.want {
			t.Errorf("urlPath(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "index.html"},
		{"guide/intro.md", "guide/intro.html"},
		{"notes.markdown", "notes.html"},
	}
	for _, tt := range tests {
		if got := objectKey(tt.rel); got != tt.want {
			t.Errorf("objectKey(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}

func TestTitleFromName(t *testing.T) {
	tests := map[string]string{
		"getting-started.md":   "getting started",
		"dir/release_notes.md": "release notes",
		"stdin":                "stdin",
	}
	for name, want := range tests {
		if got := titleFromName(name); got != want {
			t.Errorf("titleFromName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.md"), "# Home")
	writeFile(t, filepath.Join(dir, "guide", "intro.md"), "# Intro")
	writeFile(t, filepath.Join(dir, "guide", "image.png"), "png")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "README.md"), "# skip")

	got, err := markdownFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"guide/intro.md", "index.md"}
	if !slices.Equal(got, want) {
		t.Errorf("markdownFiles = %v, want %v", got, want)
	}
}

func TestMarkdownFilesNotDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page.md")
	writeFile(t, file, "# Page")

	_, err := markdownFiles(file)
	if got := errorCode(err); got != "F301" {
		t.Errorf("code = %q, want F301", got)
	}
}
