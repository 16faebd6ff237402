package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "page.md"), "# Hello & World\n\nSome *text*.\n")

	out, err := run(t, dir, "", "render", "page.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Hello &amp; World</title>",
		"<main>",
		"<em>text</em>",
		`<meta name="generator" content="funhtml `,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStdin(t *testing.T) {
	out, err := run(t, t.TempDir(), "plain paragraph\n", "render", "--title", "Notes", "--lang", "de")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`<html lang="de">`, "<title>Notes</title>", "<p>plain paragraph</p>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "post.md"), "---\ntitle: From Front Matter\nlang: fr\ndescription: A post\n---\n# Heading\n")

	out, err := run(t, dir, "", "render", "post.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`<html lang="fr">`,
		"<title>From Front Matter</title>",
		`<meta name="description" content="A post">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "page.md"), "# Out\n")

	out, err := run(t, dir, "", "render", "page.md", "-o", "page.html", "--pretty")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Wrote page.html") {
		t.Errorf("output = %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, "page.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  <head>\n") {
		t.Errorf("pretty output not indented:\n%s", data)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		args  []string
		code  string
	}{
		{
			name: "missing file",
			args: []string{"render", "missing.md"},
			code: "F200",
		},
		{
			name: "too many arguments",
			args: []string{"render", "a.md", "b.md"},
			code: "F500",
		},
		{
			name:  "bad front matter",
			files: map[string]string{"bad.md": "---\ntitle: [unclosed\n---\nbody\n"},
			args:  []string{"render", "bad.md"},
			code:  "F203",
		},
		{
			name:  "unwritable output",
			files: map[string]string{"ok.md": "# ok\n"},
			args:  []string{"render", "ok.md", "-o", filepath.Join("missing", "dir", "out.html")},
			code:  "F202",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, filepath.Join(dir, name), content)
			}
			_, err := run(t, dir, "", tt.args...)
			if got := errorCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}
