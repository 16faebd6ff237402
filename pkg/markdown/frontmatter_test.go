package markdown

import (
	"errors"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantFM   FrontMatter
		wantBody string
	}{
		{
			name:     "no front matter",
			src:      "# Title\n",
			wantBody: "# Title\n",
		},
		{
			name:     "title and lang",
			src:      "---\ntitle: Getting Started\nlang: de\n---\n# Hi\n",
			wantFM:   FrontMatter{Title: "Getting Started", Lang: "de"},
			wantBody: "# Hi\n",
		},
		{
			name:     "crlf",
			src:      "---\r\ndescription: Intro\r\n---\r\nbody",
			wantFM:   FrontMatter{Description: "Intro"},
			wantBody: "body",
		},
		{
			name:     "empty block",
			src:      "---\n---\nbody",
			wantBody: "body",
		},
		{
			name:     "closing fence at end",
			src:      "---\ntitle: T\n---",
			wantFM:   FrontMatter{Title: "T"},
			wantBody: "",
		},
		{
			name:     "thematic break later is not front matter",
			src:      "text\n---\nmore",
			wantBody: "text\n---\nmore",
		},
		{
			name:     "empty source",
			src:      "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := SplitFrontMatter([]byte(tt.src))
			if err != nil {
				t.Fatalf("SplitFrontMatter() error = %v", err)
			}
			if fm != tt.wantFM {
				t.Errorf("front matter = %+v, want %+v", fm, tt.wantFM)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestSplitFrontMatterErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated", "---\ntitle: T\n# body\n"},
		{"unknown key", "---\nauthor: me\n---\nbody"},
		{"bad yaml", "---\ntitle: [unclosed\n---\nbody"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, body, err := SplitFrontMatter([]byte(tt.src))
			if !errors.Is(err, ErrFrontMatter) {
				t.Fatalf("err = %v, want ErrFrontMatter", err)
			}
			if string(body) != tt.src {
				t.Errorf("body should be the unchanged source on error")
			}
		})
	}
}
