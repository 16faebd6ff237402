package main

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/funhtml-go/funhtml/el"
	"github.com/funhtml-go/funhtml/internal/config"
	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/funhtml-go/funhtml/pkg/markdown"
	"github.com/funhtml-go/funhtml/pkg/node"
	"github.com/funhtml-go/funhtml/pkg/preview"
	"github.com/funhtml-go/funhtml/pkg/render"
)

// baseCSS keeps generated pages readable without a stylesheet.
const baseCSS = `body{max-width:48rem;margin:2rem auto;padding:0 1rem;font-family:system-ui,sans-serif;line-height:1.6}` +
	`pre{padding:1rem;overflow-x:auto}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.25rem .5rem}`

// pageOptions overrides configuration for a single page.
type pageOptions struct {
	title string
	lang  string
}

// builder turns Markdown sources into documents.
type builder struct {
	cfg  *config.Config
	conv *markdown.Converter
	css  string
}

func newBuilder(cfg *config.Config) (*builder, error) {
	css, err := markdown.StyleSheet("")
	if err != nil {
		return nil, errors.New("F201").Wrap(err)
	}
	return &builder{
		cfg:  cfg,
		conv: markdown.New(),
		css:  css,
	}, nil
}

// page builds a full document from Markdown source. name is used for
// error messages and as the last-resort title.
func (b *builder) page(name string, src []byte, opts pageOptions) (render.Document, error) {
	fm, body, err := markdown.SplitFrontMatter(src)
	if err != nil {
		return render.Document{}, errors.New("F203").WithFile(name).Wrap(err)
	}
	content, err := b.conv.Convert(body)
	if err != nil {
		return render.Document{}, errors.New("F201").WithFile(name).Wrap(err)
	}

	title := firstNonEmpty(opts.title, fm.Title, markdown.Title(body), b.cfg.Title, titleFromName(name))
	data := render.PageData{
		Lang:   firstNonEmpty(opts.lang, fm.Lang, b.cfg.Lang),
		Title:  title,
		Styles: []string{baseCSS, b.css},
		Body:   []node.Node{el.Main(content)},
	}
	if fm.Description != "" {
		data.Meta = append(data.Meta, render.MetaTag{Name: "description", Content: fm.Description})
	}
	data.Meta = append(data.Meta, render.MetaTag{Name: "generator", Content: "funhtml " + version})
	return data.Build(), nil
}

// file reads and builds a Markdown file.
func (b *builder) file(p string) (render.Document, error) {
	src, err := os.ReadFile(p)
	if err != nil {
		return render.Document{}, errors.New("F200").WithFile(p).Wrap(err)
	}
	return b.page(p, src, pageOptions{})
}

// renderer returns the renderer configured for output.
func (b *builder) renderer() *render.Renderer {
	return render.NewRenderer(render.Config{Pretty: b.cfg.Pretty})
}

// markdownFiles lists Markdown files under dir, relative to dir and
// slash-separated, skipping ignored names.
func markdownFiles(dir string) ([]string, error) {
	w, err := scanSite(dir)
	if err != nil {
		return nil, err
	}
	return siteFiles(dir, w), nil
}

// scanSite returns a watcher over the Markdown files in dir with its
// baseline already taken.
func scanSite(dir string) (*preview.Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.New("F200").WithFile(dir).Wrap(err)
	}
	if !info.IsDir() {
		return nil, errors.New("F301").WithFile(dir)
	}

	w := preview.NewWatcher(preview.WatcherConfig{Dir: dir, Extensions: markdownExtensions})
	w.Scan()
	return w, nil
}

// siteFiles returns the files seen by w's last scan, relative to dir.
func siteFiles(dir string, w *preview.Watcher) []string {
	var files []string
	for _, p := range w.Files() {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			continue
		}
		files = append(files, filepath.ToSlash(rel))
	}
	return files
}

var markdownExtensions = []string{".md", ".markdown"}

// urlPath maps a relative Markdown path to the path it is served at:
// "guide/intro.md" is served at "/guide/intro" and "guide/index.md"
// at "/guide/".
func urlPath(rel string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	if rel == "index" {
		return "/"
	}
	if strings.HasSuffix(rel, "/index") {
		return "/" + strings.TrimSuffix(rel, "index")
	}
	return "/" + rel
}

// objectKey maps a relative Markdown path to its published object key.
func objectKey(rel string) string {
	return strings.TrimSuffix(rel, path.Ext(rel)) + ".html"
}

func titleFromName(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "Untitled"
	}
	return strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
