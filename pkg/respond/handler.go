package respond

import (
	"log/slog"
	"net/http"

	"github.com/funhtml-go/funhtml/el"
	"github.com/funhtml-go/funhtml/pkg/render"
)

// PageFunc builds the document for a request.
type PageFunc func(r *http.Request) (render.Document, error)

// ErrorPageFunc builds the document sent for a failed page.
type ErrorPageFunc func(status int, err error) render.Document

// Option configures a Handler.
type Option func(*handlerConfig)

type handlerConfig struct {
	logger    *slog.Logger
	errorPage ErrorPageFunc
	renderer  *render.Renderer
	stream    bool
}

// WithLogger sets the logger used for failed pages.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *handlerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithErrorPage replaces DefaultErrorPage.
func WithErrorPage(fn ErrorPageFunc) Option {
	return func(c *handlerConfig) {
		if fn != nil {
			c.errorPage = fn
		}
	}
}

// WithRenderer renders successful pages with r, for example to serve
// pretty-printed output during development.
func WithRenderer(r *render.Renderer) Option {
	return func(c *handlerConfig) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithStreaming writes successful pages with Stream semantics.
func WithStreaming() Option {
	return func(c *handlerConfig) {
		c.stream = true
	}
}

// Handler returns an http.Handler that serves the document built by fn.
//
// When fn fails the error is logged and an error page is written with
// the status from StatusOf. HEAD requests receive headers only.
func Handler(fn PageFunc, opts ...Option) http.Handler {
	cfg := handlerConfig{
		logger:    slog.Default(),
		errorPage: DefaultErrorPage,
		renderer:  render.NewRenderer(render.Config{}),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withBody := r.Method != http.MethodHead

		doc, err := fn(r)
		if err != nil {
			status := StatusOf(err)
			level := slog.LevelWarn
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			cfg.logger.Log(r.Context(), level, "page failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"error", err,
			)
			if werr := writeBody(w, status, cfg.errorPage(status, err).String(), withBody); werr != nil {
				cfg.logger.Debug("write error page", "path", r.URL.Path, "error", werr)
			}
			return
		}

		if cfg.stream && withBody {
			err = stream(w, http.StatusOK, cfg.renderer, doc)
		} else {
			err = writeBody(w, http.StatusOK, cfg.renderer.RenderDocument(doc), withBody)
		}
		if err != nil {
			cfg.logger.Debug("write page", "path", r.URL.Path, "error", err)
		}
	})
}

// DefaultErrorPage renders a minimal page naming the status. The error
// message is shown, escaped, for client errors only; server errors do
// not leak their details.
func DefaultErrorPage(status int, err error) render.Document {
	title := http.StatusText(status)
	if title == "" {
		title = "Error"
	}
	var detail el.Node
	if status < http.StatusInternalServerError && err != nil {
		detail = el.P(el.Class("detail"), err.Error())
	}
	return render.NewDocument(el.Html(
		el.Lang("en"),
		el.Head(
			el.MetaCharsetUTF8(),
			el.MetaViewport(),
			el.Title(title),
		),
		el.Body(
			el.Main(
				el.H1(el.Textf("%d %s", status, title)),
				detail,
			),
		),
	))
}
