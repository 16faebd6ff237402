package preview

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/funhtml-go/funhtml/el"
	"github.com/funhtml-go/funhtml/pkg/middleware"
	"github.com/funhtml-go/funhtml/pkg/render"
	"github.com/funhtml-go/funhtml/pkg/respond"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

// PageFunc builds a page for a request.
type PageFunc = respond.PageFunc

// Config configures a Server.
type Config struct {
	// Addr is the listen address (default: "localhost:3000").
	Addr string

	// Logger receives request and lifecycle logs.
	// Default: slog.Default()
	Logger *slog.Logger

	// LiveReload injects the reload script into full documents.
	LiveReload bool

	// Pretty renders pages with indentation.
	Pretty bool

	// Registry collects the server's metrics and is served on /metrics.
	// Default: a new registry.
	Registry *prometheus.Registry

	// TracerProvider enables request tracing when set.
	TracerProvider trace.TracerProvider

	// ShutdownTimeout bounds graceful shutdown (default: 5s).
	ShutdownTimeout time.Duration
}

// DefaultAddr is the address used when Config.Addr is empty.
const DefaultAddr = "localhost:3000"

// Server is a development server for documents.
type Server struct {
	config  Config
	logger  *slog.Logger
	hub     *reloadHub
	router  chi.Router
	opts    []respond.Option
	mu      sync.RWMutex
	pages   map[string]http.Handler
	static  map[string]render.Document
	running bool
}

// New creates a Server.
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		config: config,
		logger: config.Logger,
		hub:    newReloadHub(),
		pages:  make(map[string]http.Handler),
		static: make(map[string]render.Document),
	}
	s.opts = []respond.Option{
		respond.WithLogger(s.logger),
		respond.WithRenderer(render.NewRenderer(render.Config{Pretty: config.Pretty})),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(middleware.Prometheus(middleware.WithRegistry(s.config.Registry)))
	if s.config.TracerProvider != nil {
		r.Use(middleware.OpenTelemetry(
			middleware.WithTracerProvider(s.config.TracerProvider),
			middleware.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != ReloadPath && r.URL.Path != "/metrics"
			}),
		))
	}

	r.Handle("/metrics", promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	if s.config.LiveReload {
		r.Get(ReloadPath, s.hub.ServeHTTP)
	}
	r.Get("/*", s.servePage)
	r.Head("/*", s.servePage)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Handle registers fn for path. fn runs on every request.
func (s *Server) Handle(path string, fn PageFunc) {
	h := respond.Handler(func(r *http.Request) (render.Document, error) {
		doc, err := fn(r)
		if err != nil {
			return doc, err
		}
		return s.decorate(doc), nil
	}, s.opts...)

	s.mu.Lock()
	s.pages[path] = h
	s.mu.Unlock()
}

// Set stores a fixed document for path and reloads connected browsers.
func (s *Server) Set(path string, doc render.Document) {
	s.mu.Lock()
	s.static[path] = doc
	s.mu.Unlock()
	s.Notify()
}

// Remove deletes the page at path and reloads connected browsers.
func (s *Server) Remove(path string) {
	s.mu.Lock()
	delete(s.static, path)
	delete(s.pages, path)
	s.mu.Unlock()
	s.Notify()
}

// Paths returns every registered page path, sorted.
func (s *Server) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := slices.Collect(maps.Keys(s.pages))
	for p := range s.static {
		if _, ok := s.pages[p]; !ok {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)
	return paths
}

// Notify tells connected browsers to reload and returns how many were
// reached.
func (s *Server) Notify() int {
	if !s.config.LiveReload {
		return 0
	}
	n := s.hub.broadcast(Message{Type: MessageReload})
	if n > 0 {
		s.logger.Debug("reload sent", "clients", n)
	}
	return n
}

// NotifyError shows an error in the console of connected browsers.
func (s *Server) NotifyError(msg string) int {
	if !s.config.LiveReload {
		return 0
	}
	return s.hub.broadcast(Message{Type: MessageError, Error: msg})
}

// Clients returns the number of connected live reload clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

func (s *Server) decorate(doc render.Document) render.Document {
	if s.config.LiveReload {
		return injectReload(doc)
	}
	return doc
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	s.mu.RLock()
	h, ok := s.pages[path]
	doc, isStatic := s.static[path]
	s.mu.RUnlock()

	switch {
	case ok:
		h.ServeHTTP(w, r)
	case isStatic:
		respond.Handler(func(*http.Request) (render.Document, error) {
			return s.decorate(doc), nil
		}, s.opts...).ServeHTTP(w, r)
	case path == "/":
		respond.Handler(func(*http.Request) (render.Document, error) {
			return s.decorate(s.index()), nil
		}, s.opts...).ServeHTTP(w, r)
	default:
		respond.Handler(func(r *http.Request) (render.Document, error) {
			return render.Document{}, respond.ErrNotFound
		}, s.opts...).ServeHTTP(w, r)
	}
}

// index lists every page.
func (s *Server) index() render.Document {
	paths := s.Paths()
	return render.NewDocument(el.Html(
		el.Lang("en"),
		el.Head(
			el.MetaCharsetUTF8(),
			el.MetaViewport(),
			el.Title("Preview"),
		),
		el.Body(
			el.Main(
				el.H1("Pages"),
				el.IfElse(len(paths) == 0,
					el.P("No pages yet."),
					el.Ul(el.Range(paths, func(p string, _ int) el.Node {
						return el.Li(el.A(el.Href(p), p))
					})),
				),
			),
		),
	))
}

// ListenAndServe listens on the configured address and serves until ctx
// is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		ln.Close()
		return errors.New("preview: server already running")
	}
	s.running = true
	s.mu.Unlock()

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("preview server running", "url", "http://"+ln.Addr().String(), "live_reload", s.config.LiveReload)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	s.hub.close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = err
	}

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.logger.Info("preview server stopped")
	return serveErr
}
