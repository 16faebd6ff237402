package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/funhtml-go/funhtml/internal/config"
	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/funhtml-go/funhtml/pkg/preview"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview a directory of Markdown pages",
		Long: `Serve every Markdown file under a directory as an HTML page.

Pages are rebuilt when their source changes and connected browsers
reload automatically. "index.md" is served at "/", "guide/intro.md" at
"/guide/intro". Prometheus metrics are served at /metrics.

Examples:
  funhtml serve
  funhtml serve docs --port 8080`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Serve.Port = port
			}
			if cmd.Flags().Changed("host") {
				a.cfg.Serve.Host = host
			}
			if noReload {
				a.cfg.Serve.LiveReload = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, dir)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default "+strconv.Itoa(config.DefaultPort)+")")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default "+config.DefaultHost+")")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

// serve builds every page under dir and serves them until ctx is done.
func (a *app) serve(ctx context.Context, dir string) error {
	// Pages are built from the watcher's own baseline, so an edit made
	// while they build shows up in the first poll.
	w, err := scanSite(dir)
	if err != nil {
		return err
	}
	b, err := newBuilder(a.cfg)
	if err != nil {
		return err
	}

	srv := preview.New(preview.Config{
		Addr:       a.cfg.Address(),
		Logger:     a.logger,
		LiveReload: a.cfg.Serve.LiveReload,
		Pretty:     a.cfg.Pretty,
	})

	for _, rel := range siteFiles(dir, w) {
		doc, err := b.file(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			// A broken page must not keep the others from being served.
			a.logger.Warn("page skipped", "file", rel, "error", err)
			continue
		}
		srv.Set(urlPath(rel), doc)
	}

	w.OnChange(func(changes []preview.Change) {
		a.rebuild(dir, b, srv, changes)
	})
	go w.Start(ctx)
	defer w.Stop()

	fmt.Fprint(a.stdout, banner)
	a.success("Serving %d pages from %s", len(srv.Paths()), dir)
	a.info("http://%s", a.cfg.Address())

	if err := srv.ListenAndServe(ctx); err != nil {
		return errors.New("F300").WithDetail(a.cfg.Address()).Wrap(err)
	}
	return nil
}

// rebuild applies a batch of source changes to srv.
func (a *app) rebuild(dir string, b *builder, srv *preview.Server, changes []preview.Change) {
	for _, c := range changes {
		rel, err := filepath.Rel(dir, c.Path)
		if err != nil {
			continue
		}
		path := urlPath(filepath.ToSlash(rel))
		if c.Removed {
			a.logger.Info("page removed", "path", path)
			srv.Remove(path)
			continue
		}
		doc, err := b.file(c.Path)
		if err != nil {
			a.logger.Error("rebuild failed", "file", rel, "error", err)
			srv.NotifyError(errors.FromError(err, "F201").FormatCompact())
			continue
		}
		a.logger.Info("page rebuilt", "path", path)
		srv.Set(path, doc)
	}
}
