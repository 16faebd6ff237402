// Package preview serves documents during development.
//
// A Server holds two kinds of pages: functions registered with Handle,
// rendered on every request, and fixed documents stored with Set, which
// callers replace as their sources change. With live reload enabled,
// full documents get a small script that listens on a WebSocket and
// reloads the browser whenever Notify is called or a page is Set.
//
//	srv := preview.New(preview.Config{Addr: "localhost:3000", LiveReload: true})
//	srv.Handle("/", func(r *http.Request) (render.Document, error) {
//	    return render.NewDocument(el.Html(el.Body(el.H1("Draft")))), nil
//	})
//	err := srv.ListenAndServe(ctx)
//
// Besides pages the server exposes Prometheus metrics on /metrics and the
// reload socket on /_funhtml/reload.
package preview
