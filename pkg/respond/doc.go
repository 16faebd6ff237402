// Package respond writes rendered documents to net/http responses.
//
// HTML writes a document with the right headers in one call. Handler turns
// a page function into an http.Handler that logs failures and answers with
// an HTML error page. Stream writes large documents through an
// http.Flusher so the client sees output before rendering is finished.
//
//	mux.Handle("GET /", respond.Handler(func(r *http.Request) (render.Document, error) {
//	    return render.NewDocument(el.Html(el.Body(el.H1("Hello")))), nil
//	}))
package respond
