package respond

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/funhtml-go/funhtml/pkg/render"
)

// ContentType is the media type used for every HTML response.
const ContentType = "text/html; charset=utf-8"

// ErrNotFound is returned by a PageFunc when there is no page for the
// request. Handler answers it with 404.
var ErrNotFound = errors.New("respond: page not found")

// StatusError carries an HTTP status code for a page failure.
type StatusError struct {
	Code int
	Err  error
}

// Error returns the wrapped error's message.
func (e *StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *StatusError) Unwrap() error { return e.Err }

// Errorf returns a StatusError with a formatted message.
func Errorf(code int, format string, args ...any) error {
	return &StatusError{Code: code, Err: fmt.Errorf(format, args...)}
}

// StatusOf returns the HTTP status for a page error: the code of a
// StatusError, 404 for ErrNotFound, and 500 otherwise.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var se *StatusError
	if errors.As(err, &se) && se.Code >= 400 {
		return se.Code
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// HTML renders doc and writes it with status. Content-Type and
// Content-Length are set before the header is written.
func HTML(w http.ResponseWriter, status int, doc render.Document) error {
	return writeBody(w, status, doc.String(), true)
}

func writeBody(w http.ResponseWriter, status int, body string, withBody bool) error {
	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	if !withBody {
		return nil
	}
	_, err := io.WriteString(w, body)
	return err
}

// Stream writes doc with status, flushing after every buffered chunk
// when w implements http.Flusher. No Content-Length is set.
func Stream(w http.ResponseWriter, status int, doc render.Document) error {
	return stream(w, status, render.NewRenderer(render.Config{}), doc)
}

func stream(w http.ResponseWriter, status int, r *render.Renderer, doc render.Document) error {
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	var out io.Writer = w
	if f, ok := w.(http.Flusher); ok {
		out = &flushWriter{w: w, f: f}
	}
	return r.WriteDocument(out, doc)
}

type flushWriter struct {
	w io.Writer
	f http.Flusher
}

func (fw *flushWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err == nil {
		fw.f.Flush()
	}
	return n, err
}
