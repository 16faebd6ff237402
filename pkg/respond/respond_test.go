package respond

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/funhtml-go/funhtml/el"
	"github.com/funhtml-go/funhtml/pkg/render"
)

func testDoc() render.Document {
	return render.NewDocument(el.Html(el.Body(el.H1("Hello"))))
}

const testDocHTML = "<!DOCTYPE html>\n<html><body><h1>Hello</h1></body></html>"

func TestHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := HTML(rec, http.StatusCreated, testDoc()); err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q, want %q", got, ContentType)
	}
	if got := rec.Header().Get("Content-Length"); got != strconv.Itoa(len(testDocHTML)) {
		t.Errorf("Content-Length = %q, want %d", got, len(testDocHTML))
	}
	if got := rec.Body.String(); got != testDocHTML {
		t.Errorf("body = %q, want %q", got, testDocHTML)
	}
}

func TestHTMLFragment(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := HTML(rec, http.StatusOK, render.NewFragment(el.P("a < b"))); err != nil {
		t.Fatal(err)
	}
	if got, want := rec.Body.String(), "<p>a &lt; b</p>"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("post 42: %w", ErrNotFound), http.StatusNotFound},
		{"status error", Errorf(http.StatusForbidden, "nope"), http.StatusForbidden},
		{"wrapped status error", fmt.Errorf("load: %w", Errorf(http.StatusBadRequest, "bad id")), http.StatusBadRequest},
		{"status below 400", &StatusError{Code: http.StatusOK, Err: errors.New("odd")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	if got := (&StatusError{Code: http.StatusGone}).Error(); got != "Gone" {
		t.Errorf("Error() = %q, want %q", got, "Gone")
	}
	inner := errors.New("inner")
	se := &StatusError{Code: http.StatusConflict, Err: inner}
	if !errors.Is(se, inner) {
		t.Error("StatusError should unwrap to its cause")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		fn         PageFunc
		wantStatus int
		wantBody   []string
		notInBody  []string
		emptyBody  bool
	}{
		{
			name:       "success",
			method:     http.MethodGet,
			fn:         func(*http.Request) (render.Document, error) { return testDoc(), nil },
			wantStatus: http.StatusOK,
			wantBody:   []string{testDocHTML},
		},
		{
			name:       "head",
			method:     http.MethodHead,
			fn:         func(*http.Request) (render.Document, error) { return testDoc(), nil },
			wantStatus: http.StatusOK,
			emptyBody:  true,
		},
		{
			name:   "internal error hides detail",
			method: http.MethodGet,
			fn: func(*http.Request) (render.Document, error) {
				return render.Document{}, errors.New("db password is hunter2")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"<!DOCTYPE html>", "<h1>500 Internal Server Error</h1>"},
			notInBody:  []string{"hunter2"},
		},
		{
			name:   "not found escapes detail",
			method: http.MethodGet,
			fn: func(r *http.Request) (render.Document, error) {
				return render.Document{}, fmt.Errorf("no page <%s>: %w", r.URL.Path, ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"<h1>404 Not Found</h1>", "no page &lt;/missing&gt;"},
			notInBody:  []string{"<missing>"},
		},
		{
			name:   "error on head",
			method: http.MethodHead,
			fn: func(*http.Request) (render.Document, error) {
				return render.Document{}, ErrNotFound
			},
			wantStatus: http.StatusNotFound,
			emptyBody:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handler(tt.fn, WithLogger(discardLogger()))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, "/missing", nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Content-Type"); got != ContentType {
				t.Errorf("Content-Type = %q", got)
			}
			body := rec.Body.String()
			if tt.emptyBody && body != "" {
				t.Errorf("body = %q, want empty", body)
			}
			for _, want := range tt.wantBody {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
			for _, bad := range tt.notInBody {
				if strings.Contains(body, bad) {
					t.Errorf("body should not contain %q:\n%s", bad, body)
				}
			}
		})
	}
}

func TestHandlerLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := Handler(func(*http.Request) (render.Document, error) {
		return render.Document{}, errors.New("template exploded")
	}, WithLogger(logger))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	out := buf.String()
	for _, want := range []string{"level=ERROR", "page failed", "path=/broken", "status=500", "template exploded"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q: %s", want, out)
		}
	}
}

func TestHandlerCustomErrorPage(t *testing.T) {
	h := Handler(func(*http.Request) (render.Document, error) {
		return render.Document{}, ErrNotFound
	}, WithLogger(discardLogger()), WithErrorPage(func(status int, err error) render.Document {
		return render.NewFragment(el.P(el.Textf("custom %d", status)))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got, want := rec.Body.String(), "<p>custom 404</p>"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestHandlerPrettyRenderer(t *testing.T) {
	h := Handler(func(*http.Request) (render.Document, error) {
		return render.NewFragment(el.Ul(el.Li("a"))), nil
	}, WithRenderer(render.NewRenderer(render.Config{Pretty: true})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if got, want := rec.Body.String(), "<ul>\n  <li>a</li>\n</ul>\n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

type flushRecorder struct {
	*httptest.ResponseRecorder
	flushes int
}

func (f *flushRecorder) Flush() {
	f.flushes++
	f.ResponseRecorder.Flush()
}

func TestStream(t *testing.T) {
	rec := &flushRecorder{ResponseRecorder: httptest.NewRecorder()}
	if err := Stream(rec, http.StatusOK, testDoc()); err != nil {
		t.Fatalf("Stream() error = %v", err)
	}
	if got := rec.Body.String(); got != testDocHTML {
		t.Errorf("body = %q, want %q", got, testDocHTML)
	}
	if rec.flushes == 0 {
		t.Error("Stream should flush when the writer supports it")
	}
	if got := rec.Header().Get("Content-Length"); got != "" {
		t.Errorf("Content-Length = %q, want unset", got)
	}
}

func TestStreamLargeDocumentFlushesInChunks(t *testing.T) {
	items := make([]el.Node, 20000)
	for i := range items {
		items[i] = el.Li(el.Textf("item %d", i))
	}
	doc := render.NewDocument(el.Html(el.Body(el.Ul(items))))

	rec := &flushRecorder{ResponseRecorder: httptest.NewRecorder()}
	if err := Stream(rec, http.StatusOK, doc); err != nil {
		t.Fatal(err)
	}
	if rec.flushes < 2 {
		t.Errorf("flushes = %d, want several for a large document", rec.flushes)
	}
	if got, want := rec.Body.String(), doc.String(); got != want {
		t.Error("streamed body differs from String()")
	}
}

func TestHandlerStreaming(t *testing.T) {
	h := Handler(func(*http.Request) (render.Document, error) { return testDoc(), nil }, WithStreaming())

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != testDocHTML {
		t.Errorf("body = %q, want %q", body, testDocHTML)
	}
	if resp.ContentLength != -1 {
		t.Errorf("ContentLength = %d, want -1 for a streamed response", resp.ContentLength)
	}
}
