package preview

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/funhtml-go/funhtml/el"
	"github.com/funhtml-go/funhtml/pkg/render"
	"github.com/funhtml-go/funhtml/pkg/respond"
	"github.com/gorilla/websocket"
)

func quietConfig(c Config) Config {
	c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return c
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func helloPage(*http.Request) (render.Document, error) {
	return render.NewDocument(el.Html(el.Body(el.H1("Hello")))), nil
}

func TestServer_Handle(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Handle("/hello", helloPage)

	rec := get(t, s.Handler(), "/hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got, want := rec.Body.String(), "<!DOCTYPE html>\n<html><body><h1>Hello</h1></body></html>"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got := rec.Header().Get("Content-Type"); got != respond.ContentType {
		t.Errorf("Content-Type = %q", got)
	}
}

func TestServer_LiveReloadInjection(t *testing.T) {
	s := New(quietConfig(Config{LiveReload: true}))
	s.Handle("/hello", helloPage)
	s.Set("/frag", render.NewFragment(el.P("partial")))

	if body := get(t, s.Handler(), "/hello").Body.String(); !strings.Contains(body, ReloadPath) {
		t.Errorf("reload script not injected: %s", body)
	}
	if body := get(t, s.Handler(), "/hello").Body.String(); !strings.HasSuffix(body, "</script></body></html>") {
		t.Errorf("script should be the last child of body: %s", body)
	}
	if body := get(t, s.Handler(), "/frag").Body.String(); body != "<p>partial</p>" {
		t.Errorf("fragment body = %q", body)
	}
}

func TestServer_PageError(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Handle("/gone", func(*http.Request) (render.Document, error) {
		return render.Document{}, respond.Errorf(http.StatusGone, "removed")
	})

	rec := get(t, s.Handler(), "/gone")
	if rec.Code != http.StatusGone {
		t.Errorf("status = %d, want 410", rec.Code)
	}
}

func TestServer_NotFound(t *testing.T) {
	s := New(quietConfig(Config{}))
	rec := get(t, s.Handler(), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404 Not Found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestServer_Index(t *testing.T) {
	s := New(quietConfig(Config{}))

	if body := get(t, s.Handler(), "/").Body.String(); !strings.Contains(body, "No pages yet.") {
		t.Errorf("empty index = %s", body)
	}

	s.Handle("/b", helloPage)
	s.Set("/a", render.NewDocument(el.P("a")))

	body := get(t, s.Handler(), "/").Body.String()
	want := `<ul><li><a href="/a">/a</a></li><li><a href="/b">/b</a></li></ul>`
	if !strings.Contains(body, want) {
		t.Errorf("index missing %q:\n%s", want, body)
	}
}

func TestServer_IndexOverridden(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Set("/", render.NewFragment(el.P("home")))
	if body := get(t, s.Handler(), "/").Body.String(); body != "<p>home</p>" {
		t.Errorf("body = %q", body)
	}
}

func TestServer_Remove(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Set("/a", render.NewDocument(el.P("a")))
	s.Remove("/a")
	if rec := get(t, s.Handler(), "/a"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if len(s.Paths()) != 0 {
		t.Errorf("Paths() = %v", s.Paths())
	}
}

func TestServer_Pretty(t *testing.T) {
	s := New(quietConfig(Config{Pretty: true}))
	s.Set("/list", render.NewFragment(el.Ul(el.Li("a"))))
	if got, want := get(t, s.Handler(), "/list").Body.String(), "<ul>\n  <li>a</li>\n</ul>\n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestServer_Metrics(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Handle("/hello", helloPage)
	get(t, s.Handler(), "/hello")

	body := get(t, s.Handler(), "/metrics").Body.String()
	if !strings.Contains(body, `funhtml_responses_total{route="/*",status="200"} 1`) {
		t.Errorf("metrics missing response counter:\n%s", body)
	}
}

func dialReload(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial reload socket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, s *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients = %d, want %d", s.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	return msg
}

func TestServer_SetNotifiesClients(t *testing.T) {
	s := New(quietConfig(Config{LiveReload: true}))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, s, 1)

	s.Set("/doc", render.NewDocument(el.Html(el.Body("v2"))))
	if msg := readMessage(t, conn); msg.Type != MessageReload {
		t.Errorf("message type = %q, want reload", msg.Type)
	}

	if n := s.NotifyError("bad input"); n != 1 {
		t.Errorf("NotifyError reached %d clients, want 1", n)
	}
	if msg := readMessage(t, conn); msg.Type != MessageError || msg.Error != "bad input" {
		t.Errorf("message = %+v", msg)
	}

	conn.Close()
	waitForClients(t, s, 0)
}

func TestServer_ConcurrentSet(t *testing.T) {
	s := New(quietConfig(Config{LiveReload: true}))
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dialReload(t, srv)
	waitForClients(t, s, 1)

	received := make(chan int)
	go func() {
		n := 0
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				received <- n
				return
			}
			n++
		}
	}()

	const writers, sets = 16, 200
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range sets {
				s.Set("/p", render.NewDocument(el.Html(el.Body(el.Textf("%d-%d", i, j)))))
			}
		}()
	}
	wg.Wait()

	if got := s.Clients(); got != 1 {
		t.Errorf("clients = %d after concurrent Set, want 1", got)
	}
	conn.Close()
	if n := <-received; n == 0 {
		t.Error("no reload messages received")
	}
}

func TestServer_NotifyWithoutLiveReload(t *testing.T) {
	s := New(quietConfig(Config{}))
	if n := s.Notify(); n != 0 {
		t.Errorf("Notify() = %d, want 0", n)
	}
	if rec := get(t, s.Handler(), ReloadPath); rec.Code != http.StatusNotFound {
		t.Errorf("reload endpoint status = %d, want 404 when disabled", rec.Code)
	}
}

func TestServer_ServeShutsDownOnCancel(t *testing.T) {
	s := New(quietConfig(Config{}))
	s.Handle("/hello", helloPage)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/hello")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestServer_ListenAndServeBadAddr(t *testing.T) {
	s := New(quietConfig(Config{Addr: "256.0.0.1:bad"}))
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
