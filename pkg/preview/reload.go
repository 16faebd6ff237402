package preview

import (
	"encoding/json"
	"net/http"
	"slices"
	"sync"

	"github.com/funhtml-go/funhtml/pkg/node"
	"github.com/funhtml-go/funhtml/pkg/render"
	"github.com/gorilla/websocket"
)

// ReloadPath is the WebSocket endpoint used by the live reload script.
const ReloadPath = "/_funhtml/reload"

// MessageType is the type of a live reload message.
type MessageType string

const (
	MessageReload MessageType = "reload"
	MessageError  MessageType = "error"
	MessageClear  MessageType = "clear"
)

// Message is sent to browsers over the reload socket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
}

// reloadHub tracks connected browsers and broadcasts messages to them.
type reloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// writeMu serializes broadcasts; a websocket.Conn allows one writer.
	writeMu sync.Mutex
}

func newReloadHub() *reloadHub {
	return &reloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview is a local development server
			},
		},
	}
}

// ServeHTTP upgrades the connection and holds it until the client goes
// away.
func (h *reloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *reloadHub) broadcast(msg Message) int {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	sent := 0
	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			c.Close()
			continue
		}
		sent++
	}
	return sent
}

func (h *reloadHub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *reloadHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
}

// reloadScript reconnects with backoff and reloads on "reload" messages.
const reloadScript = `<script>
(function() {
    var delay = 500;
    function connect() {
        var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');
        ws.onopen = function() { delay = 500; };
        ws.onmessage = function(e) {
            var msg;
            try { msg = JSON.parse(e.data); } catch (err) { return; }
            if (msg.type === 'reload') { location.reload(); }
            if (msg.type === 'error') { console.error('[funhtml]', msg.error); }
        };
        ws.onclose = function() {
            setTimeout(function() { delay = Math.min(delay * 2, 10000); connect(); }, delay);
        };
    }
    connect();
})();
</script>`

// injectReload appends the reload script to the body of a full
// document. Fragments and documents without an html root are returned
// unchanged.
func injectReload(doc render.Document) render.Document {
	if !doc.HasDoctype() {
		return doc
	}
	html, ok := doc.Root().(node.Element)
	if !ok || html.Tag() != "html" {
		return doc
	}

	script := node.RawUnsafe(reloadScript)
	children := make([]node.Node, 0, html.NumChildren()+1)
	injected := false
	for child := range html.Children() {
		if body, ok := child.(node.Element); ok && body.Tag() == "body" && !injected {
			child = appendChild(body, script)
			injected = true
		}
		children = append(children, child)
	}
	if !injected {
		children = append(children, script)
	}
	return render.NewDocument(node.New(html.Tag(), slices.Collect(html.Attrs()), children))
}

func appendChild(el node.Element, child node.Node) node.Element {
	children := make([]node.Node, 0, el.NumChildren()+1)
	for c := range el.Children() {
		children = append(children, c)
	}
	return node.New(el.Tag(), slices.Collect(el.Attrs()), append(children, child)).(node.Element)
}
