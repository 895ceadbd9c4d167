package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"TacNotepad/internal/state"
)

const writeWait = 5 * time.Second

// PageMessage is sent to viewers whenever a page's committed paths change.
type PageMessage struct {
	Type  string       `json:"type"`
	Page  int          `json:"page"`
	Paths []state.Path `json:"paths"`
}

// Peer is one connected viewer.
type Peer struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *Peer) send(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteMessage(websocket.TextMessage, data)
}

// Mirror serves a read-only live view of the notepad to browsers on the
// local network.
type Mirror struct {
	store    *state.PageStore
	lggr     *zap.SugaredLogger
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[string]*Peer
	srv    *http.Server
	cancel []func()
}

// NewMirror creates a mirror of store. It starts observing the store
// straight away; call Shutdown to detach.
func NewMirror(store *state.PageStore, lggr *zap.SugaredLogger) *Mirror {
	m := &Mirror{
		store: store,
		lggr:  lggr,
		peers: make(map[string]*Peer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	for _, page := range state.AllPages {
		page := page
		m.cancel = append(m.cancel, store.Paths(page).Observe(func(paths []state.Path) {
			m.Broadcast(page, paths)
		}))
	}
	return m
}

// Handler returns the mirror's routes: the viewer page and /ws.
func (m *Mirror) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", m.serveViewer)
	mux.HandleFunc("/ws", m.serveWS)
	return mux
}

// Start listens on port and serves until ctx is cancelled or Shutdown is
// called.
func (m *Mirror) Start(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to start mirror on port %d: %w", port, err)
	}
	srv := &http.Server{Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
	m.mu.Lock()
	m.srv = srv
	m.mu.Unlock()

	m.lggr.Infof("Mirror listening on port %d", port)
	go func() {
		<-ctx.Done()
		_ = m.Shutdown(context.Background())
	}()
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.lggr.Errorf("Mirror server stopped: %v", err)
		}
	}()
	return nil
}

// Shutdown stops observing the store, closes every viewer and stops the
// server if it was started.
func (m *Mirror) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	cancels := m.cancel
	m.cancel = nil
	srv := m.srv
	m.srv = nil
	peers := m.peers
	m.peers = make(map[string]*Peer)
	m.mu.Unlock()

	for _, c := range cancels {
		c()
	}
	for _, p := range peers {
		_ = p.conn.Close()
	}
	if srv != nil {
		return srv.Shutdown(ctx)
	}
	return nil
}

// PeerCount returns the number of connected viewers.
func (m *Mirror) PeerCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.peers)
}

// Broadcast sends the paths of page to every viewer.
func (m *Mirror) Broadcast(page state.Page, paths []state.Path) {
	data, err := encodePage(page, paths)
	if err != nil {
		m.lggr.Errorf("Encoding %s: %v", page, err)
		return
	}
	m.mu.RLock()
	peers := make([]*Peer, 0, len(m.peers))
	for _, p := range m.peers {
		peers = append(peers, p)
	}
	m.mu.RUnlock()

	for _, p := range peers {
		if err := p.send(data); err != nil {
			m.lggr.Warnf("Error sending to %s: %v", p.ID, err)
			m.remove(p)
		}
	}
}

func (m *Mirror) add(p *Peer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.peers[p.ID] = p
	m.lggr.Infof("Viewer %s connected from %s", p.ID, p.conn.RemoteAddr())
}

func (m *Mirror) remove(p *Peer) {
	m.mu.Lock()
	_, ok := m.peers[p.ID]
	delete(m.peers, p.ID)
	m.mu.Unlock()
	if ok {
		_ = p.conn.Close()
		m.lggr.Infof("Viewer %s disconnected", p.ID)
	}
}

func (m *Mirror) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.lggr.Warnf("Upgrade failed: %v", err)
		return
	}
	peer := &Peer{ID: uuid.NewString(), conn: conn}

	for page, paths := range m.store.Snapshot() {
		data, err := encodePage(page, paths)
		if err == nil {
			err = peer.send(data)
		}
		if err != nil {
			m.lggr.Warnf("Initial sync to %s failed: %v", peer.ID, err)
			_ = conn.Close()
			return
		}
	}
	m.add(peer)

	// Viewers never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			m.remove(peer)
			return
		}
	}
}

func encodePage(page state.Page, paths []state.Path) ([]byte, error) {
	if paths == nil {
		paths = []state.Path{}
	}
	return json.Marshal(PageMessage{Type: "page", Page: int(page) + 1, Paths: paths})
}
