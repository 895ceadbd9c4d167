package net

import (
	"context"
	"encoding/json"
	stdnet "net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"TacNotepad/internal/state"
)

func newTestMirror(t *testing.T) (*state.PageStore, *Mirror, *httptest.Server) {
	t.Helper()
	store := state.NewPageStore()
	m := NewMirror(store, zaptest.NewLogger(t).Sugar())
	srv := httptest.NewServer(m.Handler())
	t.Cleanup(func() {
		_ = m.Shutdown(context.Background())
		srv.Close()
	})
	return store, m, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readPage(t *testing.T, conn *websocket.Conn) PageMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var msg PageMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestMirrorSendsInitialPages(t *testing.T) {
	store, _, srv := newTestMirror(t)
	store.Paths(state.PageThree).Set([]state.Path{
		{ID: "a", Color: "#ff0000", Width: 2, Points: []fyne.Position{{X: 1, Y: 1}, {X: 2, Y: 2}}},
	})

	conn := dial(t, srv)
	got := map[int][]state.Path{}
	for range state.AllPages {
		msg := readPage(t, conn)
		assert.Equal(t, "page", msg.Type)
		got[msg.Page] = msg.Paths
	}
	require.Len(t, got, len(state.AllPages))
	assert.Empty(t, got[1])
	require.Len(t, got[3], 1)
	assert.Equal(t, "a", got[3][0].ID)
}

func TestMirrorBroadcastsChanges(t *testing.T) {
	store, m, srv := newTestMirror(t)
	conn := dial(t, srv)
	for range state.AllPages {
		readPage(t, conn)
	}
	require.Eventually(t, func() bool { return m.PeerCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	store.Paths(state.PageTwo).Set([]state.Path{{ID: "b", Color: "#000000", Width: 1}})
	msg := readPage(t, conn)
	assert.Equal(t, 2, msg.Page)
	require.Len(t, msg.Paths, 1)
	assert.Equal(t, "b", msg.Paths[0].ID)

	store.Clear(state.PageTwo)
	msg = readPage(t, conn)
	assert.Equal(t, 2, msg.Page)
	assert.Empty(t, msg.Paths)
}

func TestMirrorDropsClosedViewers(t *testing.T) {
	_, m, srv := newTestMirror(t)
	conn := dial(t, srv)
	for range state.AllPages {
		readPage(t, conn)
	}
	require.Eventually(t, func() bool { return m.PeerCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return m.PeerCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestMirrorShutdownDetaches(t *testing.T) {
	store, m, _ := newTestMirror(t)
	require.NoError(t, m.Shutdown(context.Background()))
	assert.NotPanics(t, func() {
		store.Paths(state.PageOne).Set([]state.Path{{ID: "c"}})
	})
	assert.Zero(t, m.PeerCount())
}

func TestViewerPage(t *testing.T) {
	_, _, srv := newTestMirror(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	missing, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestGetOutgoingIP(t *testing.T) {
	ip := GetOutgoingIP()
	assert.NotNil(t, stdnet.ParseIP(ip), ip)
	assert.True(t, strings.HasPrefix(ShareLink(8888), "http://"))
	assert.True(t, strings.HasSuffix(ShareLink(8888), ":8888/"))
}
