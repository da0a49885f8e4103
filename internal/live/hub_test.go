package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(url, header)
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Clients() == n }, time.Second, 5*time.Millisecond)
}

func readText(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(msg)
}

func TestHub_BroadcastReachesViewers(t *testing.T) {
	h := NewHub([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()
	defer h.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()
	waitForClients(t, h, 1)

	h.Broadcast([]byte(`[{"courtId":1}]`))
	assert.Equal(t, `[{"courtId":1}]`, readText(t, conn))
}

func TestHub_NewViewerGetsLastSnapshot(t *testing.T) {
	h := NewHub([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()
	defer h.Close()

	h.Broadcast([]byte("first"))
	h.Broadcast([]byte("second"))

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "second", readText(t, conn))
}

func TestHub_DisconnectRemovesViewer(t *testing.T) {
	h := NewHub([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()
	defer h.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	h := NewHub([]string{"https://scores.example"})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()

	_, resp, err := dial(t, srv, "https://evil.example")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := dial(t, srv, "https://scores.example")
	require.NoError(t, err)
	conn.Close()
}

func TestHub_Run(t *testing.T) {
	h := NewHub([]string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	defer srv.Close()
	defer h.Close()

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer conn.Close()
	waitForClients(t, h, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx, 10*time.Millisecond, func() ([]byte, error) { return []byte("tick"), nil })

	assert.Equal(t, "tick", readText(t, conn))
}

func TestOriginAllowed(t *testing.T) {
	assert.True(t, originAllowed("", []string{"https://a"}))
	assert.True(t, originAllowed("https://b", []string{"*"}))
	assert.True(t, originAllowed("https://a", []string{"https://a"}))
	assert.False(t, originAllowed("https://b", []string{"https://a"}))
}
