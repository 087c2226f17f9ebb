package api

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/lifecycle"
	"github.com/fosdem/tricolour/lib/stats"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(t *testing.T) (*Api, *lifecycle.Lifecycle) {
	t.Helper()
	lc := &lifecycle.Lifecycle{}
	s := stats.New("window")
	s.SetGLInfo(stats.GLInfo{Vendor: "Mesa", Renderer: "llvmpipe", Version: "3.3 (Core Profile)"})
	a := New(&config.ApiCfg{Bind: "127.0.0.1:0"}, lc, s)
	return a, lc
}

func do(a *Api, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestStats(t *testing.T) {
	a, _ := newTestApi(t)
	a.Stats.FrameDone()

	rec := do(a, http.MethodGet, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var snap stats.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	assert.Equal(t, "window", snap.Demo)
	assert.Equal(t, "llvmpipe", snap.GL.Renderer)
	assert.Equal(t, uint64(1), snap.Frames)
}

func TestKill(t *testing.T) {
	a, lc := newTestApi(t)

	rec := do(a, http.MethodGet, "/api/kill")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, lc.ShutdownRequested())

	rec = do(a, http.MethodPost, "/api/kill")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "\"ok\"\n", rec.Body.String())
	assert.True(t, lc.ShutdownRequested())
}

func TestReloadShaders(t *testing.T) {
	a, lc := newTestApi(t)

	rec := do(a, http.MethodPost, "/api/shaders/reload")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, lc.TakeShaderReload())
}

func TestProfilerDisabledByDefault(t *testing.T) {
	a, _ := newTestApi(t)
	assert.Equal(t, http.StatusNotFound, do(a, http.MethodGet, "/prof").Code)
}

func TestMetricsMounted(t *testing.T) {
	a, _ := newTestApi(t)
	rec := do(a, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSwaggerDoc(t *testing.T) {
	a, _ := newTestApi(t)
	rec := do(a, http.MethodGet, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/api/stats")
	assert.Contains(t, paths, "/api/shaders/reload")
}

func TestWebsocketPushesStats(t *testing.T) {
	a, _ := newTestApi(t)
	a.PushInterval = 10 * time.Millisecond
	srv := httptest.NewServer(a.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(5*time.Second)))
	for i := 0; i < 2; i++ {
		_, msg, err := ws.ReadMessage()
		require.NoError(t, err)

		var snap stats.Snapshot
		require.NoError(t, json.Unmarshal(msg, &snap))
		assert.Equal(t, "window", snap.Demo)
	}

	assert.Eventually(t, func() bool {
		return a.Stats.Snapshot().WsClients == 1
	}, time.Second, 10*time.Millisecond)
}

func TestServeInBackground(t *testing.T) {
	lc := &lifecycle.Lifecycle{}
	a, err := ServeInBackground(nil, lc, stats.New("window"))
	require.NoError(t, err)
	assert.Nil(t, a, "no api section means no server")

	a, err = ServeInBackground(&config.ApiCfg{Bind: "127.0.0.1:0"}, lc, stats.New("window"))
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.NoError(t, a.Shutdown(context.Background()))
	assert.False(t, lc.ShutdownRequested())
}

func TestServeInBackgroundBindFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	lc := &lifecycle.Lifecycle{}
	a, err := ServeInBackground(&config.ApiCfg{Bind: busy.Addr().String()}, lc, stats.New("window"))
	assert.ErrorContains(t, err, "could not start web server")
	assert.Nil(t, a)
}
