package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	_ "github.com/fosdem/tricolour/lib/api/docs"
	"github.com/fosdem/tricolour/lib/config"
	"github.com/fosdem/tricolour/lib/metrics"
	"github.com/fosdem/tricolour/lib/stats"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"
)

func logger() *slog.Logger {
	return slog.With("module", "api")
}

// Controller receives the requests the API forwards to the render thread.
type Controller interface {
	RequestShutdown()
	RequestShaderReload()
}

type Api struct {
	srv   http.Server
	mux   *http.ServeMux
	cfg   *config.ApiCfg
	ctl   Controller
	Stats *stats.Stats

	// PushInterval is how often websocket clients receive stats.
	PushInterval time.Duration

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

// @title			tricolour
// @version		1.0
// @description	Status and control of the triangle demos
// @BasePath		/
func New(cfg *config.ApiCfg, ctl Controller, s *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.ctl = ctl
	a.Stats = s
	a.mux = http.NewServeMux()
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	a.PushInterval = 2 * time.Second

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/shaders/reload", a.reloadShaders)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

// @Summary	Stop the demo
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Invalid method, only POST supported", http.StatusMethodNotAllowed)
		return
	}
	logger().Info("shutting down as per api request")
	a.ctl.RequestShutdown()
	a.writeOk(w)
}

// @Summary	Rebuild the shader program from the shader directory
// @Router		/api/shaders/reload [post]
// @Tags		shaders
// @Success	200
func (a *Api) reloadShaders(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "Invalid method, only POST supported", http.StatusMethodNotAllowed)
		return
	}
	logger().Info("shader reload requested via api")
	a.ctl.RequestShaderReload()
	a.writeOk(w)
}

// @Summary	Get render statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Snapshot
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

func (a *Api) writeOk(w http.ResponseWriter) {
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		logger().Warn("could not write response", "err", err)
	}
}

// ServeInBackground starts the API if cfg is set. The listener is opened
// before it returns, so a bad bind address is reported to the caller. A
// later serve failure is logged and asks the demo to shut down.
func ServeInBackground(cfg *config.ApiCfg, ctl Controller, s *stats.Stats) (*Api, error) {
	if cfg == nil {
		return nil, nil
	}
	theApi := New(cfg, ctl, s)

	l, err := net.Listen("tcp", cfg.Bind)
	if err != nil {
		return nil, fmt.Errorf("could not start web server: %w", err)
	}
	logger().Info("starting web server", "bind", l.Addr().String())
	go func() {
		err := theApi.srv.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger().Error(fmt.Sprintf("web server stopped: %s", err))
			ctl.RequestShutdown()
		}
	}()
	return theApi, nil
}
