package stats

import (
	"sync"
	"time"
)

// GLInfo holds the identification strings of a GL context.
type GLInfo struct {
	Vendor   string `json:"vendor"`
	Renderer string `json:"renderer"`
	Version  string `json:"version"`
}

// Stats is updated by the render thread and read by the API.
type Stats struct {
	mu sync.Mutex

	demo         string
	gl           GLInfo
	frames       uint64
	fps          uint64
	wsClients    int
	reloads      uint64
	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
	now          func() time.Time
}

// Snapshot is the JSON representation served by the API.
type Snapshot struct {
	Demo          string  `json:"demo"`
	GL            GLInfo  `json:"gl"`
	Uptime        float64 `json:"uptime"`
	Frames        uint64  `json:"frames"`
	FPS           uint64  `json:"fps"`
	ShaderReloads uint64  `json:"shader_reloads"`
	WsClients     int     `json:"ws_clients"`
}

func New(demo string) *Stats {
	return newWithClock(demo, time.Now)
}

func newWithClock(demo string, now func() time.Time) *Stats {
	s := &Stats{demo: demo, now: now}
	s.start = now()
	s.frameTimer = s.start
	return s
}

func (s *Stats) SetGLInfo(info GLInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gl = info
}

// FrameDone counts a presented frame and rolls the FPS window once per
// second.
func (s *Stats) FrameDone() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames++
	s.frameCounter++
	now := s.now()
	if now.Sub(s.frameTimer) >= 1*time.Second {
		s.fps = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}
}

func (s *Stats) ShaderReloaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloads++
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Demo:          s.demo,
		GL:            s.gl,
		Uptime:        float64(s.now().Sub(s.start).Nanoseconds()) / 1e9,
		Frames:        s.frames,
		FPS:           s.fps,
		ShaderReloads: s.reloads,
		WsClients:     s.wsClients,
	}
}
