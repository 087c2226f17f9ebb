package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tricolour_frames_rendered_total",
		Help: "Total number of frames drawn and presented",
	}, []string{"demo"})
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tricolour_shader_builds_total",
		Help: "Total number of shader program builds by result",
	}, []string{"demo", "result"})
	FrameTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tricolour_frame_time_seconds",
		Help:    "Time between consecutive presented frames",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"demo"})
)

type DemoMetrics struct {
	FramesRendered prometheus.Counter
	BuildsOK       prometheus.Counter
	BuildsFailed   prometheus.Counter
	FrameTime      prometheus.Observer
}

func NewDemoMetrics(demo string) DemoMetrics {
	m := DemoMetrics{
		FramesRendered: FramesRendered.WithLabelValues(demo),
		BuildsOK:       ShaderBuilds.WithLabelValues(demo, "ok"),
		BuildsFailed:   ShaderBuilds.WithLabelValues(demo, "failed"),
		FrameTime:      FrameTime.WithLabelValues(demo),
	}
	m.FramesRendered.Add(0)
	m.BuildsOK.Add(0)
	m.BuildsFailed.Add(0)
	return m
}

// FrameDone records a presented frame; dt is zero for the first frame.
func (m DemoMetrics) FrameDone(dt time.Duration) {
	m.FramesRendered.Inc()
	if dt > 0 {
		m.FrameTime.Observe(dt.Seconds())
	}
}

func (m DemoMetrics) ShaderBuild(err error) {
	if err != nil {
		m.BuildsFailed.Inc()
		return
	}
	m.BuildsOK.Inc()
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
