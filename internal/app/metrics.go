package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks frame and input timing of the event loop.
type Metrics struct {
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	inputCount   atomic.Uint64
	inputTotalNs atomic.Int64
	inputDropped atomic.Uint64

	// commands counts render commands painted.
	commands atomic.Uint64

	reloads atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the time taken to paint one frame of n commands.
func (m *Metrics) RecordFrame(duration time.Duration, n int) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)
	m.commands.Add(uint64(n))

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records input processing timing.
func (m *Metrics) RecordInput(duration time.Duration) {
	m.inputCount.Add(1)
	m.inputTotalNs.Add(duration.Nanoseconds())
}

// RecordInputDropped records an input event lost to a full queue.
func (m *Metrics) RecordInputDropped() {
	m.inputDropped.Add(1)
}

// RecordReload records a configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frameCount := m.frameCount.Load()
	inputCount := m.inputCount.Load()

	var avgFrameNs, avgInputNs int64
	if frameCount > 0 {
		avgFrameNs = m.frameTotalNs.Load() / int64(frameCount)
	}
	if inputCount > 0 {
		avgInputNs = m.inputTotalNs.Load() / int64(inputCount)
	}

	minFrameNs := m.frameMinNs.Load()
	if minFrameNs == 1<<63-1 {
		minFrameNs = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frameCount,
		AvgFrameTimeNs: avgFrameNs,
		MinFrameTimeNs: minFrameNs,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		Commands:       m.commands.Load(),
		InputCount:     inputCount,
		AvgInputTimeNs: avgInputNs,
		InputDropped:   m.inputDropped.Load(),
		Reloads:        m.reloads.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	Commands       uint64
	InputCount     uint64
	AvgInputTimeNs int64
	InputDropped   uint64
	Reloads        uint64
}

// AvgFPS returns the frame rate the average paint time would allow.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
