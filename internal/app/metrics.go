package app

import (
	"sync/atomic"
	"time"
)

// Metrics counts what a run did. It is safe for concurrent reads while the
// run is in progress.
type Metrics struct {
	ticks    atomic.Uint64
	keys     atomic.Uint64
	moves    atomic.Uint64
	clicks   atomic.Uint64
	ignored  atomic.Uint64
	renders  atomic.Uint64
	renderNs atomic.Int64
	maxNs    atomic.Int64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

func (m *Metrics) recordTick()    { m.ticks.Add(1) }
func (m *Metrics) recordKey()     { m.keys.Add(1) }
func (m *Metrics) recordMove()    { m.moves.Add(1) }
func (m *Metrics) recordClick()   { m.clicks.Add(1) }
func (m *Metrics) recordIgnored() { m.ignored.Add(1) }

func (m *Metrics) recordRender(d time.Duration) {
	ns := d.Nanoseconds()
	m.renders.Add(1)
	m.renderNs.Add(ns)
	for {
		old := m.maxNs.Load()
		if ns <= old || m.maxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Ticks     uint64
	Keys      uint64
	Moves     uint64
	Clicks    uint64
	Ignored   uint64
	Renders   uint64
	AvgRender time.Duration
	MaxRender time.Duration
	Uptime    time.Duration
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Ticks:     m.ticks.Load(),
		Keys:      m.keys.Load(),
		Moves:     m.moves.Load(),
		Clicks:    m.clicks.Load(),
		Ignored:   m.ignored.Load(),
		Renders:   m.renders.Load(),
		MaxRender: time.Duration(m.maxNs.Load()),
		Uptime:    time.Since(m.startTime),
	}
	if s.Renders > 0 {
		s.AvgRender = time.Duration(m.renderNs.Load() / int64(s.Renders))
	}
	return s
}
