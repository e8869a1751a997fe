// Package metrics counts what the contract resolver does. Counters live in a
// private registry so several resolvers in one process (tests, the CLI) never
// collide on registration.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeResolved = "resolved"
	OutcomeNotReady = "not_ready"
	OutcomeFailed   = "failed"
)

type Recorder struct {
	registry        *prometheus.Registry
	resolutions     *prometheus.CounterVec
	memoHits        *prometheus.CounterVec
	analyticsEvents *prometheus.CounterVec
}

func New() *Recorder {
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contractkit_handle_resolutions_total",
		Help: "Contract handle resolutions by role and outcome",
	}, []string{"role", "outcome"})

	memoHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contractkit_handle_memo_hits_total",
		Help: "Resolutions answered from the caller's slot without rebuilding",
	}, []string{"role"})

	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contractkit_analytics_events_total",
		Help: "Analytics events published",
	}, []string{"event"})

	r := prometheus.NewRegistry()
	r.MustRegister(resolutions, memoHits, events)

	return &Recorder{
		registry:        r,
		resolutions:     resolutions,
		memoHits:        memoHits,
		analyticsEvents: events,
	}
}

func (m *Recorder) Registry() *prometheus.Registry {
	return m.registry
}

// The increment helpers are no-ops on a nil Recorder.

func (m *Recorder) Resolution(role, outcome string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(role, outcome).Inc()
}

func (m *Recorder) MemoHit(role string) {
	if m == nil {
		return
	}
	m.memoHits.WithLabelValues(role).Inc()
}

func (m *Recorder) AnalyticsEvent(event string) {
	if m == nil {
		return
	}
	m.analyticsEvents.WithLabelValues(event).Inc()
}

// Dump renders every non zero sample as `name{k="v",...} value`, sorted.
func (m *Recorder) Dump() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	lines := []string{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			if value == 0 {
				continue
			}
			labels := []string{}
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), value))
		}
	}
	sort.Strings(lines)
	return lines, nil
}
