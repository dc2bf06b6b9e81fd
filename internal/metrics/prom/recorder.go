// Package prom exposes store metrics as Prometheus collectors.
package prom

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hippo"

// Recorder counts actions, decay ticks and persistence failures.
type Recorder struct {
	actions    *prometheus.CounterVec
	ticks      *prometheus.CounterVec
	persistErr *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Care actions by name and outcome.",
		}, []string{"action", "ok"}),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decay_ticks_total",
			Help:      "Passive decay ticks, split by whether the dehydration penalty applied.",
		}, []string{"dehydrated"}),
		persistErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Storage writes that failed and were dropped.",
		}, []string{"op"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{r.actions, r.ticks, r.persistErr} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Recorder) RecordAction(action string, ok bool) {
	r.actions.WithLabelValues(action, strconv.FormatBool(ok)).Inc()
}

func (r *Recorder) RecordDecayTick(dehydrated bool) {
	r.ticks.WithLabelValues(strconv.FormatBool(dehydrated)).Inc()
}

func (r *Recorder) RecordPersistFailure(op string) {
	r.persistErr.WithLabelValues(op).Inc()
}
