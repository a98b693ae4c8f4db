package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

type metrics struct {
	operations *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "addresscodec",
			Name:      "operations_total",
			Help:      "Codec operations served over HTTP, by operation and result.",
		}, []string{"op", "result"}),
	}
	registerer.MustRegister(m.operations)
	return m
}

func (m *metrics) observe(op string, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.operations.WithLabelValues(op, result).Inc()
}
