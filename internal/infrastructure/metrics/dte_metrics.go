// Package metrics expone contadores Prometheus de la emisión de DTE.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DTEMetrics contadores de emisión; implementa dte.Metrics.
type DTEMetrics struct {
	issued    *prometheus.CounterVec
	conflicts prometheus.Counter
}

// NewDTEMetrics crea y registra los contadores. registerer nil usa el registro global.
func NewDTEMetrics(registerer prometheus.Registerer) *DTEMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	issued := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dte_issued_total",
		Help: "Documentos tributarios electrónicos emitidos por tipo.",
	}, []string{"tipo"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dte_sequence_conflicts_total",
		Help: "Colisiones de número de control reintentadas al emitir.",
	})
	registerer.MustRegister(issued, conflicts)
	return &DTEMetrics{issued: issued, conflicts: conflicts}
}

// Issued suma un documento emitido del tipo (código de dos dígitos).
func (m *DTEMetrics) Issued(tipoDTE string) {
	m.issued.WithLabelValues(tipoDTE).Inc()
}

// SequenceConflict suma una colisión de correlativo.
func (m *DTEMetrics) SequenceConflict() {
	m.conflicts.Inc()
}
