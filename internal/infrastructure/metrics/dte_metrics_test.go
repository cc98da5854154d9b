package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-sv/internal/infrastructure/metrics"
)

func TestDTEMetrics_CuentaEmitidosPorTipo(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewDTEMetrics(reg)

	m.Issued("01")
	m.Issued("01")
	m.Issued("03")
	m.SequenceConflict()

	families, err := reg.Gather()
	require.NoError(t, err)

	counts := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			key := f.GetName()
			for _, l := range metric.GetLabel() {
				key += ":" + l.GetValue()
			}
			counts[key] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, counts["dte_issued_total:01"])
	assert.Equal(t, 1.0, counts["dte_issued_total:03"])
	assert.Equal(t, 1.0, counts["dte_sequence_conflicts_total"])
}

func TestDTEMetrics_RegistroDuplicadoFalla(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewDTEMetrics(reg)

	assert.Panics(t, func() { metrics.NewDTEMetrics(reg) })

	// Sin emisiones el vector por tipo no tiene series; solo aparece el contador de colisiones.
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
