package report

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"vramest/pkg/types"
)

// estimateRegistry builds a private registry holding the estimate gauges so
// repeated renders never collide with each other or the default registry.
func estimateRegistry(e types.Estimate) *prometheus.Registry {
	bytes := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vramest",
			Subsystem: "estimate",
			Name:      "bytes",
			Help:      "Approximate memory footprint in bytes",
		},
		[]string{"parameter", "quantization"},
	)
	params := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vramest",
			Subsystem: "estimate",
			Name:      "parameters",
			Help:      "Parsed model parameter count",
		},
		[]string{"parameter"},
	)
	bits := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "vramest",
			Subsystem: "estimate",
			Name:      "bits_per_parameter",
			Help:      "Heuristic bits per parameter for the quantization tag",
		},
		[]string{"quantization"},
	)
	reg := prometheus.NewRegistry()
	reg.MustRegister(bytes, params, bits)

	bytes.WithLabelValues(e.Parameter, e.Quantization).Set(e.Size.Bytes)
	params.WithLabelValues(e.Parameter).Set(float64(e.Params))
	bits.WithLabelValues(e.Quantization).Set(float64(e.Bits))
	return reg
}

// writeProm emits the text exposition format, suitable for node_exporter's
// textfile collector.
func writeProm(w io.Writer, e types.Estimate) error {
	mfs, err := estimateRegistry(e).Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
