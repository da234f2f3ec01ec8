package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"zultys-gsm7/smpp/coding"
)

// MetricExporter counts what the codec did during one run. It uses its own
// registry so only codec metrics end up in the textfile.
type MetricExporter struct {
	registry *prometheus.Registry
	runes    *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewMetricExporter registers the codec counters on a fresh registry.
func NewMetricExporter() *MetricExporter {
	e := &MetricExporter{
		registry: prometheus.NewRegistry(),
		runes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gsm7_runes_total",
			Help: "Runes seen by the codec, by table.",
		}, []string{"operation", "table"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gsm7_bytes_total",
			Help: "GSM 03.38 bytes written or read.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gsm7_failures_total",
			Help: "Failed operations, by error kind.",
		}, []string{"operation", "kind"}),
	}
	e.registry.MustRegister(e.runes, e.bytes, e.failures)
	return e
}

// ObserveText counts the runes of text per table.
func (e *MetricExporter) ObserveText(operation, text string) {
	a := coding.Analyze(text)
	e.runes.WithLabelValues(operation, coding.TableMain.String()).Add(float64(a.Main))
	e.runes.WithLabelValues(operation, coding.TableExtension.String()).Add(float64(a.Extension))
	e.runes.WithLabelValues(operation, coding.TableNone.String()).Add(float64(len(a.Unmappable)))
}

// ObserveBytes counts encoded bytes.
func (e *MetricExporter) ObserveBytes(operation string, n int) {
	e.bytes.WithLabelValues(operation).Add(float64(n))
}

// ObserveFailure counts err under its kind.
func (e *MetricExporter) ObserveFailure(operation string, err error) {
	e.failures.WithLabelValues(operation, errorKind(err)).Inc()
}

// WriteTextfile writes the registry in the node exporter textfile format.
func (e *MetricExporter) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, e.registry)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, coding.ErrUnmappableCharacter):
		return "unmappable_character"
	case errors.Is(err, coding.ErrInvalidEscapeSequence):
		return "invalid_escape_sequence"
	case errors.Is(err, coding.ErrInvalidMainTableByte):
		return "invalid_main_table_byte"
	default:
		return "other"
	}
}
