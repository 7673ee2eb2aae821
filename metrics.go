package bitcol

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	LookupHit  = "hit"
	LookupMiss = "miss"
)

// Prometheus metrics for translation lookups.
type TranslatorMetrics struct {
	Lookups *prometheus.CounterVec
}

// Creates translator metrics, additionalLabels are extra label names supplied through
// Instrument for partitioning.
func NewTranslatorMetrics(additionalLabels ...string) *TranslatorMetrics {
	return &TranslatorMetrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bitcol",
			Subsystem: "translator",
			Name:      "lookups_total",
			Help:      "Translation lookups by key source and result",
		}, append(append([]string(nil), additionalLabels...), "source", "result")),
	}
}

// Registers the metrics with the registerer.
func (m *TranslatorMetrics) Register(registerer prometheus.Registerer) error {
	return registerer.Register(m.Lookups)
}

// Wraps the translator so each lookup is counted. additionalLabelValues are the values of
// the labels given to NewTranslatorMetrics.
func (m *TranslatorMetrics) Instrument(translator Translator, additionalLabelValues ...string) Translator {
	if translator == nil {
		return nil
	}
	return TranslatorFunc(func(key string) (string, bool) {
		text, ok := translator.Lookup(key)
		result := LookupMiss
		if ok {
			result = LookupHit
		}
		values := make([]string, 0, len(additionalLabelValues)+2)
		values = append(values, additionalLabelValues...)
		m.Lookups.WithLabelValues(append(values, lookupSource(key), result)...).Inc()
		return text, ok
	})
}

// The source of a key is its first segment: bitwise_column, activerecord, activemodel or a custom scope.
func lookupSource(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}
