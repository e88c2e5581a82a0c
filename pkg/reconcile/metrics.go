package reconcile

import (
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/OP439/excalidraw/pkg/constants"
)

// metrics holds the prometheus collectors of a Reconciler. A nil *metrics
// records nothing.
type metrics struct {
	runs      prometheus.Counter
	decisions *prometheus.CounterVec
	repairs   prometheus.Counter
	elements  prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Subsystem: constants.MetricsSubsystem,
			Name:      "total",
			Help:      "Number of reconciled remote batches.",
		}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Subsystem: constants.MetricsSubsystem,
			Name:      "decisions_total",
			Help:      "Placement decisions for remote elements.",
		}, []string{"decision", "reason"}),
		repairs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Subsystem: constants.MetricsSubsystem,
			Name:      "order_repairs_total",
			Help:      "Number of merges whose order keys did not validate.",
		}),
		elements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Subsystem: constants.MetricsSubsystem,
			Name:      "elements",
			Help:      "Size of the last reconciled replica.",
		}),
	}

	var err error
	if m.runs, err = register(reg, m.runs); err != nil {
		return nil, err
	}
	if m.decisions, err = register(reg, m.decisions); err != nil {
		return nil, err
	}
	if m.repairs, err = register(reg, m.repairs); err != nil {
		return nil, err
	}
	if m.elements, err = register(reg, m.elements); err != nil {
		return nil, err
	}
	return m, nil
}

// register registers c, reusing the collector already registered under the
// same descriptor so that several reconcilers can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if stderrors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(res Resolution) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(res.Decision.String(), res.Reason.String()).Inc()
}

func (m *metrics) batch(repaired bool) {
	if m == nil {
		return
	}
	m.runs.Inc()
	if repaired {
		m.repairs.Inc()
	}
}

func (m *metrics) size(n int) {
	if m == nil {
		return
	}
	m.elements.Set(float64(n))
}
