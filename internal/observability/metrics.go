package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics хранит счетчики Prometheus для хранилища инцидентов и оповещений
type Metrics struct {
	ReportsAppended      prometheus.Counter
	DuplicateReports     prometheus.Counter
	MalformedRecords     prometheus.Counter
	DurableWriteFailures prometheus.Counter
	StoreSize            prometheus.Gauge

	ProximityChecks *prometheus.CounterVec // labels: outcome={alert,clear}
	AlertsPublished *prometheus.CounterVec // labels: result={ok,error}
}

// NewMetrics создает метрики и регистрирует их в стандартном реестре Prometheus
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsAppended,
		m.DuplicateReports,
		m.MalformedRecords,
		m.DurableWriteFailures,
		m.StoreSize,
		m.ProximityChecks,
		m.AlertsPublished,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты не получали
// панику "already registered"
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "reports_appended_total",
			Help:      "Incidents written to the durable report log.",
		}),
		DuplicateReports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "duplicate_reports_total",
			Help:      "Appends ignored because the incident id already existed.",
		}),
		MalformedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "malformed_records_total",
			Help:      "Report log records skipped at load time.",
		}),
		DurableWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "durable_write_failures_total",
			Help:      "Appends rejected because the report log write failed.",
		}),
		StoreSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "safetravel",
			Name:      "store_incidents",
			Help:      "Incidents currently held in memory.",
		}),
		ProximityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "proximity_checks_total",
			Help:      "Proximity alert checks by outcome.",
		}, []string{"outcome"}),
		AlertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safetravel",
			Name:      "alerts_published_total",
			Help:      "High alert events handed to the publisher by result.",
		}, []string{"result"}),
	}
}
