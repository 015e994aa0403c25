package telemetry

import (
	"socialelections/config"
	"socialelections/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric 關閉時所有欄位都是 nil，呼叫端一律透過下面的 helper 記錄
type Metric struct {
	HttpRequestsTotal        *prometheus.CounterVec
	HttpRequestDuration      *prometheus.HistogramVec
	HttpSuccessTotal         *prometheus.CounterVec
	HttpFailTotal            *prometheus.CounterVec
	LedgerMutationsTotal     *prometheus.CounterVec
	ScopeLockWait            *prometheus.HistogramVec
	IntegrityViolationsTotal *prometheus.CounterVec
	config                   *config.Configuration
}

// NewMetric 建立所有指標並註冊到 prometheus.DefaultRegisterer
func NewMetric(config *config.Configuration) *Metric {
	return newMetric(config, prometheus.DefaultRegisterer)
}

func newMetric(config *config.Configuration, registerer prometheus.Registerer) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	factory := promauto.With(registerer)
	prefix := config.App.Name + "_"
	return &Metric{
		config: config,
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "API request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		HttpSuccessTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpSuccessTotal),
				Help: "Requests answered with a success envelope",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpFailTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpFailTotal),
				Help: "Requests answered with an error envelope",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus, core.MetricLabelReason),
		),
		LedgerMutationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricLedgerMutationsTotal),
				Help: "OR ledger mutations by operation, category and result",
			},
			labelNames(core.MetricLabelOp, core.MetricLabelCategory, core.MetricLabelResult),
		),
		ScopeLockWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricScopeLockWait),
				Help:    "Time spent waiting for a (unit, category) scope lock (seconds)",
				Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			labelNames(core.MetricLabelKind, core.MetricLabelResult),
		),
		IntegrityViolationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricIntegrityViolationTotal),
				Help: "Scopes found violating order density or uniqueness",
			},
			labelNames(core.MetricLabelKind),
		),
	}
}

func (m *Metric) ObserveLedgerMutation(op core.LedgerOp, category core.ORCategory, result string) {
	if m == nil || m.LedgerMutationsTotal == nil {
		return
	}
	m.LedgerMutationsTotal.WithLabelValues(string(op), string(category), result).Inc()
}

func (m *Metric) ObserveScopeLockWait(driver string, result string, seconds float64) {
	if m == nil || m.ScopeLockWait == nil {
		return
	}
	m.ScopeLockWait.WithLabelValues(driver, result).Observe(seconds)
}

func (m *Metric) AddIntegrityViolations(kind string, count int) {
	if m == nil || m.IntegrityViolationsTotal == nil || count <= 0 {
		return
	}
	m.IntegrityViolationsTotal.WithLabelValues(kind).Add(float64(count))
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
