package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	IngestRowsTotal     *prometheus.CounterVec
	IngestRejectedTotal *prometheus.CounterVec

	DatasetSites   prometheus.Gauge
	DatasetRooms   prometheus.Gauge
	DatasetWeekMin prometheus.Gauge
	DatasetWeekMax prometheus.Gauge
}

// New регистрирует метрики в стандартном registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		IngestRowsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_ingest_rows_total",
			Help:        "Schedule rows processed during ingestion",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),

		IngestRejectedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_ingest_rejected_total",
			Help:        "Schedule files rejected as a whole",
			ConstLabels: constLabels,
		}, []string{"kind"}),

		DatasetSites: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dataset_sites",
			Help:        "Sites in the active dataset",
			ConstLabels: constLabels,
		}),
		DatasetRooms: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dataset_rooms",
			Help:        "Rooms in the active dataset",
			ConstLabels: constLabels,
		}),
		DatasetWeekMin: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dataset_week_min",
			Help:        "Lowest week number in the active dataset",
			ConstLabels: constLabels,
		}),
		DatasetWeekMax: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dataset_week_max",
			Help:        "Highest week number in the active dataset",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveRequest учитывает один HTTP-запрос
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveIngest учитывает результат разбора одного файла
func (m *Metrics) ObserveIngest(kind string, inserted, skipped int) {
	if m == nil {
		return
	}
	m.IngestRowsTotal.WithLabelValues(kind, "inserted").Add(float64(inserted))
	m.IngestRowsTotal.WithLabelValues(kind, "skipped").Add(float64(skipped))
}

// ObserveRejected учитывает файл, отклоненный целиком
func (m *Metrics) ObserveRejected(kind string) {
	if m == nil {
		return
	}
	m.IngestRejectedTotal.WithLabelValues(kind).Inc()
}

// SetDataset обновляет gauges активного набора данных
func (m *Metrics) SetDataset(sites, rooms, weekMin, weekMax int) {
	if m == nil {
		return
	}
	m.DatasetSites.Set(float64(sites))
	m.DatasetRooms.Set(float64(rooms))
	m.DatasetWeekMin.Set(float64(weekMin))
	m.DatasetWeekMax.Set(float64(weekMax))
}
