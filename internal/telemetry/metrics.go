package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Причины отказа построения тренировки, метка reason.
const (
	ReasonArity        = "arity"
	ReasonInvalidValue = "invalid_value"
	ReasonNonPositive  = "non_positive"
	ReasonOther        = "other"
)

// Metrics — метрики трекера тренировок.
type Metrics struct {
	registry *prometheus.Registry

	processed *prometheus.CounterVec
	skipped   prometheus.Counter
	failed    *prometheus.CounterVec
	distance  *prometheus.HistogramVec
	calories  *prometheus.HistogramVec
}

// NewMetrics создаёт метрики в собственном prometheus.Registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Subsystem: "tracker",
			Name:      "workouts_processed_total",
			Help:      "Number of workouts summarised, by kind.",
		}, []string{"kind"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitness",
			Subsystem: "tracker",
			Name:      "workouts_skipped_total",
			Help:      "Number of sensor packages with an unknown workout kind.",
		}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitness",
			Subsystem: "tracker",
			Name:      "workouts_failed_total",
			Help:      "Number of sensor packages rejected at construction, by reason.",
		}, []string{"reason"}),
		distance: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fitness",
			Subsystem: "tracker",
			Name:      "workout_distance_km",
			Help:      "Distance of summarised workouts in kilometres.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 21.1, 42.2},
		}, []string{"kind"}),
		calories: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fitness",
			Subsystem: "tracker",
			Name:      "workout_calories_kcal",
			Help:      "Calories spent in summarised workouts.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"kind"}),
	}

	m.registry.MustRegister(m.processed, m.skipped, m.failed, m.distance, m.calories)
	return m
}

// Registry возвращает prometheus.Registry с метриками трекера.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordProcessed учитывает обработанную тренировку.
func (m *Metrics) RecordProcessed(kind string, distanceKm, caloriesKcal float64) {
	m.processed.WithLabelValues(kind).Inc()
	m.distance.WithLabelValues(kind).Observe(distanceKm)
	m.calories.WithLabelValues(kind).Observe(caloriesKcal)
}

// RecordSkipped учитывает пакет с неизвестным видом тренировки.
func (m *Metrics) RecordSkipped() {
	m.skipped.Inc()
}

// RecordFailed учитывает пакет, из которого не удалось построить тренировку.
func (m *Metrics) RecordFailed(reason string) {
	m.failed.WithLabelValues(reason).Inc()
}

// WriteTextfile сохраняет метрики в файл в текстовом формате Prometheus.
// Файл записывается атомарно через временный файл.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
