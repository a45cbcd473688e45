package appraisal

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	engineLabel = "engine"
	levelLabel  = "level"
	gradeLabel  = "grade"

	EnginePlate = "plate"
	EngineTail  = "tail"
)

type Metrics struct {
	plateValuations *prometheus.CounterVec
	tailValuations  *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	plateValue      prometheus.Histogram
}

// NewMetrics регистрирует коллекторы оценок в reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		plateValuations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "plate_valuations_total",
			Help: "Plate valuations by level.",
		}, []string{levelLabel}),
		tailValuations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tail_valuations_total",
			Help: "Phone tail valuations by grade.",
		}, []string{gradeLabel}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "valuation_rejections_total",
			Help: "Identifiers rejected as malformed.",
		}, []string{engineLabel}),
		plateValue: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "plate_valuation_value",
			Help:    "Raw plate value before display amplification.",
			Buckets: prometheus.ExponentialBuckets(1000, 2, 12),
		}),
	}

	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observePlate(level string, rawValue int64) {
	if m == nil {
		return
	}
	m.plateValuations.WithLabelValues(level).Inc()
	m.plateValue.Observe(float64(rawValue))
}

func (m *Metrics) observeTail(grade string) {
	if m == nil {
		return
	}
	m.tailValuations.WithLabelValues(grade).Inc()
}

func (m *Metrics) observeRejection(engine string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(engine).Inc()
}

// Collectors возвращает зарегистрированные коллекторы, оценки номеров первыми.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.plateValuations, m.tailValuations, m.rejections, m.plateValue}
}

func (m *Metrics) Rejections(engine string) prometheus.Counter {
	return m.rejections.WithLabelValues(engine)
}

func (m *Metrics) PlateValuations(level string) prometheus.Counter {
	return m.plateValuations.WithLabelValues(level)
}
