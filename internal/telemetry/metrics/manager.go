package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterFoodSearches       *prometheus.CounterVec
	CounterRemoteCatalogCalls prometheus.Counter
	CounterLoggedFoods        prometheus.Counter
	CounterSummaryRecomputes  prometheus.Counter
	CounterHandleRequestPanic prometheus.Counter

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitpulse", "test_engine", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterFoodSearches := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "food_searches",
		Help:      "The total number of food searches, per resulting tier",
	}, []string{"tier"})
	counterRemoteCatalogCalls := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "remote_catalog_calls",
		Help:      "The total number of remote food catalog calls",
	})
	counterLoggedFoods := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "logged_foods",
		Help:      "The total number of logged food entries",
	})
	counterSummaryRecomputes := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "summary_recomputes",
		Help:      "The total number of daily summary recomputations",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "The duration of handled requests",
		Buckets:   prometheus.DefBuckets,
	})

	return &Manager{
		CounterRequests:           counterRequests,
		CounterFoodSearches:       counterFoodSearches,
		CounterRemoteCatalogCalls: counterRemoteCatalogCalls,
		CounterLoggedFoods:        counterLoggedFoods,
		CounterSummaryRecomputes:  counterSummaryRecomputes,
		CounterHandleRequestPanic: counterHandleRequestPanic,
		GaugeLifeSignal:           gaugeLifeSignal,
		HistogramRequestDuration:  histRequestDuration,
	}
}
