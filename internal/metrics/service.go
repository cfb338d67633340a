package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Lookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_lookups_total",
			Help: "The total number of player stat lookups issued.",
		}),
		LookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tracker_lookup_failures_total",
			Help: "The total number of failed lookups, by failure kind.",
		}, []string{"kind"}),
		FriendsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_friends_added_total",
			Help: "The total number of players added to the friends roster.",
		}),
		FriendsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_friends_removed_total",
			Help: "The total number of players removed from the friends roster.",
		}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracker_lookup_duration_seconds",
			Help:    "The duration of individual stat lookups.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Lookups,
		s.LookupFailures,
		s.FriendsAdded,
		s.FriendsRemoved,
		s.LookupDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncLookups() {
	s.Lookups.Inc()
}

func (s *Service) IncLookupFailures(kind string) {
	s.LookupFailures.WithLabelValues(kind).Inc()
}

func (s *Service) IncFriendsAdded() {
	s.FriendsAdded.Inc()
}

func (s *Service) IncFriendsRemoved() {
	s.FriendsRemoved.Inc()
}

func (s *Service) ObserveLookupDuration(duration float64) {
	s.LookupDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
