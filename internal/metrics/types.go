package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Lookups            prometheus.Counter
	LookupFailures     *prometheus.CounterVec
	FriendsAdded       prometheus.Counter
	FriendsRemoved     prometheus.Counter
	LookupDuration     prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
