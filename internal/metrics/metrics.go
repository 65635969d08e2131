package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Generations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGenerations,
			Help: HelpTextGenerations,
		},
		[]string{LabelTier, LabelTheme},
	)

	UnconfirmedMints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnconfirmedMints,
			Help: HelpTextUnconfirmedMints,
		},
	)

	CollectiblesListed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCollectiblesListed,
			Help: HelpTextCollectiblesListed,
		},
	)

	CollectiblesPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCollectiblesPurchased,
			Help: HelpTextCollectiblesPurchased,
		},
	)

	CollectionsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCollectionsCleared,
			Help: HelpTextCollectionsCleared,
		},
	)

	ListingVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingVolume,
			Help: HelpTextListingVolume,
		},
	)
)
