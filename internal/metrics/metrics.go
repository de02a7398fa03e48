// Package metrics exposes Prometheus collectors for HTTP traffic and farm activity.
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
	Harvests = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameHarvests, Help: HelpTextHarvests},
		[]string{LabelCrop},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameCoinsEarned, Help: HelpTextCoinsEarned},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNameCoinsSpent, Help: HelpTextCoinsSpent},
	)

	PatternsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNamePatternsDetected, Help: HelpTextPatternsDetected},
		[]string{LabelPattern},
	)

	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameCropsPlanted, Help: HelpTextCropsPlanted},
		[]string{LabelCrop},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameItemsCrafted, Help: HelpTextItemsCrafted},
		[]string{LabelItem},
	)

	ResourcesGathered = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameResourcesGathered, Help: HelpTextResourcesGathered},
		[]string{LabelResource},
	)

	ToolsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: MetricNameToolsPurchased, Help: HelpTextToolsPurchased},
		[]string{LabelTool},
	)

	PlayersInitialized = promauto.NewCounter(
		prometheus.CounterOpts{Name: MetricNamePlayers, Help: HelpTextPlayers},
	)

	SeasonDaysPassed = promauto.NewGauge(
		prometheus.GaugeOpts{Name: MetricNameSeasonDay, Help: HelpTextSeasonDay},
	)

	SeasonCurrent = promauto.NewGauge(
		prometheus.GaugeOpts{Name: MetricNameSeasonCurrent, Help: HelpTextSeasonCurrent},
	)
)
