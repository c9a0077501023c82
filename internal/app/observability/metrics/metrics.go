package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal    metric.Int64Counter
	HTTPRequestDuration  metric.Float64Histogram
	AuthRequestsTotal    metric.Int64Counter
	SearchRequestsTotal  metric.Int64Counter
	SearchErrorsTotal    metric.Int64Counter
	GroundingChunksTotal metric.Int64Counter
	FeedPostsGauge       metric.Int64Gauge
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("partea")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.AuthRequestsTotal, err = meter.Int64Counter(
			"auth_requests_total",
			metric.WithDescription("Total number of login/logout requests"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create auth_requests_total: %v", err)
		}

		m.SearchRequestsTotal, err = meter.Int64Counter(
			"party_search_requests_total",
			metric.WithDescription("Total number of grounded party searches issued"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create party_search_requests_total: %v", err)
		}

		m.SearchErrorsTotal, err = meter.Int64Counter(
			"party_search_errors_total",
			metric.WithDescription("Total number of failed grounded party searches"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create party_search_errors_total: %v", err)
		}

		m.GroundingChunksTotal, err = meter.Int64Counter(
			"grounding_chunks_total",
			metric.WithDescription("Grounding chunks received from the Gemini maps tool"),
			metric.WithUnit("{chunk}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create grounding_chunks_total: %v", err)
		}

		m.FeedPostsGauge, err = meter.Int64Gauge(
			"feed_posts_current",
			metric.WithDescription("Current number of posts in the session feed"),
			metric.WithUnit("{post}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create feed_posts_current: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metric instruments. InitAppMetrics must have run.
func Get() *AppMetrics {
	return appMetrics
}
