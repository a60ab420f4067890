package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	HTTPRequestsTotal      metric.Int64Counter
	HTTPRequestDuration    metric.Float64Histogram
	PageViewsTotal         metric.Int64Counter
	MenuTogglesTotal       metric.Int64Counter
	TemplateRenderDuration metric.Float64Histogram
	RenderCacheHitsTotal   metric.Int64Counter
	RenderCacheMissesTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics creates the instruments once, from the global MeterProvider.
// Call it after the provider is installed; later calls are no-ops.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("nextapp")
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

		m.PageViewsTotal, err = meter.Int64Counter(
			"page_views_total",
			metric.WithDescription("Pages served, by route"),
			metric.WithUnit("{view}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_views_total: %v", err)
		}

		m.MenuTogglesTotal, err = meter.Int64Counter(
			"mobile_menu_toggles_total",
			metric.WithDescription("Mobile menu button clicks handled"),
			metric.WithUnit("{click}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create mobile_menu_toggles_total: %v", err)
		}

		m.TemplateRenderDuration, err = meter.Float64Histogram(
			"template_render_duration_seconds",
			metric.WithDescription("Duration of template rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create template_render_duration_seconds: %v", err)
		}

		m.RenderCacheHitsTotal, err = meter.Int64Counter(
			"render_cache_hits_total",
			metric.WithDescription("Rendered pages served from cache"),
			metric.WithUnit("{hit}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create render_cache_hits_total: %v", err)
		}

		m.RenderCacheMissesTotal, err = meter.Int64Counter(
			"render_cache_misses_total",
			metric.WithDescription("Rendered pages that had to be rendered"),
			metric.WithUnit("{miss}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create render_cache_misses_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, creating them from the current global
// provider on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
