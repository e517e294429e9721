// Package telemetry provides OpenTelemetry metrics for the issuetrack server.
//
// Telemetry is disabled by default (zero runtime overhead when off).
//
// # Configuration
//
//	ISSUETRACK_OTEL_ENABLED=true   enable metrics (default: off)
//
// When enabled, metrics are pretty-printed to stdout on shutdown via the
// stdout exporter.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const instrumentationScope = "github.com/trailhead-labs/issuetrack"

var (
	shutdownFn      func(context.Context) error
	requestsCounter metric.Int64Counter
)

// Enabled reports whether telemetry is active.
func Enabled() bool {
	return os.Getenv("ISSUETRACK_OTEL_ENABLED") == "true"
}

// Init configures the meter provider. When telemetry is disabled this
// installs a no-op provider and returns immediately.
func Init(ctx context.Context, serviceName, version string) error {
	if !Enabled() {
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		return initInstruments()
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(version),
		),
	)
	if err != nil {
		return fmt.Errorf("telemetry: resource: %w", err)
	}

	exp, err := stdoutmetric.New(stdoutmetric.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("telemetry: stdout exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp,
			sdkmetric.WithInterval(30*time.Second))),
	)
	otel.SetMeterProvider(mp)
	shutdownFn = mp.Shutdown

	return initInstruments()
}

func initInstruments() error {
	meter := otel.Meter(instrumentationScope)

	var err error
	requestsCounter, err = meter.Int64Counter("issuetrack.http.requests",
		metric.WithDescription("HTTP requests served, by route and status class"))
	if err != nil {
		return fmt.Errorf("telemetry: requests counter: %w", err)
	}
	return nil
}

// CountRequest records one served HTTP request.
func CountRequest(ctx context.Context, route string, status int) {
	if requestsCounter == nil {
		return
	}
	requestsCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("route", route),
			attribute.Int("status_class", status/100),
		))
}

// Shutdown flushes pending metrics. Safe to call when telemetry is off.
func Shutdown(ctx context.Context) error {
	if shutdownFn == nil {
		return nil
	}
	return shutdownFn(ctx)
}
