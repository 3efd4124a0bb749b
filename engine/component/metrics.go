package component

import (
	"context"
	"fmt"
	"sync"

	"github.com/pipewright/pipewright/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const componentMetricSubsystem = "component"

type loadErrorLabel string

const (
	errorLabelSource   loadErrorLabel = "source_error"
	errorLabelRetrieve loadErrorLabel = "retrieve_error"
	errorLabelParse    loadErrorLabel = "parse_error"
	errorLabelBuild    loadErrorLabel = "build_error"
)

type componentMetrics struct {
	initOnce sync.Once

	componentsLoaded metric.Int64Counter
	tasksConstructed metric.Int64Counter
	errorsTotal      metric.Int64Counter
}

var metricsContainer componentMetrics

func metricName(name string) string {
	return fmt.Sprintf("pipewright_%s_%s", componentMetricSubsystem, name)
}

func componentMetricsRecorder(ctx context.Context) *componentMetrics {
	metricsContainer.initOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("pipewright.component")
		var err error

		metricsContainer.componentsLoaded, err = meter.Int64Counter(
			metricName("components_loaded_total"),
			metric.WithDescription("Total components loaded by source"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.FromContext(ctx).Warn("component metrics: failed to create loaded counter", "error", err)
		}

		metricsContainer.tasksConstructed, err = meter.Int64Counter(
			metricName("tasks_constructed_total"),
			metric.WithDescription("Total tasks constructed by component"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.FromContext(ctx).Warn("component metrics: failed to create tasks counter", "error", err)
		}

		metricsContainer.errorsTotal, err = meter.Int64Counter(
			metricName("load_errors_total"),
			metric.WithDescription("Total component load errors by reason"),
			metric.WithUnit("1"),
		)
		if err != nil {
			logger.FromContext(ctx).Warn("component metrics: failed to create errors counter", "error", err)
		}
	})
	return &metricsContainer
}

func recordComponentLoaded(ctx context.Context, source string) {
	recorder := componentMetricsRecorder(ctx)
	if recorder.componentsLoaded == nil {
		return
	}
	recorder.componentsLoaded.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}

func recordTaskConstructed(ctx context.Context, component string) {
	recorder := componentMetricsRecorder(ctx)
	if recorder.tasksConstructed == nil {
		return
	}
	recorder.tasksConstructed.Add(ctx, 1,
		metric.WithAttributes(attribute.String("component", component)),
	)
}

func recordLoadError(ctx context.Context, label loadErrorLabel) {
	recorder := componentMetricsRecorder(ctx)
	if recorder.errorsTotal == nil {
		return
	}
	recorder.errorsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("reason", string(label))),
	)
}
