package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/corebuild/internal/adapters/telemetry"
	"go.trai.ch/corebuild/internal/core/domain"
	"go.trai.ch/corebuild/internal/core/ports"
	"go.trai.ch/corebuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = telemetry.NoOpSpan{}
	var _ sdktrace.SpanProcessor = (*telemetry.LogBridge)(nil)
}

func TestOTelTracer_RecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider, "test")

	_, span := tracer.Start(t.Context(), "build.load")
	span.SetAttribute("platform", domain.PlatformLinux)
	span.SetAttribute("version", 42)
	span.SetAttribute("checksum", uint64(255))
	span.RecordError(errors.New("boom"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]
	assert.Equal(t, "build.load", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "boom", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String("platform", "linux"))
	assert.Contains(t, got.Attributes(), attribute.Int("version", 42))
	assert.Contains(t, got.Attributes(), attribute.String("checksum", "00000000000000ff"))
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx, span := tracer.Start(t.Context(), "noop")
	assert.Equal(t, t.Context(), ctx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

func TestLogBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	log.EXPECT().Debug("span finished", gomock.Any()).Times(1)
	log.EXPECT().Warn("span failed", gomock.Any()).Times(1)

	provider := telemetry.NewProvider(log)
	tracer := telemetry.NewOTelTracer(provider, "test")

	_, ok := tracer.Start(t.Context(), "ok")
	ok.End()

	_, failed := tracer.Start(t.Context(), "failed")
	failed.RecordError(errors.New("no core"))
	failed.End()

	require.NoError(t, provider.Shutdown(t.Context()))
}
