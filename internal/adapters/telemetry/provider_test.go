package telemetry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/emorec/internal/adapters/telemetry"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/emorec/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(trace.NewTracerProvider(trace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func TestOTelSpan_Attributes(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "resample")
	span.SetAttribute("files", 12)
	span.SetAttribute("rate", int64(16000))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("cached", true)
	span.SetAttribute("dir", "out")
	span.SetAttribute("names", []string{"a", "b"})
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.Int("files", 12))
	assert.Contains(t, attrs, attribute.Int64("rate", 16000))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Bool("cached", true))
	assert.Contains(t, attrs, attribute.String("dir", "out"))
	assert.Contains(t, attrs, attribute.StringSlice("names", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", fmt.Sprintf("%v", struct{ A int }{A: 1})))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "resample")
	span.RecordError(errors.New("exit status 1"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "exit status 1", spans[0].Status().Description)
}

func TestOTelSpan_WriteWithoutRenderer(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "process")
	n, err := span.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "log", spans[0].Events()[0].Name)
}

func TestOTelTracer_Quiet(t *testing.T) {
	sr := withRecorder(t)
	tracer := telemetry.NewOTelTracer("test")

	_, span := tracer.Start(context.Background(), "a.wav", ports.WithQuiet())
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.Bool("emorec.quiet", true))
}

func TestSetup_RoutesToRenderer(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	prev := otel.GetTracerProvider()
	tracer, shutdown := telemetry.Setup("test", renderer)
	t.Cleanup(func() {
		_ = shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	renderer.EXPECT().OnPlanEmit([]string{"resample", "write"})
	var spanID string
	renderer.EXPECT().OnTaskStart(gomock.Any(), "", "resample", gomock.Any()).
		Do(func(id, _, _ string, _ time.Time) { spanID = id })
	renderer.EXPECT().OnTaskLog(gomock.Any(), []byte("resampling 2 files\n")).
		Do(func(id string, _ []byte) { assert.Equal(t, spanID, id) })
	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil)

	ctx := context.Background()
	tracer.EmitPlan(ctx, []string{"resample", "write"})
	_, span := tracer.Start(ctx, "resample")
	_, err := span.Write([]byte("resampling 2 files\n"))
	require.NoError(t, err)
	span.End()

	// Quiet spans reach neither the bridge nor the batcher.
	_, quiet := tracer.Start(ctx, "a.wav", ports.WithQuiet())
	_, err = quiet.Write([]byte("ignored"))
	require.NoError(t, err)
	quiet.End()
}
