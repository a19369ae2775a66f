package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewProvider(context.Background())
	require.NoError(t, err)
	assert.False(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "frame")
	assert.False(t, span.SpanContext().IsValid(), "disabled provider must not record spans")
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestFromSDK_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := FromSDK(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	require.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "dispatch")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "dispatch", ended[0].Name())
	assert.Equal(t, InstrumentationName, ended[0].InstrumentationScope().Name)
	assert.NoError(t, p.Shutdown(context.Background()))
}
