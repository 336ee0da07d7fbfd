package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), false)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("procgen").Start(context.Background(), "procgen.generate")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "procgen.generate", ended[0].Name())
	assert.Equal(t, "delve/procgen", ended[0].InstrumentationScope().Name)
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "anything")
	assert.False(t, span.IsRecording())
	span.End()
}
