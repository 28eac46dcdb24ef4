package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	entries := logs.FilterMessage("tracing_configured").All()
	require.Len(t, entries, 1)
	assert.Equal(t, false, entries[0].ContextMap()["tracing_enabled"])
}

func TestInit_UnsupportedProtocol(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	core, logs := observer.New(zap.InfoLevel)

	shutdown, err := Init(context.Background(), zap.New(core))

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, 1, logs.FilterMessage("tracing_init_failed").Len())
}

func TestNewSampler(t *testing.T) {
	tests := map[string]string{
		"always_on":                "AlwaysOnSampler",
		"always_off":               "AlwaysOffSampler",
		"traceidratio":             "TraceIDRatioBased{0.5}",
		"parentbased_traceidratio": "ParentBased{root:TraceIDRatioBased{0.5}",
		"unknown":                  "ParentBased{root:AlwaysOnSampler",
	}
	for sampler, want := range tests {
		assert.Contains(t, newSampler(sampler, "0.5").Description(), want, sampler)
	}
}

func TestParseRatio(t *testing.T) {
	assert.Equal(t, 0.25, parseRatio("0.25"))
	assert.Equal(t, 1.0, parseRatio("abc"))
	assert.Equal(t, 1.0, parseRatio("2"))
}
