package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit, burst int, window time.Duration) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/analyze-gap", Method: "POST", Limit: limit, Window: window, Burst: burst},
		},
	}
}

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(10, 3, time.Hour))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze-gap", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
	}
}

func TestAllow_BurstExhausted(t *testing.T) {
	l := NewLimiter(testConfig(10, 2, time.Hour))
	defer l.Stop()

	l.Allow("1.2.3.4", "/analyze-gap", "POST")
	l.Allow("1.2.3.4", "/analyze-gap", "POST")

	allowed, info := l.Allow("1.2.3.4", "/analyze-gap", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.True(t, info.RetryAfter > 0)
}

func TestAllow_ClientsIndependent(t *testing.T) {
	l := NewLimiter(testConfig(10, 1, time.Hour))
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/analyze-gap", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/analyze-gap", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/analyze-gap", "POST")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze-gap", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_UnlimitedEndpoint(t *testing.T) {
	l := NewLimiter(DefaultConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_UnconfiguredPathUsesDefault(t *testing.T) {
	config := testConfig(10, 1, time.Hour)
	config.DefaultLimit = 2
	config.DefaultWindow = time.Hour
	l := NewLimiter(config)
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/somewhere-else", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
}

func TestBucket_Refill(t *testing.T) {
	// 100 tokens/second so the refill is observable without a long sleep
	b := newBucket(1, 100)

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _, _ = b.take()
	assert.True(t, allowed)
}

func TestDefaultConfig_AnalysisTierIsStrict(t *testing.T) {
	config := DefaultConfig()

	endpoint := config.endpointFor("/analyze-gap-from-text", "POST")
	require.NotNil(t, endpoint)
	assert.Equal(t, 20, endpoint.Limit)
	assert.Equal(t, time.Hour, endpoint.Window)
}
