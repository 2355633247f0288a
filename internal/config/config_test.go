package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 24, cfg.CartTTL)
	assert.Equal(t, int64(1000), cfg.ShippingFlatFee)
	assert.False(t, cfg.TracingEnabled)
	assert.False(t, cfg.SeedDemoData)
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_InvalidCartTTL(t *testing.T) {
	t.Setenv("CART_TTL_HOURS", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cart TTL")
}

func TestLoad_NegativeShippingFee(t *testing.T) {
	t.Setenv("SHIPPING_FLAT_FEE_CENTS", "-5")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid shipping flat fee")
}

func TestLoad_InvalidTraceSampleRate(t *testing.T) {
	t.Setenv("TRACE_SAMPLE_RATE", "2.0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid trace sample rate")
}

func TestLoad_CustomRedisAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.prod:6380")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "redis.prod:6380", cfg.RedisAddr)
}

func TestLoad_KafkaBrokersList(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
}
