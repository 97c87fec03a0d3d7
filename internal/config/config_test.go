package config

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromEnvSet(env.EnvSet{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.DeliveryAPIURL)
	assert.Equal(t, 10*time.Second, cfg.DeliveryAPITimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.ClockInterval)
	tf, err := cfg.TimeFormatter()
	require.NoError(t, err)
	assert.Equal(t, "1/2/2006, 3:04:05 PM", tf.Layout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnvSet(env.EnvSet{
		"DELIVERY_API_URL":     "https://api.example.com",
		"DELIVERY_API_TIMEOUT": "3s",
		"HOST":                 "127.0.0.1",
		"PORT":                 "9000",
		"DISPLAY_TIMEZONE":     "UTC",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.DeliveryAPIURL)
	assert.Equal(t, 3*time.Second, cfg.DeliveryAPITimeout)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())

	tf, err := cfg.TimeFormatter()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, tf.Location)
}

func TestInvalidConfig(t *testing.T) {
	cases := []env.EnvSet{
		{"DELIVERY_API_URL": "localhost:5000"},
		{"DELIVERY_API_URL": "ftp://host"},
		{"DELIVERY_API_TIMEOUT": "0s"},
		{"CLOCK_INTERVAL": "-1s"},
		{"DISPLAY_TIMEZONE": "Mars/Olympus"},
	}
	for _, es := range cases {
		_, err := FromEnvSet(es)
		require.ErrorIs(t, err, ErrInvalidConfig, "%v", es)
	}
}

func TestUnparsableDuration(t *testing.T) {
	_, err := FromEnvSet(env.EnvSet{"SHUTDOWN_TIMEOUT": "soon"})
	require.Error(t, err)
}
